package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jotter/notes-api/app/api/handlers/v1/auth"
	"github.com/jotter/notes-api/app/api/handlers/v1/healthcheck"
	"github.com/jotter/notes-api/app/api/handlers/v1/notes"
	"github.com/jotter/notes-api/app/api/middleware"
	"github.com/jotter/notes-api/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapAuth(r *gin.Engine) {
	g := r.Group("/v1/auth")
	g.POST("/signup", handler.Wrapper(auth.SignUp))
	g.POST("/login", handler.Wrapper(auth.Login))
	g.POST("/refresh", handler.Wrapper(auth.Refresh))
}

func MapApi(r *gin.Engine) {
	g := r.Group("/v1", middleware.Authenticated())
	g.GET("/notes", handler.Wrapper(notes.List))
	g.POST("/notes", handler.Wrapper(notes.Create))
	g.GET("/notes/:id", handler.Wrapper(notes.Get))
	g.PUT("/notes/:id", handler.Wrapper(notes.Update))
	g.DELETE("/notes/:id", handler.Wrapper(notes.Delete))
	g.POST("/notes/:id/share", handler.Wrapper(notes.Share))
	g.GET("/search", handler.Wrapper(notes.Search))
}
