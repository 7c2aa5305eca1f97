package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/jotter/notes-api/app/api/middleware"
	"github.com/jotter/notes-api/business/v1/note"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
)

type createRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// Create godoc
// @Summary Create a note
// @Description Create a note owned by the acting user
// @Tags Note
// @Accept json
// @Produce json
// @Param request body createRequest true "New note"
// @Success 201 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Security BearerAuth
// @Router /v1/notes [post]
func Create(ctx *gin.Context) handler.Result {
	var req createRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Invalid(err)
	}

	created, err := note.Create(ctx, middleware.UserId(ctx), note.NewNote{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusCreated,
		Body:   created,
	}
}
