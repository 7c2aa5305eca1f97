package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/jotter/notes-api/app/api/middleware"
	"github.com/jotter/notes-api/business/v1/note"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
)

type listResponse struct {
	Count   int         `json:"count" example:"1"`
	Results []note.Note `json:"results"`
}

// List godoc
// @Summary List notes
// @Description List every note owned by the acting user
// @Tags Note
// @Produce json
// @Success 200 {object} listResponse
// @Failure 401 {object} handler.Error
// @Security BearerAuth
// @Router /v1/notes [get]
func List(ctx *gin.Context) handler.Result {
	notes, err := note.List(ctx, middleware.UserId(ctx))
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body: listResponse{
			Count:   len(notes),
			Results: notes,
		},
	}
}
