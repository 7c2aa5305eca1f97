package notes

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/jotter/notes-api/app/api/middleware"
	"github.com/jotter/notes-api/business/v1/note"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
	"strconv"
)

type updateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Update godoc
// @Summary Update a note
// @Description Partially update one of the acting user's notes; omitted fields keep their value
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param request body updateRequest true "Fields to change"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Security BearerAuth
// @Router /v1/notes/{id} [put]
func Update(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	var req updateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Invalid(err)
	}

	updated, err := note.Update(ctx, middleware.UserId(ctx), id, note.UpdateNote{
		Title:   req.Title,
		Content: req.Content,
	})

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   updated,
		}
	}
}
