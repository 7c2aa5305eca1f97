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

type shareRequest struct {
	UserIds []uint64 `json:"userIds" binding:"required"`
}

// Share godoc
// @Summary Share a note
// @Description Replace the note's shared-with set with the given user ids
// @Tags Note
// @Accept json
// @Produce json
// @Param id path string true "Note id"
// @Param request body shareRequest true "Target user ids"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Security BearerAuth
// @Router /v1/notes/{id}/share [post]
func Share(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	var req shareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Invalid(err)
	}

	shared, err := note.Share(ctx, middleware.UserId(ctx), id, req.UserIds)

	switch {
	case errors.Is(err, note.ErrNotFound):
		return handler.Result{
			Status: http.StatusNotFound,
			Body:   handler.Error{Message: err.Error()},
		}
	case errors.Is(err, note.ErrUnknownUser):
		return handler.Result{
			Status: http.StatusBadRequest,
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
			Body:   shared,
		}
	}
}
