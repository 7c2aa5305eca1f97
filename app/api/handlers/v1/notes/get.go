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

// Get godoc
// @Summary Find a note
// @Description Find one of the acting user's notes by id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Security BearerAuth
// @Router /v1/notes/{id} [get]
func Get(ctx *gin.Context) handler.Result {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "invalid id"},
		}
	}

	get, err := note.Find(ctx, middleware.UserId(ctx), id)

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
			Body:   get,
		}
	}
}
