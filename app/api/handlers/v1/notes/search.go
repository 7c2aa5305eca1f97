package notes

import (
	"github.com/gin-gonic/gin"
	"github.com/jotter/notes-api/business/v1/note"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
)

// Search godoc
// @Summary Search notes
// @Description Full-text search of q against note titles and contents, relevance ordered
// @Tags Note
// @Produce json
// @Param q query string true "Search terms"
// @Success 200 {array} note.Note
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Security BearerAuth
// @Router /v1/search [get]
func Search(ctx *gin.Context) handler.Result {
	q := ctx.Query("q")
	if q == "" {
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Message: "no search query provided"},
		}
	}

	notes, err := note.Search(ctx, q)
	if err != nil {
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
