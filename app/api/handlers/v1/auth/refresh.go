package auth

import (
	"errors"
	"github.com/gin-gonic/gin"
	authv1 "github.com/jotter/notes-api/business/v1/auth"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
)

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Refresh godoc
// @Summary Rotate a refresh token
// @Description Consumes the presented refresh token and returns a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body refreshRequest true "Refresh token"
// @Success 200 {object} authv1.TokenPair
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/auth/refresh [post]
func Refresh(ctx *gin.Context) handler.Result {
	var req refreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Invalid(err)
	}

	pair, err := authv1.Refresh(ctx, req.Refresh)

	switch {
	case errors.Is(err, authv1.ErrInvalidRefresh):
		return handler.Result{
			Status: http.StatusUnauthorized,
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
			Body:   pair,
		}
	}
}
