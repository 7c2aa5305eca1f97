package auth

import (
	"errors"
	"github.com/gin-gonic/gin"
	authv1 "github.com/jotter/notes-api/business/v1/auth"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Obtain access and refresh tokens
// @Description Verifies the credentials and returns a token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Credentials"
// @Success 200 {object} authv1.TokenPair
// @Failure 400 {object} handler.Error
// @Failure 401 {object} handler.Error
// @Router /v1/auth/login [post]
func Login(ctx *gin.Context) handler.Result {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Invalid(err)
	}

	pair, err := authv1.Login(ctx, authv1.Credentials{
		Username: req.Username,
		Password: req.Password,
	})

	switch {
	case errors.Is(err, authv1.ErrInvalidCredentials):
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
