package auth

import (
	"errors"
	"github.com/gin-gonic/gin"
	authv1 "github.com/jotter/notes-api/business/v1/auth"
	"github.com/jotter/notes-api/platform/web/handler"
	"net/http"
)

type signUpRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type signUpResponse struct {
	User    authv1.Profile `json:"user"`
	Message string         `json:"message" example:"user created successfully"`
}

// SignUp godoc
// @Summary Create a user account
// @Description Registers a new user with a username, password and optional email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body signUpRequest true "New account"
// @Success 201 {object} signUpResponse
// @Failure 400 {object} handler.Error
// @Failure 409 {object} handler.Error
// @Router /v1/auth/signup [post]
func SignUp(ctx *gin.Context) handler.Result {
	var req signUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return handler.Invalid(err)
	}

	profile, err := authv1.Register(ctx, authv1.SignUp{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})

	switch {
	case errors.Is(err, authv1.ErrUsernameTaken):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Message: err.Error()},
		}
	case err != nil:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Message: err.Error()},
		}
	default:
		return handler.Result{
			Status: http.StatusCreated,
			Body: signUpResponse{
				User:    profile,
				Message: "user created successfully",
			},
		}
	}
}
