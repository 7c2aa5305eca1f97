package handler

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"net/http"
	"strings"
)

// Result carries the status code and body that a handler produced
type Result struct {
	Status int
	Body   interface{}
}

// Error is the json body returned for every failed request
type Error struct {
	Message string            `json:"message" example:"notes not found"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Wrapper adapts a Result returning handler into a gin handler
func Wrapper(h func(ctx *gin.Context) Result) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result := h(ctx)
		if result.Body == nil {
			ctx.Status(result.Status)
			return
		}
		ctx.JSON(result.Status, result.Body)
	}
}

// Invalid converts a gin binding error into a 400 Result with field level detail
func Invalid(err error) Result {
	e := Error{Message: "invalid request body"}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		e.Fields = make(map[string]string, len(vErrs))
		for _, f := range vErrs {
			switch f.Tag() {
			case "required":
				e.Fields[strings.ToLower(f.Field())] = "this field is required"
			case "min":
				e.Fields[strings.ToLower(f.Field())] = "must be at least " + f.Param() + " characters"
			default:
				e.Fields[strings.ToLower(f.Field())] = "failed validation: " + f.Tag()
			}
		}
	}

	return Result{
		Status: http.StatusBadRequest,
		Body:   e,
	}
}
