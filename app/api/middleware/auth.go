package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jotter/notes-api/platform/token"
	"github.com/jotter/notes-api/platform/web/handler"
	"github.com/jotter/notes-api/sys"
)

const userIdKey = "actingUserId"

// Authenticated validates the bearer token and resolves the acting user id
// before any handler logic runs. Requests without a valid token never reach
// the handlers behind it.
func Authenticated() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := extractBearer(ctx.GetHeader("Authorization"))
		if raw == "" {
			abort(ctx, "missing bearer token")
			return
		}

		userId, err := token.Parse(raw, []byte(sys.Configs.Auth.Secret))
		if err != nil {
			abort(ctx, err.Error())
			return
		}

		ctx.Set(userIdKey, userId)
		ctx.Next()
	}
}

// UserId returns the acting user id resolved by Authenticated
func UserId(ctx *gin.Context) uint64 {
	return ctx.GetUint64(userIdKey)
}

func extractBearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

func abort(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, handler.Error{Message: message})
}
