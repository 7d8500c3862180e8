package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck-api/internal/apperr"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// ErrorBoundary is the single terminal error handler. Handlers and middleware
// attach errors with ctx.Error and abort; this middleware translates the last
// one into the uniform {error, message} body. It never fails itself and it
// never writes over a response a handler already produced.
func ErrorBoundary(production bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		last := ctx.Errors.Last()
		if last == nil || ctx.Writer.Written() {
			return
		}

		status := http.StatusInternalServerError
		name := "Error"
		message := last.Err.Error()

		var appErr *apperr.Error
		if errors.As(last.Err, &appErr) {
			status = appErr.Status
			name = appErr.Name
			message = appErr.Message
			if status >= http.StatusInternalServerError {
				// Dev responses carry the underlying cause as well.
				message = appErr.Error()
			}
		}

		if status < http.StatusInternalServerError {
			ctx.JSON(status, dto.ErrorResponse{Error: name, Message: message})
			return
		}

		if production {
			log.Error().Int("status", status).Str("message", message).Msg("Request failed")
			ctx.JSON(status, dto.ErrorResponse{
				Error:   "Internal server error",
				Message: "Something went wrong",
			})
			return
		}

		stack := string(debug.Stack())
		log.Error().Int("status", status).Str("message", message).Str("stack", stack).Msg("Request failed")
		ctx.JSON(status, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: message,
			Stack:   stack,
		})
	}
}

// Recovery converts panics into errors for the boundary instead of letting
// gin write its own 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		_ = ctx.Error(fmt.Errorf("panic: %v", recovered))
		ctx.Abort()
	})
}

// NotFoundHandler answers unmatched routes, echoing method and path.
func NotFoundHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error:   "Not found",
		Message: fmt.Sprintf("Cannot %s %s", ctx.Request.Method, ctx.Request.URL.Path),
	})
}
