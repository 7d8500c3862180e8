package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck-api/config"
	"github.com/quizdeck/quizdeck-api/internal/apperr"
	"github.com/quizdeck/quizdeck-api/internal/authn"
	"github.com/quizdeck/quizdeck-api/internal/repository"
	"gorm.io/gorm"
)

// Context keys under which RequireTeacherAuth stores the validated user and
// the per-request scoped database handle.
const (
	ContextUserKey  = "authUser"
	ContextScopeKey = "authScope"
)

// RequireTeacherAuth validates the Authorization bearer token against the
// identity provider and binds the user plus a fresh row-level-security scope
// to the request context. Failures are funneled to the error boundary.
func RequireTeacherAuth(cfg *config.Config, provider authn.Provider, db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !cfg.Auth.Configured() {
			abort(ctx, apperr.ServiceUnavailable("Auth not configured",
				"Set SUPABASE_URL and SUPABASE_ANON_KEY in backend .env"))
			return
		}

		token, ok := strings.CutPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			abort(ctx, apperr.Unauthorized("Missing or invalid Authorization header"))
			return
		}

		user, err := provider.GetUser(ctx.Request.Context(), token)
		if err != nil || user == nil {
			abort(ctx, apperr.Unauthorized("Your session has expired or is invalid. Please sign in again."))
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Set(ContextScopeKey, repository.NewScope(db, user.ID))
		ctx.Next()
	}
}

func UserFrom(ctx *gin.Context) *authn.User {
	value, _ := ctx.Get(ContextUserKey)
	user, _ := value.(*authn.User)
	return user
}

func ScopeFrom(ctx *gin.Context) *repository.Scope {
	value, _ := ctx.Get(ContextScopeKey)
	scope, _ := value.(*repository.Scope)
	return scope
}

func abort(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.Abort()
}
