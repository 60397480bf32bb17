package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"mywallet/internal/metrics"
	"mywallet/internal/models"
	"mywallet/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "
	ctxUserKey   = "user"

	msgInvalidToken = "Token invalido!"
	msgUserNotFound = "Usuario não encontrado!"
	msgAuthFailed   = "Algo deu errado na autenticação!"
)

// userIdentity resolves the bearer token to a user and stores it in the
// context. Every protected route goes through it.
func (h *Handler) userIdentity(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), bearerPrefix)

	user, err := h.services.Authorize(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			metrics.RecordAuthRejection("invalid_token")
			c.String(http.StatusUnauthorized, msgInvalidToken)
		case errors.Is(err, service.ErrUserNotFound):
			metrics.RecordAuthRejection("user_not_found")
			c.String(http.StatusNotFound, msgUserNotFound)
		default:
			metrics.RecordAuthRejection("error")
			if h.log != nil {
				h.log.Errorw("auth_resolve_failed", "err", err, "path", c.Request.URL.Path)
			}
			c.String(http.StatusInternalServerError, msgAuthFailed)
		}
		c.Abort()
		return
	}

	c.Set(ctxUserKey, *user)
	c.Next()
}

// currentUser returns the identity stored by userIdentity.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// requestMetrics records count and latency per matched route.
func (h *Handler) requestMetrics(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	metrics.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
}

// corsMiddleware allows any origin, matching a browser front-end served elsewhere.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
