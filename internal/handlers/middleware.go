package handlers

import (
	"net/http"
	"strings"
	"time"

	"gas_delivery/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "identity"

// authMiddleware gates protected routes: it requires a well-formed
// "Bearer <token>" Authorization header and a valid, unexpired token.
// All failures answer 403, mirroring the error taxonomy for this API.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	ident, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(identityKey, ident)
	c.Next()
}

// identityFromContext returns the decoded token identity stored by
// authMiddleware.
func identityFromContext(c *gin.Context) (service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	ident, ok := v.(service.Identity)
	return ident, ok
}

// requestLogger tags every request with an id and logs its outcome.
func (h *Handler) requestLogger(c *gin.Context) {
	if h.log == nil {
		c.Next()
		return
	}

	requestID := uuid.NewString()
	c.Header("X-Request-ID", requestID)

	start := time.Now()
	c.Next()

	h.log.Infow("http_request",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
