package handlers

import (
	"errors"
	"net/http"

	"gas_delivery/internal/service"

	"github.com/gin-gonic/gin"
)

// loginRequest carries the credentials; wire names match the front-end.
type loginRequest struct {
	Username string `json:"usuario" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Log in
// @Description  Returns a session token in the body and as an http-only cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "token, usuario"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, user, err := h.services.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("login_failed", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "usuario o contraseña incorrectos"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "login_error", err)
		return
	}

	// Session cookie alongside the body token: http-only, SameSite=Lax,
	// same 8-hour lifetime. Not marked Secure; this is an internal tool.
	maxAge := int(h.services.TokenTTL().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"usuario": user,
	})
}
