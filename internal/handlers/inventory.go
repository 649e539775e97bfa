package handlers

import (
	"errors"
	"net/http"

	"gas_delivery/internal/service"

	"github.com/gin-gonic/gin"
)

type addInventoryRequest struct {
	LitersReceived float64 `json:"litros_ingresados" binding:"required"`
	Notes          string  `json:"observaciones"`
}

// @Summary      Current inventory
// @Tags         inventario
// @Produce      json
// @Success      200  {object}  models.InventoryEntry
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/inventario [get]
// @Security     BearerAuth
func (h *Handler) getInventory(c *gin.Context) {
	entry, err := h.services.Inventory.Current(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "inventario_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// @Summary      Inventory history
// @Tags         inventario
// @Produce      json
// @Success      200  {array}   models.InventoryEntry
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/inventario/historial [get]
// @Security     BearerAuth
func (h *Handler) getInventoryHistory(c *gin.Context) {
	history, err := h.services.Inventory.History(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "inventario_history_failed", err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary      Record fuel intake
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  addInventoryRequest  true  "Intake payload"
// @Success      201  {object}  models.InventoryEntry
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/inventario [post]
// @Security     BearerAuth
func (h *Handler) addInventory(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		return
	}

	var req addInventoryRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	entry, err := h.services.Inventory.Add(c.Request.Context(), service.InventoryParams{
		LitersReceived: req.LitersReceived,
		Notes:          req.Notes,
		UserID:         ident.UserID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidIntake) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ingrese una cantidad válida de litros"})
			return
		}
		if h.log != nil {
			h.log.Errorw("inventario_add_failed", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}
