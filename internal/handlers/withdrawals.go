package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gas_delivery/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidClienteID = "cliente_id inválido"
	errInvalidDate      = "fecha inválida; use YYYY-MM-DD"

	queryDateLayout = "2006-01-02"
)

type createWithdrawalRequest struct {
	CustomerID int     `json:"cliente_id" binding:"required"`
	Liters     float64 `json:"litros"`
}

// parseQueryDate accepts only "YYYY-MM-DD" and returns it normalized.
func parseQueryDate(s string) (string, error) {
	t, err := time.Parse(queryDateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(queryDateLayout), nil
}

// @Summary      Record withdrawal
// @Description  Stamps the server date/time and the caller's user id. The customer's available balance is not checked or decremented.
// @Tags         retiros
// @Accept       json
// @Produce      json
// @Param        body  body  createWithdrawalRequest  true  "Withdrawal payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/retiros [post]
// @Security     BearerAuth
func (h *Handler) createWithdrawal(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		return
	}

	var req createWithdrawalRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Withdrawals.Create(c.Request.Context(), service.WithdrawalParams{
		CustomerID: req.CustomerID,
		Liters:     req.Liters,
		UserID:     ident.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errCustomerNotFound})
		case errors.Is(err, service.ErrInvalidLiters):
			c.JSON(http.StatusBadRequest, gin.H{"error": "la cantidad debe ser mayor a cero"})
		default:
			if h.log != nil {
				h.log.Errorw("retiro_create_failed", "err", err, "cliente_id", req.CustomerID)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "mensaje": "Retiro registrado exitosamente"})
}

// @Summary      List withdrawals
// @Description  History joined with customer and user names, newest first. Date bounds are inclusive.
// @Tags         retiros
// @Produce      json
// @Param        cliente_id    query  int     false  "Filter by customer"
// @Param        fecha_inicio  query  string  false  "Start date (YYYY-MM-DD)"
// @Param        fecha_fin     query  string  false  "End date (YYYY-MM-DD)"
// @Success      200  {array}   models.WithdrawalRecord
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/retiros [get]
// @Security     BearerAuth
func (h *Handler) listWithdrawals(c *gin.Context) {
	var filter service.WithdrawalFilter

	if qs := c.Query("cliente_id"); qs != "" {
		id, err := strconv.Atoi(qs)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidClienteID})
			return
		}
		filter.CustomerID = id
	}
	if qs := c.Query("fecha_inicio"); qs != "" {
		d, err := parseQueryDate(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
			return
		}
		filter.DateFrom = d
	}
	if qs := c.Query("fecha_fin"); qs != "" {
		d, err := parseQueryDate(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
			return
		}
		filter.DateTo = d
	}

	records, err := h.services.Withdrawals.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "retiros_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, records)
}
