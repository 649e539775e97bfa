package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gas_delivery/internal/service"

	"github.com/gin-gonic/gin"
)

// Common error messages sent to clients.
const (
	errServer           = "error en el servidor"
	errCustomerNotFound = "Cliente no encontrado"
	errNotAuthorized    = "No autorizado"
	errInvalidID        = "id inválido"
)

// logAndJSONError logs the internal detail and answers with a safe message.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// createCustomerRequest mirrors the front-end payload; litros_mes seeds
// both the quota and the initial available balance.
type createCustomerRequest struct {
	Name         string  `json:"nombre" binding:"required"`
	Address      string  `json:"direccion"`
	Phone        string  `json:"telefono"`
	MonthlyQuota float64 `json:"litros_mes"`
}

// @Summary      List customers
// @Tags         clientes
// @Produce      json
// @Param        busqueda  query  string  false  "Substring match on nombre or direccion"
// @Success      200  {array}   models.Customer
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/clientes [get]
// @Security     BearerAuth
func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.services.Customers.List(c.Request.Context(), c.Query("busqueda"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "clientes_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// @Summary      Get customer detail
// @Description  Includes litros_retirados_mes, the sum of the customer's withdrawals in the current calendar month.
// @Tags         clientes
// @Produce      json
// @Param        id  path  int  true  "Customer id"
// @Success      200  {object}  models.CustomerDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/clientes/{id} [get]
// @Security     BearerAuth
func (h *Handler) getCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return
	}

	detail, err := h.services.Customers.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errCustomerNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errServer, "cliente_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary      Create customer
// @Description  Admin only. litros_disponibles starts equal to litros_mes.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  createCustomerRequest  true  "Customer payload"
// @Success      201  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/clientes [post]
// @Security     BearerAuth
func (h *Handler) createCustomer(c *gin.Context) {
	ident, ok := identityFromContext(c)
	if !ok || !ident.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": errNotAuthorized})
		return
	}

	var req createCustomerRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Customers.Create(c.Request.Context(), service.CustomerParams{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		MonthlyQuota: req.MonthlyQuota,
	})
	if err != nil {
		// Constraint and validation failures surface their detail; this
		// is an internal tool.
		if h.log != nil {
			h.log.Infow("cliente_create_failed", "nombre", req.Name, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
