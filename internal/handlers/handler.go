package handlers

import (
	"time"

	"gas_delivery/internal/logger"
	"gas_delivery/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	corsOrigins []string
}

// NewHandler constructs a new HTTP handler. corsOrigins are the
// front-end origins allowed to make credentialed cross-origin calls.
func NewHandler(services *service.Service, log *logger.Logger, corsOrigins []string) *Handler {
	return &Handler{services: services, log: log, corsOrigins: corsOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	router.Use(cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Live dashboard feed (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	api := router.Group("/api")
	{
		api.POST("/login", h.login)

		protected := api.Group("", h.authMiddleware)
		{
			h.registerCustomerRoutes(protected)
			h.registerWithdrawalRoutes(protected)
			h.registerInventoryRoutes(protected)
			protected.GET("/estadisticas", h.getStats)
		}
	}

	return router
}

func (h *Handler) registerCustomerRoutes(api *gin.RouterGroup) {
	clientes := api.Group("/clientes")
	{
		clientes.GET("", h.listCustomers)
		clientes.GET("/:id", h.getCustomer)
		// Admin capability checked in the handler, not the auth gate.
		clientes.POST("", h.createCustomer)
	}
}

func (h *Handler) registerWithdrawalRoutes(api *gin.RouterGroup) {
	retiros := api.Group("/retiros")
	{
		retiros.GET("", h.listWithdrawals)
		retiros.POST("", h.createWithdrawal)
	}
}

func (h *Handler) registerInventoryRoutes(api *gin.RouterGroup) {
	inventario := api.Group("/inventario")
	{
		inventario.GET("", h.getInventory)
		inventario.GET("/historial", h.getInventoryHistory)
		inventario.POST("", h.addInventory)
	}
}

// corsConfig allows the configured front-end origins with credentials;
// preflight requests are answered here without reaching any handler.
func (h *Handler) corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     h.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
