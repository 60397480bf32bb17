package handlers

import (
	_ "mywallet/docs"
	"mywallet/internal/logger"
	"mywallet/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	registerJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), corsMiddleware(), h.requestMetrics)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health endpoint
	router.GET("/health", h.health)

	// Public endpoints
	h.registerAuthRoutes(router)

	// Protected endpoints
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/cadastro", h.signUp)
	r.POST("/login", h.signIn)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	records := r.Group("/registros", h.userIdentity)
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.GET("/stream", h.recordsStream)
	}

	r.GET("/usuario", h.userIdentity, h.getProfile)
}
