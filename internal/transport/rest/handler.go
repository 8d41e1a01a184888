package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"inkdesk/config"
	"inkdesk/internal/service"
	"inkdesk/internal/transport/websocket"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	hub      *websocket.Hub
	gatherer prometheus.Gatherer
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, hub *websocket.Hub, gatherer prometheus.Gatherer) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		hub:      hub,
		gatherer: gatherer,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		private := api.Group("/", h.authMiddleware())
		{
			private.POST("/auth/logout-all", h.logoutAll)
			private.GET("/me", h.getMe)
			private.GET("/locations", h.getLocations)

			wizards := private.Group("/wizards")
			{
				wizards.POST("", h.startWizard)
				wizards.GET("/:id", h.getWizard)
				wizards.PATCH("/:id", h.updateWizard)
				wizards.DELETE("/:id", h.cancelWizard)
				wizards.POST("/:id/next", h.nextStep)
				wizards.POST("/:id/back", h.previousStep)
				wizards.POST("/:id/steps/:step", h.jumpToStep)
				wizards.POST("/:id/signature", h.sendSignature)
			}

			private.GET("/calendar", h.getCalendar)

			settings := private.Group("/settings")
			{
				settings.GET("/organisation", h.getOrganisationSettings)
				settings.PATCH("/organisation", h.updateOrganisationSettings)
			}

			private.GET("/consent/documents", h.getConsentDocuments)
		}
	}

	if h.hub != nil {
		router.GET("/ws", h.hub.HandleWebSocket)
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}
