package http

import (
	"marketing-portal/config"
	"marketing-portal/internal/adapter/http/handler"
	"marketing-portal/internal/adapter/http/middleware"
	redisstore "marketing-portal/internal/adapter/storage/redis"
	"marketing-portal/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBody = 1 << 20 // 1 MiB

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Config         *config.Config
	Logger         zerolog.Logger
	IngestSvc      ports.IngestService
	WebhookLogSvc  ports.WebhookLogService
	LeadSvc        ports.LeadService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	VoiceSvc       ports.VoiceService
	SourceRepo     ports.SourceRepository
	RateLimitStore *redisstore.RateLimitStore // nil disables rate limiting
	HealthCheckers []ports.HealthChecker
}

// NewRouter builds the gin engine with all routes and middleware. One webhook
// intake route is registered per configured source; intake routes are never
// rate limited so form submissions are not dropped.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(deps.Config.Server.Mode)

	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.MaxBodySize(maxRequestBody))

	healthHandler := handler.NewHealthHandler(deps.Logger, deps.HealthCheckers...)
	router.GET("/health", healthHandler.Check)

	api := router.Group("/api")

	webhooks := api.Group("/webhooks")
	for _, src := range deps.Config.Webhooks.Sources {
		h := handler.NewWebhookHandler(deps.IngestSvc, deps.WebhookLogSvc, src, deps.Logger)
		webhooks.POST("/"+src.Path, h.Handle)
	}

	authHandler := handler.NewAuthHandler(deps.AuthSvc, deps.Logger)
	api.POST("/auth/login",
		middleware.RateLimiter(deps.RateLimitStore, "auth_login", deps.Logger),
		authHandler.Login,
	)

	dashboard := api.Group("")
	dashboard.Use(middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	dashboard.Use(middleware.RateLimiter(deps.RateLimitStore, "dashboard", deps.Logger))

	leadHandler := handler.NewLeadHandler(deps.LeadSvc, deps.Logger)
	dashboard.GET("/leads", leadHandler.List)
	dashboard.POST("/leads", leadHandler.Create)

	logHandler := handler.NewWebhookLogHandler(deps.WebhookLogSvc, deps.Logger)
	dashboard.GET("/webhook-logs", logHandler.List)
	dashboard.GET("/webhook-logs/paths", logHandler.ListPaths)

	sourceHandler := handler.NewSourceHandler(deps.SourceRepo, deps.Logger)
	dashboard.GET("/sources", sourceHandler.List)

	voiceHandler := handler.NewVoiceHandler(deps.VoiceSvc, deps.Logger)
	api.POST("/voice/web-call",
		middleware.RateLimiter(deps.RateLimitStore, "voice", deps.Logger),
		voiceHandler.CreateWebCall,
	)

	return router
}
