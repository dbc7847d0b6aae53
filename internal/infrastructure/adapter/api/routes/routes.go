package routes

import (
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router serves
type Handlers struct {
	User   *handler.UserHandler
	Upload *handler.UploadHandler
	Wallet *handler.WalletHandler
	Health *handler.HealthHandler
}

// Options controls the optional middleware. A nil Verifier disables
// authentication.
type Options struct {
	Verifier     identity.Verifier
	RateLimit    config.RateLimitConfig
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	if opts.Verifier != nil {
		api.Use(middleware.Auth(opts.Verifier, opts.Logger))
	}

	// User routes
	api.GET("/user/:email", h.User.GetUser)
	api.POST("/user", h.User.CreateUser)
	api.PATCH("/user/:userId", h.User.UpdateUser)
	api.POST("/user/:userId/registration", h.User.AttachRegistration)

	// Upload routes
	upload := []gin.HandlerFunc{h.Upload.SubmitUpload}
	if opts.RateLimit.Enabled {
		upload = append([]gin.HandlerFunc{middleware.RateLimit(opts.RateLimit, opts.TimeProvider)}, upload...)
	}
	api.POST("/upload", upload...)
	api.GET("/upload/:uploadId", h.Upload.GetUpload)
	api.GET("/uploads/:userId", h.Upload.ListUploads)
	api.GET("/stats/:userId", h.Upload.GetStats)

	// Wallet routes
	api.GET("/wallet/:userId", h.Wallet.GetWallet)
	api.POST("/withdraw", h.Wallet.Withdraw)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, cors config.CORSConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(cors))
}
