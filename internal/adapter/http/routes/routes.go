package routes

import (
	"context"
	"log"

	_ "eligibility_hub/docs" // This will be auto-generated
	"eligibility_hub/internal/adapter/http/handlers"
	repository2 "eligibility_hub/internal/adapter/persistence/repository"
	"eligibility_hub/internal/config"
	"eligibility_hub/internal/infrastructure/cache"
	"eligibility_hub/internal/infrastructure/clearinghouse"
	"eligibility_hub/internal/infrastructure/database"
	"eligibility_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.AppPort)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	redisClient, err := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	sessionStore := repository2.NewSessionRedisStore(redisClient, cfg.SessionTTL())

	ddb := database.ConnectDynamoDB(database.DynamoDBSettings{
		Region:    cfg.AWSRegion,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
		Endpoint:  cfg.DynamoDBEndpoint,
	})
	historyRepo := repository2.NewVerificationHistoryDynamoRepository(ddb, cfg.HistoryTable)

	gateway, err := clearinghouse.NewGateway(cfg.ClearinghouseBaseURL, cfg.ClearinghouseAPIKey)
	if err != nil {
		log.Fatalf("Clearinghouse gateway not configured: %v", err)
	}

	submissionUseCase := usecase.NewSubmissionUseCase(gateway, sessionStore, historyRepo)

	// Poll watcher: sweeps tracked submissions while any is still pending or
	// processing; submit/retry kick it awake through SetNotify.
	watcher := usecase.NewPollWatcher(
		cfg.PollInterval(),
		func(ctx context.Context) bool { return submissionUseCase.HasTrackedPendingWork(ctx) },
		func(ctx context.Context) { submissionUseCase.RefreshTracked(ctx) },
	)
	submissionUseCase.SetNotify(watcher.Kick)
	watcher.Start(context.Background())

	eligibilityHandler := handlers.NewEligibilityHandler(submissionUseCase)
	historyHandler := handlers.NewHistoryHandler(submissionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEligibilityRoutes(v1, eligibilityHandler, historyHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
