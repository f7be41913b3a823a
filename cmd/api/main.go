package main

import (
	"context"

	"github.com/SeakMengs/WorkshopHub/internal/admin"
	appcontext "github.com/SeakMengs/WorkshopHub/internal/app_context"
	"github.com/SeakMengs/WorkshopHub/internal/auth"
	"github.com/SeakMengs/WorkshopHub/internal/config"
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/SeakMengs/WorkshopHub/internal/database"
	"github.com/SeakMengs/WorkshopHub/internal/env"
	filestorage "github.com/SeakMengs/WorkshopHub/internal/file_storage"
	"github.com/SeakMengs/WorkshopHub/internal/mailer"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/SeakMengs/WorkshopHub/internal/queue"
	ratelimiter "github.com/SeakMengs/WorkshopHub/internal/rate_limiter"
	"github.com/SeakMengs/WorkshopHub/internal/repository"
	"github.com/SeakMengs/WorkshopHub/internal/route"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	s3, err := filestorage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	if err := filestorage.EnsureBucket(context.Background(), s3, cfg.Minio.ATTACHMENT_BUCKET); err != nil {
		logger.Panicf("Failed to ensure attachment bucket: %v", err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, s3)

	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.URL)
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		S3:         s3,
		Queue:      rabbitMQ,
		Admin:      admin.NewRegistry(),
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware())

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/health", _controller.Index.Health)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_Users(rApi, _controller.User, _controller.Notification, _controller.Chat, _middleware)
	route.V1_Workshops(rApi, _controller.Workshop, _controller.Rating, _controller.Chat, _controller.Comment, _middleware)
	route.V1_WorkshopTypes(rApi, _controller.WorkshopType, _controller.Category, _middleware)
	route.V1_Public(rApi, _controller.Testimonial, _controller.Banner, _middleware)
	route.V1_Dashboard(rApi, _controller.Dashboard, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
