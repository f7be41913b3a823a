package appcontext

import (
	"github.com/SeakMengs/WorkshopHub/internal/admin"
	"github.com/SeakMengs/WorkshopHub/internal/auth"
	"github.com/SeakMengs/WorkshopHub/internal/config"
	"github.com/SeakMengs/WorkshopHub/internal/mailer"
	"github.com/SeakMengs/WorkshopHub/internal/queue"
	"github.com/SeakMengs/WorkshopHub/internal/repository"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	S3 *minio.Client

	// Queue publishes mail jobs consumed by cmd/mail_consumer.
	Queue *queue.RabbitMQ

	// Admin is the presentation registry built at startup; handlers read
	// list/search/filter configuration from here instead of a global.
	Admin *admin.Registry
}
