package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SeakMengs/WorkshopHub/internal/config"
	"github.com/SeakMengs/WorkshopHub/internal/env"
	"github.com/SeakMengs/WorkshopHub/internal/mailer"
	"github.com/SeakMengs/WorkshopHub/internal/queue"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"go.uber.org/zap"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const (
	MAX_WORKER = 3
)

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	mail := mailer.NewGmailMailer(cfg.Mail.GMAIL_USERNAME, cfg.Mail.GMAIL_APP_PASSWORD, logger)

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

	ctx := context.Background()

	handler := func(ctx context.Context, job queue.MailJobPayload) (bool, error) {
		return handleMailJob(job, mail, logger)
	}

	if err := rabbitMQ.ConsumeMailJobs(ctx, handler, MAX_WORKER, logger); err != nil {
		logger.Fatalf("Failed to consume mail jobs: %v", err)
	}

	logger.Infof("Started consuming mail jobs")

	// Block forever to keep the consumer running
	select {}
}

// handleMailJob unmarshals the payload for its template and sends the email.
// A send failure requeues; a malformed payload does not.
func handleMailJob(job queue.MailJobPayload, mail mailer.Client, logger *zap.SugaredLogger) (bool, error) {
	switch job.TemplateFile {
	case mailer.TemplateAccountActivation:
		var data mailer.AccountActivationData
		if err := json.Unmarshal(job.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal AccountActivationData: %w", err)
		}

		if _, err := mail.Send(job.TemplateFile, job.ToEmail, data); err != nil {
			return true, fmt.Errorf("failed to send activation email: %w", err)
		}

		logger.Infof("Sent activation email to %s", job.ToEmail)
		return false, nil

	case mailer.TemplateWorkshopStatus:
		var data mailer.WorkshopStatusData
		if err := json.Unmarshal(job.Data, &data); err != nil {
			return false, fmt.Errorf("failed to unmarshal WorkshopStatusData: %w", err)
		}

		if _, err := mail.Send(job.TemplateFile, job.ToEmail, data); err != nil {
			return true, fmt.Errorf("failed to send workshop status email: %w", err)
		}

		logger.Infof("Sent workshop status email to %s", job.ToEmail)
		return false, nil

	default:
		return false, fmt.Errorf("unknown mail template: %s", job.TemplateFile)
	}
}
