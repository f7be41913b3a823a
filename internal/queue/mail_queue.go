package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/mailer"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// MailJobPayload is the unit of work on the mail queue: which template to
// render, for whom, and the template data.
type MailJobPayload struct {
	ToEmail      string                  `json:"to_email"`
	TemplateFile mailer.MailTemplateFile `json:"template_file"`
	Data         json.RawMessage         `json:"data"`
	CreatedAt    string                  `json:"created_at"`
	Try          int                     `json:"try"`
}

func NewMailJobPayload[T any](toEmail string, templateFile mailer.MailTemplateFile, data T) (MailJobPayload, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return MailJobPayload{}, fmt.Errorf("failed to marshal data: %w", err)
	}

	return MailJobPayload{
		ToEmail:      toEmail,
		TemplateFile: templateFile,
		Data:         dataBytes,
		Try:          0,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

func NewAccountActivationMailJob(toEmail string, data mailer.AccountActivationData) (MailJobPayload, error) {
	return NewMailJobPayload(toEmail, mailer.TemplateAccountActivation, data)
}

func NewWorkshopStatusMailJob(toEmail string, data mailer.WorkshopStatusData) (MailJobPayload, error) {
	return NewMailJobPayload(toEmail, mailer.TemplateWorkshopStatus, data)
}

// PublishMailJob marshals and enqueues a mail job.
func (r *RabbitMQ) PublishMailJob(job MailJobPayload) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}

	return r.Publish(QueueMail, body)
}

// MailJobHandler processes one job. Returning an error with shouldRequeue
// true puts the job back on the queue until MAX_QUEUE_RETRY is reached.
type MailJobHandler func(ctx context.Context, job MailJobPayload) (shouldRequeue bool, err error)

// ConsumeMailJobs starts maxWorker goroutines draining the mail queue until
// the context is canceled.
func (r *RabbitMQ) ConsumeMailJobs(ctx context.Context, handler MailJobHandler, maxWorker int, logger *zap.SugaredLogger) error {
	msgs, err := r.Consume(QueueMail)
	if err != nil {
		return fmt.Errorf("failed to start consuming mail jobs: %w", err)
	}

	for i := 0; i < maxWorker; i++ {
		go r.runMailWorker(ctx, i+1, msgs, handler, logger)
	}

	return nil
}

func (r *RabbitMQ) runMailWorker(ctx context.Context, workerNumber int, msgs <-chan amqp.Delivery, handler MailJobHandler, logger *zap.SugaredLogger) {
	for {
		select {
		case <-ctx.Done():
			logger.Infof("[Mail Worker %d] Shutting down", workerNumber)
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Infof("[Mail Worker %d] Message channel closed", workerNumber)
				return
			}
			r.processMailJob(ctx, workerNumber, msg, handler, logger)
		}
	}
}

func (r *RabbitMQ) processMailJob(ctx context.Context, workerNumber int, msg amqp.Delivery, handler MailJobHandler, logger *zap.SugaredLogger) {
	if msg.Body == nil {
		logger.Warnf("[Mail Worker %d] Received empty message body", workerNumber)
		r.Nack(msg, false)
		return
	}

	var job MailJobPayload
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		logger.Warnf("[Mail Worker %d] Invalid payload: %v", workerNumber, err)
		r.Nack(msg, false)
		return
	}

	shouldRequeue, err := handler(ctx, job)
	if err == nil {
		logger.Debugf("[Mail Worker %d] Processed mail job for %s, template: %s", workerNumber, job.ToEmail, job.TemplateFile)
		r.Ack(msg)
		return
	}

	logger.Errorf("[Mail Worker %d] Mail job for %s failed (try %d): %v", workerNumber, job.ToEmail, job.Try, err)

	if !shouldRequeue || job.Try >= MAX_QUEUE_RETRY {
		r.Nack(msg, false)
		return
	}

	job.Try++
	if err := r.PublishMailJob(job); err != nil {
		logger.Errorf("[Mail Worker %d] Failed to requeue mail job for %s: %v", workerNumber, job.ToEmail, err)
		r.Nack(msg, false)
		return
	}

	r.Ack(msg)
}
