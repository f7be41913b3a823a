package mailer

import "embed"

const (
	FROM_NAME = "WorkshopHub"
	MAX_RETRY = 3
)

type MailTemplateFile string

const (
	TemplateAccountActivation MailTemplateFile = "templates/account_activation.tmpl"
	TemplateWorkshopStatus    MailTemplateFile = "templates/workshop_status.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile MailTemplateFile, toEmail string, data any) (int, error)
}

// AccountActivationData fills the activation template.
type AccountActivationData struct {
	FirstName     string
	ActivationURL string
	ExpiryHours   int
}

// WorkshopStatusData fills the status-change template sent to coordinators.
type WorkshopStatusData struct {
	FirstName    string
	WorkshopName string
	Date         string
	StatusLabel  string
}
