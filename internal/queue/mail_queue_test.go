package queue

import (
	"encoding/json"
	"testing"

	"github.com/SeakMengs/WorkshopHub/internal/mailer"
)

func TestNewAccountActivationMailJob(t *testing.T) {
	job, err := NewAccountActivationMailJob("asha@example.com", mailer.AccountActivationData{
		FirstName:     "Asha",
		ActivationURL: "http://localhost:8080/api/v1/auth/activate/abc123",
		ExpiryHours:   24,
	})
	if err != nil {
		t.Fatalf("NewAccountActivationMailJob returned error: %v", err)
	}

	if job.ToEmail != "asha@example.com" {
		t.Errorf("ToEmail = %q", job.ToEmail)
	}
	if job.TemplateFile != mailer.TemplateAccountActivation {
		t.Errorf("TemplateFile = %q", job.TemplateFile)
	}
	if job.Try != 0 {
		t.Errorf("Try = %d, want 0", job.Try)
	}

	var data mailer.AccountActivationData
	if err := json.Unmarshal(job.Data, &data); err != nil {
		t.Fatalf("payload data does not unmarshal: %v", err)
	}
	if data.FirstName != "Asha" || data.ExpiryHours != 24 {
		t.Errorf("unexpected data round trip: %+v", data)
	}
}

func TestNewWorkshopStatusMailJob(t *testing.T) {
	job, err := NewWorkshopStatusMailJob("asha@example.com", mailer.WorkshopStatusData{
		FirstName:    "Asha",
		WorkshopName: "Python Basics",
		Date:         "2026-09-15",
		StatusLabel:  "Accepted",
	})
	if err != nil {
		t.Fatalf("NewWorkshopStatusMailJob returned error: %v", err)
	}

	if job.TemplateFile != mailer.TemplateWorkshopStatus {
		t.Errorf("TemplateFile = %q", job.TemplateFile)
	}

	var data mailer.WorkshopStatusData
	if err := json.Unmarshal(job.Data, &data); err != nil {
		t.Fatalf("payload data does not unmarshal: %v", err)
	}
	if data.StatusLabel != "Accepted" {
		t.Errorf("StatusLabel = %q", data.StatusLabel)
	}
}
