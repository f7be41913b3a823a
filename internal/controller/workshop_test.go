package controller

import (
	"testing"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
)

func TestStatusNotification(t *testing.T) {
	tests := []struct {
		name     string
		previous constant.WorkshopStatus
		next     constant.WorkshopStatus
		wantType constant.NotificationType
		wantOk   bool
	}{
		{"pending to accepted", constant.WorkshopStatusPending, constant.WorkshopStatusAccepted, constant.NotificationWorkshopAccepted, true},
		{"pending to deleted", constant.WorkshopStatusPending, constant.WorkshopStatusDeleted, constant.NotificationWorkshopRejected, true},
		{"accepted to deleted", constant.WorkshopStatusAccepted, constant.WorkshopStatusDeleted, constant.NotificationWorkshopRejected, true},
		// re-submitting the current status is a no-op and must stay silent
		{"accepted re-submitted", constant.WorkshopStatusAccepted, constant.WorkshopStatusAccepted, "", false},
		{"pending re-submitted", constant.WorkshopStatusPending, constant.WorkshopStatusPending, "", false},
		{"deleted re-submitted", constant.WorkshopStatusDeleted, constant.WorkshopStatusDeleted, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotOk := statusNotification(tt.previous, tt.next)
			if gotOk != tt.wantOk {
				t.Fatalf("statusNotification(%d, %d) ok = %v, want %v", tt.previous, tt.next, gotOk, tt.wantOk)
			}
			if gotType != tt.wantType {
				t.Errorf("statusNotification(%d, %d) type = %q, want %q", tt.previous, tt.next, gotType, tt.wantType)
			}
		})
	}
}
