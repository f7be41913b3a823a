package constant

import "testing"

func TestWorkshopStatusLabel(t *testing.T) {
	tests := []struct {
		status WorkshopStatus
		want   string
	}{
		{WorkshopStatusPending, "Pending"},
		{WorkshopStatusAccepted, "Accepted"},
		{WorkshopStatusDeleted, "Deleted"},
		{WorkshopStatus(9), "Unknown"},
		{WorkshopStatus(-1), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestWorkshopStatusValid(t *testing.T) {
	for _, s := range []WorkshopStatus{WorkshopStatusPending, WorkshopStatusAccepted, WorkshopStatusDeleted} {
		if !s.Valid() {
			t.Errorf("Valid(%d) = false, want true", s)
		}
	}

	for _, s := range []WorkshopStatus{-1, 3, 42} {
		if s.Valid() {
			t.Errorf("Valid(%d) = true, want false", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from WorkshopStatus
		to   WorkshopStatus
		want bool
	}{
		{"pending to accepted", WorkshopStatusPending, WorkshopStatusAccepted, true},
		{"pending to deleted", WorkshopStatusPending, WorkshopStatusDeleted, true},
		{"accepted to deleted", WorkshopStatusAccepted, WorkshopStatusDeleted, true},
		{"accepted to pending", WorkshopStatusAccepted, WorkshopStatusPending, false},
		{"deleted to pending", WorkshopStatusDeleted, WorkshopStatusPending, false},
		{"deleted to accepted", WorkshopStatusDeleted, WorkshopStatusAccepted, false},
		{"pending to pending", WorkshopStatusPending, WorkshopStatusPending, true},
		{"accepted to accepted", WorkshopStatusAccepted, WorkshopStatusAccepted, true},
		{"deleted to deleted", WorkshopStatusDeleted, WorkshopStatusDeleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestNotificationTypeLabel(t *testing.T) {
	tests := []struct {
		nType NotificationType
		want  string
	}{
		{NotificationWorkshopAccepted, "Workshop Accepted"},
		{NotificationWorkshopRejected, "Workshop Rejected"},
		{NotificationNewComment, "New Comment"},
		{NotificationType("custom_event"), "custom_event"},
	}

	for _, tt := range tests {
		if got := tt.nType.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.nType, got, tt.want)
		}
	}

	if NotificationType("custom_event").Valid() {
		t.Error("unknown notification type reported valid")
	}
	if !NotificationRatingReceived.Valid() {
		t.Error("known notification type reported invalid")
	}
}

func TestStateName(t *testing.T) {
	if got := StateName("IN-MH"); got != "Maharashtra" {
		t.Errorf("StateName(IN-MH) = %q, want Maharashtra", got)
	}
	if got := StateName("IN-KL"); got != "Kerala" {
		t.Errorf("StateName(IN-KL) = %q, want Kerala", got)
	}
	// unknown codes pass through so stale rows still render
	if got := StateName("XX-ZZ"); got != "XX-ZZ" {
		t.Errorf("StateName(XX-ZZ) = %q, want XX-ZZ", got)
	}
}
