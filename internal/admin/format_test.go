package admin

import (
	"testing"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
)

func TestFormatStatusBadge(t *testing.T) {
	tests := []struct {
		name      string
		status    constant.WorkshopStatus
		wantLabel string
		wantColor string
	}{
		{"Pending", constant.WorkshopStatusPending, "Pending", "orange"},
		{"Accepted", constant.WorkshopStatusAccepted, "Accepted", "green"},
		{"Deleted", constant.WorkshopStatusDeleted, "Deleted", "red"},
		{"Unknown code", constant.WorkshopStatus(9), "Unknown", "gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := FormatStatusBadge(tt.status)
			if badge.Label != tt.wantLabel || badge.Color != tt.wantColor {
				t.Errorf("FormatStatusBadge(%d) = %+v, want {%s %s}", tt.status, badge, tt.wantLabel, tt.wantColor)
			}
		})
	}
}

func TestFormatRatingStars(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{1, "★☆☆☆☆"},
		{3, "★★★☆☆"},
		{5, "★★★★★"},
		{-2, "☆☆☆☆☆"},
		{7, "★★★★★"},
	}

	for _, tt := range tests {
		if got := FormatRatingStars(tt.rating); got != tt.want {
			t.Errorf("FormatRatingStars(%d) = %s, want %s", tt.rating, got, tt.want)
		}
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{-1, "Unknown"},
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %s, want %s", tt.size, got, tt.want)
		}
	}
}

func TestFormatPreview(t *testing.T) {
	if got := FormatPreview("short", 50); got != "short" {
		t.Errorf("FormatPreview(short) = %s", got)
	}

	long := "this message is definitely longer than ten characters"
	if got := FormatPreview(long, 10); got != "this messa..." {
		t.Errorf("FormatPreview(long, 10) = %s", got)
	}
}

func TestFormatInstructor(t *testing.T) {
	w := model.Workshop{}
	if got := FormatInstructor(w); got != "Not Assigned" {
		t.Errorf("FormatInstructor(no instructor) = %s, want Not Assigned", got)
	}

	w.Instructor = &model.User{
		FirstName: "Asha",
		LastName:  "Rao",
		Profile:   &model.Profile{Institute: "IIT Bombay"},
	}
	if got := FormatInstructor(w); got != "Asha Rao (IIT Bombay)" {
		t.Errorf("FormatInstructor = %s", got)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	cfg, ok := r.Get("workshop")
	if !ok {
		t.Fatal("expected workshop config to be registered")
	}
	if cfg.PerPage != 25 {
		t.Errorf("workshop PerPage = %d, want 25", cfg.PerPage)
	}

	all := r.All()
	if len(all) != 12 {
		t.Errorf("expected 12 registered entities, got %d", len(all))
	}
	if all[0].Name != "profile" {
		t.Errorf("expected registration order to be preserved, first = %s", all[0].Name)
	}

	if _, ok := r.Get("nope"); ok {
		t.Error("expected unknown entity lookup to fail")
	}
}
