package admin

import (
	"fmt"
	"strings"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
)

// StatusBadge pairs the status label with the color the admin list renders
// it in.
type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

func FormatStatusBadge(status constant.WorkshopStatus) StatusBadge {
	switch status {
	case constant.WorkshopStatusPending:
		return StatusBadge{Label: "Pending", Color: "orange"}
	case constant.WorkshopStatusAccepted:
		return StatusBadge{Label: "Accepted", Color: "green"}
	case constant.WorkshopStatusDeleted:
		return StatusBadge{Label: "Deleted", Color: "red"}
	default:
		return StatusBadge{Label: "Unknown", Color: "gray"}
	}
}

// FormatRatingStars renders a 1-5 score as filled and hollow stars,
// e.g. 3 -> "★★★☆☆". Out-of-range scores are clamped.
func FormatRatingStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// FormatFileSize humanizes a byte count. Unknown sizes (negative) come back
// as "Unknown" instead of failing the listing.
func FormatFileSize(size int64) string {
	switch {
	case size < 0:
		return "Unknown"
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}

// FormatPreview truncates long text for list columns.
func FormatPreview(s string, n int) string {
	if n <= 0 || len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// FormatCoordinator shows the coordinator with their institute.
func FormatCoordinator(w model.Workshop) string {
	if w.Coordinator.Profile != nil {
		return fmt.Sprintf("%s (%s)", w.Coordinator.FullName(), w.Coordinator.Profile.Institute)
	}
	return w.Coordinator.FullName()
}

// FormatInstructor falls back to "Not Assigned" while the workshop waits for
// an instructor.
func FormatInstructor(w model.Workshop) string {
	if w.Instructor == nil {
		return "Not Assigned"
	}
	if w.Instructor.Profile != nil {
		return fmt.Sprintf("%s (%s)", w.Instructor.FullName(), w.Instructor.Profile.Institute)
	}
	return w.Instructor.FullName()
}
