package util

import "testing"

func TestAttachmentObjectKey(t *testing.T) {
	tests := []struct {
		name             string
		workshopTypeName string
		fileName         string
		want             string
	}{
		{"spaces become underscores", "Python Basics", "schedule.pdf", "Python_Basics/schedule.pdf"},
		{"single word", "Arduino", "notes.txt", "Arduino/notes.txt"},
		{"path is stripped to base", "Python Basics", "uploads/tmp/schedule.pdf", "Python_Basics/schedule.pdf"},
		{"multiple spaces", "3D Printing for Beginners", "guide.pdf", "3D_Printing_for_Beginners/guide.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttachmentObjectKey(tt.workshopTypeName, tt.fileName); got != tt.want {
				t.Errorf("AttachmentObjectKey(%q, %q) = %q, want %q", tt.workshopTypeName, tt.fileName, got, tt.want)
			}
		})
	}
}
