package report

import (
	"reflect"
	"testing"

	"github.com/SeakMengs/WorkshopHub/internal/model"
)

func TestTally(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantLabels []string
		wantCounts []int
	}{
		{
			name:       "Empty input",
			keys:       []string{},
			wantLabels: []string{},
			wantCounts: []int{},
		},
		{
			name:       "Nil input",
			keys:       nil,
			wantLabels: []string{},
			wantCounts: []int{},
		},
		{
			name:       "Single key",
			keys:       []string{"Python Basics"},
			wantLabels: []string{"Python Basics"},
			wantCounts: []int{1},
		},
		{
			name:       "Descending frequency",
			keys:       []string{"a", "b", "b", "c", "b", "c"},
			wantLabels: []string{"b", "c", "a"},
			wantCounts: []int{3, 2, 1},
		},
		{
			name:       "Ties keep first-seen order",
			keys:       []string{"x", "y", "z", "y", "x", "z"},
			wantLabels: []string{"x", "y", "z"},
			wantCounts: []int{2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, counts := Tally(tt.keys)
			if !reflect.DeepEqual(labels, tt.wantLabels) {
				t.Errorf("labels = %v, want %v", labels, tt.wantLabels)
			}
			if !reflect.DeepEqual(counts, tt.wantCounts) {
				t.Errorf("counts = %v, want %v", counts, tt.wantCounts)
			}
		})
	}
}

func workshopInState(state string) model.Workshop {
	return model.Workshop{
		Coordinator: model.User{
			Profile: &model.Profile{State: state},
		},
	}
}

func TestTallyByCoordinatorState(t *testing.T) {
	workshops := []model.Workshop{
		workshopInState("IN-MH"),
		workshopInState("IN-KL"),
		workshopInState("IN-MH"),
		// no profile, must be skipped
		{Coordinator: model.User{}},
	}

	labels, counts := TallyByCoordinatorState(workshops)

	wantLabels := []string{"Maharashtra", "Kerala"}
	wantCounts := []int{2, 1}
	if !reflect.DeepEqual(labels, wantLabels) {
		t.Errorf("labels = %v, want %v", labels, wantLabels)
	}
	if !reflect.DeepEqual(counts, wantCounts) {
		t.Errorf("counts = %v, want %v", counts, wantCounts)
	}
}

func TestTallyByCoordinatorStateEmpty(t *testing.T) {
	labels, counts := TallyByCoordinatorState(nil)
	if len(labels) != 0 || len(counts) != 0 {
		t.Errorf("expected two empty sequences, got %v and %v", labels, counts)
	}
}

func TestTallyByWorkshopType(t *testing.T) {
	workshops := []model.Workshop{
		{WorkshopType: model.WorkshopType{Name: "Python Basics"}},
	}

	labels, counts := TallyByWorkshopType(workshops)

	if !reflect.DeepEqual(labels, []string{"Python Basics"}) {
		t.Errorf("labels = %v, want [Python Basics]", labels)
	}
	if !reflect.DeepEqual(counts, []int{1}) {
		t.Errorf("counts = %v, want [1]", counts)
	}
}

func TestTallyByWorkshopTypeEmpty(t *testing.T) {
	labels, counts := TallyByWorkshopType([]model.Workshop{})
	if len(labels) != 0 || len(counts) != 0 {
		t.Errorf("expected two empty sequences, got %v and %v", labels, counts)
	}
}
