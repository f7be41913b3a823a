package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/model"
)

func TestRateRejectsSecondRatingForSamePair(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	coordinator := seedUser(t, repo, "coordinator@example.com")
	workshop := seedWorkshop(t, repo, coordinator.ID)

	_, err := repo.Rating.Rate(ctx, nil, &model.WorkshopRating{
		Rating:     5,
		Feedback:   "Great session",
		WorkshopID: workshop.ID,
		UserID:     coordinator.ID,
	})
	if err != nil {
		t.Fatalf("First rating failed: %v", err)
	}

	_, err = repo.Rating.Rate(ctx, nil, &model.WorkshopRating{
		Rating:     3,
		WorkshopID: workshop.ID,
		UserID:     coordinator.ID,
	})
	if !errors.Is(err, apperror.ErrDuplicateRating) {
		t.Fatalf("Second rating for the same workshop and user returned %v, want ErrDuplicateRating", err)
	}
}

func TestRateAllowsDifferentUsersOnSameWorkshop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	coordinator := seedUser(t, repo, "coordinator@example.com")
	instructor := seedUser(t, repo, "instructor@example.com")
	workshop := seedWorkshop(t, repo, coordinator.ID)

	for _, rating := range []*model.WorkshopRating{
		{Rating: 5, WorkshopID: workshop.ID, UserID: coordinator.ID},
		{Rating: 3, WorkshopID: workshop.ID, UserID: instructor.ID},
	} {
		if _, err := repo.Rating.Rate(ctx, nil, rating); err != nil {
			t.Fatalf("Rating by user %s failed: %v", rating.UserID, err)
		}
	}

	avg, err := repo.Rating.AverageForWorkshop(ctx, nil, workshop.ID)
	if err != nil {
		t.Fatalf("AverageForWorkshop failed: %v", err)
	}
	if avg != 4 {
		t.Errorf("AverageForWorkshop = %v, want 4", avg)
	}
}
