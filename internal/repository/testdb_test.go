package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestRepository connects to the database named by TEST_DATABASE_DSN and
// returns a Repository bound to a transaction that is rolled back when the
// test finishes, so runs leave no rows behind. Tests that need the database
// are skipped when the variable is unset.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping database test")
	}

	// TranslateError mirrors the production connection so duplicate-key
	// failures surface as gorm.ErrDuplicatedKey here too.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext;").Error; err != nil {
		t.Fatalf("Failed to create citext extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.WorkshopCategory{},
		&model.WorkshopType{},
		&model.Workshop{},
		&model.WorkshopRating{},
		&model.ChatMessage{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin test transaction: %v", tx.Error)
	}
	t.Cleanup(func() {
		tx.Rollback()
	})

	return NewRepository(tx, util.NewLogger(), nil)
}

func seedUser(t *testing.T, repo *Repository, email string) *model.User {
	t.Helper()

	user := &model.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  "not-a-real-hash",
	}
	if err := repo.User.Create(context.Background(), nil, user); err != nil {
		t.Fatalf("Failed to seed user %s: %v", email, err)
	}

	return user
}

func seedWorkshop(t *testing.T, repo *Repository, coordinatorId string) *model.Workshop {
	t.Helper()
	ctx := context.Background()

	workshopType, err := repo.WorkshopType.Create(ctx, nil, &model.WorkshopType{
		Name:               "Robotics Basics",
		Description:        "Build and program a line-following robot.",
		Duration:           2,
		TermsAndConditions: "Equipment must be returned after the workshop.",
	})
	if err != nil {
		t.Fatalf("Failed to seed workshop type: %v", err)
	}

	workshop, err := repo.Workshop.Create(ctx, nil, &model.Workshop{
		Date:           time.Now().AddDate(0, 0, 7),
		TncAccepted:    true,
		CoordinatorID:  coordinatorId,
		WorkshopTypeID: workshopType.ID,
	})
	if err != nil {
		t.Fatalf("Failed to seed workshop: %v", err)
	}

	return workshop
}
