package postgres_test

import (
	"context"
	"testing"
	"time"

	"donorlink-backend/internal/domain"
	"donorlink-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var feedbackRows = []string{
	"id", "donation_id", "from_id", "to_id", "rating", "comment", "created_at",
	"from_name", "from_type", "to_name", "to_type", "donation_name",
}

func TestFeedbackRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFeedbackRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := &domain.Feedback{
			DonationID: 12,
			FromID:     "ngo-1",
			ToID:       "donor-1",
			Rating:     5,
			Comment:    "Great condition",
		}

		mock.ExpectQuery("INSERT INTO feedback").
			WithArgs(f.DonationID, f.FromID, f.ToID, f.Rating, f.Comment, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		err := repo.Create(ctx, f)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), f.ID)
	})

	t.Run("DuplicateSubmission", func(t *testing.T) {
		f := &domain.Feedback{DonationID: 12, FromID: "ngo-1", ToID: "donor-1", Rating: 4}

		mock.ExpectQuery("INSERT INTO feedback").
			WithArgs(f.DonationID, f.FromID, f.ToID, f.Rating, f.Comment, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, f)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestFeedbackRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewFeedbackRepository(db)
	ctx := context.Background()

	t.Run("ByDonation", func(t *testing.T) {
		rows := sqlmock.NewRows(feedbackRows).
			AddRow(4, 12, "ngo-1", "donor-1", 5, "Great condition", time.Now(),
				"Hope Trust", "ngo", "Asif", "donor", "Winter Jackets")

		mock.ExpectQuery("SELECT (.+) FROM feedback f").
			WithArgs(int32(12)).
			WillReturnRows(rows)

		feedback, err := repo.List(ctx, domain.FeedbackFilter{DonationID: 12})
		assert.NoError(t, err)
		assert.Len(t, feedback, 1)
		assert.Equal(t, "Hope Trust", feedback[0].FromName)
		assert.Equal(t, "Winter Jackets", feedback[0].DonationName)
	})

	t.Run("ByParticipantMatchesEitherSide", func(t *testing.T) {
		rows := sqlmock.NewRows(feedbackRows).
			AddRow(4, 12, "ngo-1", "donor-1", 5, "Great condition", time.Now(),
				"Hope Trust", "ngo", "Asif", "donor", "Winter Jackets").
			AddRow(5, 13, "donor-1", "ngo-2", 3, "", time.Now(),
				"Asif", "donor", "Care Org", "ngo", "Desks")

		mock.ExpectQuery("SELECT (.+) FROM feedback f").
			WithArgs("donor-1").
			WillReturnRows(rows)

		feedback, err := repo.List(ctx, domain.FeedbackFilter{DonorID: "donor-1"})
		assert.NoError(t, err)
		assert.Len(t, feedback, 2)
	})
}
