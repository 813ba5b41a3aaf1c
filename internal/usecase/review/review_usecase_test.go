package review

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/domain/mocks"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

func newReviewFixture(ctrl *gomock.Controller) (*mocks.MockReviewRepository, *mocks.MockGameRepository, *ReviewUseCase) {
	reviewRepo := mocks.NewMockReviewRepository(ctrl)
	gameRepo := mocks.NewMockGameRepository(ctrl)
	useCase := &ReviewUseCase{
		reviewRepo: reviewRepo,
		gameRepo:   gameRepo,
		logger:     logger.NewLogger("test", "debug"),
	}
	return reviewRepo, gameRepo, useCase
}

func validReviewInput() domain.ReviewInput {
	return domain.ReviewInput{
		Title:  "Great wheel",
		Body:   "Spins fast, pays out fair.",
		Rating: 4,
	}
}

func TestReviewUseCase_CreateReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	game := &domain.CasinoGame{ID: 7, Name: "Lucky Wheel"}

	t.Run("new review starts unapproved", func(t *testing.T) {
		reviewRepo, gameRepo, useCase := newReviewFixture(ctrl)
		gameRepo.EXPECT().GetByID(int64(7)).Return(game, nil)
		reviewRepo.EXPECT().GetByAuthorAndGame("acc-1", int64(7)).Return(nil, nil)
		reviewRepo.EXPECT().Create(gomock.Any()).Return(nil)

		review, err := useCase.CreateReview("acc-1", 7, validReviewInput())

		assert.NoError(t, err)
		assert.False(t, review.IsApproved)
		assert.Equal(t, "acc-1", review.AccountID)
		assert.Equal(t, int64(7), review.GameID)
	})

	t.Run("second review for the same game is a conflict", func(t *testing.T) {
		reviewRepo, gameRepo, useCase := newReviewFixture(ctrl)
		gameRepo.EXPECT().GetByID(int64(7)).Return(game, nil)
		reviewRepo.EXPECT().GetByAuthorAndGame("acc-1", int64(7)).Return(&domain.Review{ID: 3}, nil)

		review, err := useCase.CreateReview("acc-1", 7, validReviewInput())

		assert.Nil(t, review)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeDuplicateReview, appErr.Code)
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		_, gameRepo, useCase := newReviewFixture(ctrl)
		gameRepo.EXPECT().GetByID(int64(99)).Return(nil, nil)

		review, err := useCase.CreateReview("acc-1", 99, validReviewInput())

		assert.Nil(t, review)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeGameNotFound, appErr.Code)
	})

	t.Run("out of range ratings are rejected", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, _, useCase := newReviewFixture(ctrl)
			input := validReviewInput()
			input.Rating = rating

			_, err := useCase.CreateReview("acc-1", 7, input)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidRating, appErr.Code)
		}
	})
}

func TestReviewUseCase_EditReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("author edit resets approval", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{
			ID:         3,
			AccountID:  "acc-1",
			IsApproved: true,
			Rating:     5,
		}, nil)
		reviewRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *domain.Review) error {
			assert.False(t, updated.IsApproved)
			assert.Equal(t, 4, updated.Rating)
			return nil
		})

		review, err := useCase.EditReview(3, "acc-1", validReviewInput())

		assert.NoError(t, err)
		assert.False(t, review.IsApproved)
	})

	t.Run("only the author can edit", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{ID: 3, AccountID: "acc-1"}, nil)

		review, err := useCase.EditReview(3, "someone-else", validReviewInput())

		assert.Nil(t, review)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}

func TestReviewUseCase_DeleteReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("the author can delete their own review", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{ID: 3, AccountID: "acc-1"}, nil)
		reviewRepo.EXPECT().Delete(int64(3)).Return(nil)

		assert.NoError(t, useCase.DeleteReview(3, "acc-1", false))
	})

	t.Run("staff can delete any review", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{ID: 3, AccountID: "acc-1"}, nil)
		reviewRepo.EXPECT().Delete(int64(3)).Return(nil)

		assert.NoError(t, useCase.DeleteReview(3, "mod-1", true))
	})

	t.Run("other players cannot delete", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{ID: 3, AccountID: "acc-1"}, nil)

		err := useCase.DeleteReview(3, "acc-2", false)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}

func TestReviewUseCase_ApproveReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("approval makes the review visible", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{ID: 3, IsApproved: false}, nil)
		reviewRepo.EXPECT().Update(gomock.Any()).Return(nil)

		review, err := useCase.ApproveReview(3, true)

		assert.NoError(t, err)
		assert.True(t, review.IsApproved)
	})

	t.Run("approving twice is a no-op", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().GetByID(int64(3)).Return(&domain.Review{ID: 3, IsApproved: true}, nil)

		review, err := useCase.ApproveReview(3, true)

		assert.NoError(t, err)
		assert.True(t, review.IsApproved)
	})

	t.Run("non-staff cannot approve", func(t *testing.T) {
		_, _, useCase := newReviewFixture(ctrl)

		review, err := useCase.ApproveReview(3, false)

		assert.Nil(t, review)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, "FORBIDDEN", appErr.Code)
	})
}

func TestReviewUseCase_ListVisibleReviews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviews := []*domain.Review{
		{ID: 1, AccountID: "acc-1", IsApproved: true},
		{ID: 2, AccountID: "acc-2", IsApproved: false},
		{ID: 3, AccountID: "acc-3", IsApproved: false},
	}

	t.Run("players see approved reviews plus their own pending one", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().ListByGame(int64(7), false).Return(reviews, nil)

		visible, err := useCase.ListVisibleReviews(7, "acc-2", false)

		assert.NoError(t, err)
		assert.Len(t, visible, 2)
		assert.Equal(t, int64(1), visible[0].ID)
		assert.Equal(t, int64(2), visible[1].ID)
	})

	t.Run("staff see everything", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().ListByGame(int64(7), false).Return(reviews, nil)

		visible, err := useCase.ListVisibleReviews(7, "mod-1", true)

		assert.NoError(t, err)
		assert.Len(t, visible, 3)
	})

	t.Run("anonymous requesters see only approved reviews", func(t *testing.T) {
		reviewRepo, _, useCase := newReviewFixture(ctrl)
		reviewRepo.EXPECT().ListByGame(int64(7), false).Return(reviews, nil)

		visible, err := useCase.ListVisibleReviews(7, "", false)

		assert.NoError(t, err)
		assert.Len(t, visible, 1)
	})
}

func TestReviewUseCase_GameRatingStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	game := &domain.CasinoGame{ID: 7, Name: "Lucky Wheel"}

	t.Run("stats aggregate approved ratings only", func(t *testing.T) {
		reviewRepo, gameRepo, useCase := newReviewFixture(ctrl)
		gameRepo.EXPECT().GetByID(int64(7)).Return(game, nil)
		reviewRepo.EXPECT().ApprovedRatings(int64(7)).Return([]int{5, 4, 4, 2}, nil)

		stats, err := useCase.GameRatingStats(7)

		assert.NoError(t, err)
		assert.Equal(t, 4, stats.ReviewCount)
		assert.Equal(t, 3.75, stats.AverageScore)
		assert.Equal(t, 2, stats.Histogram[4])
		assert.Equal(t, 1, stats.Histogram[5])
		assert.Equal(t, 0, stats.Histogram[3])
	})

	t.Run("a game with no approved reviews reports zeroes", func(t *testing.T) {
		reviewRepo, gameRepo, useCase := newReviewFixture(ctrl)
		gameRepo.EXPECT().GetByID(int64(7)).Return(game, nil)
		reviewRepo.EXPECT().ApprovedRatings(int64(7)).Return(nil, nil)

		stats, err := useCase.GameRatingStats(7)

		assert.NoError(t, err)
		assert.Equal(t, 0, stats.ReviewCount)
		assert.Zero(t, stats.AverageScore)
		assert.Len(t, stats.Histogram, 5)
	})

	t.Run("average is rounded to two decimals", func(t *testing.T) {
		reviewRepo, gameRepo, useCase := newReviewFixture(ctrl)
		gameRepo.EXPECT().GetByID(int64(7)).Return(game, nil)
		reviewRepo.EXPECT().ApprovedRatings(int64(7)).Return([]int{5, 4, 4}, nil)

		stats, err := useCase.GameRatingStats(7)

		assert.NoError(t, err)
		assert.Equal(t, 4.33, stats.AverageScore)
	})
}
