package domain

import "time"

// Review is a player's opinion of a game. It stays invisible to other
// players until moderation approves it.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Title      string    `json:"title" gorm:"not null;type:varchar(128)"`
	Body       string    `json:"body" gorm:"not null;type:text"`
	Rating     int       `json:"rating" gorm:"not null"`
	IsApproved bool      `json:"is_approved" gorm:"not null;default:false"`
	AccountID  string    `json:"account_id" gorm:"uniqueIndex:idx_reviews_account_game;not null;type:uuid"`
	GameID     int64     `json:"game_id" gorm:"uniqueIndex:idx_reviews_account_game;not null;type:bigint"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null"`

	Account Account    `json:"-" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Game    CasinoGame `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Review
func (r Review) TableName() string {
	return "reviews"
}

// RatingStats aggregates approved reviews of a game
type RatingStats struct {
	GameID       int64         `json:"game_id"`
	ReviewCount  int           `json:"review_count"`
	AverageScore float64       `json:"average_score"`
	Histogram    map[int]int   `json:"histogram"`
}

// ReviewFilter narrows staff review listings
type ReviewFilter struct {
	PendingOnly bool
	Limit       int
	Offset      int
}

// ReviewRepository defines the interface for review data
type ReviewRepository interface {
	GetByID(id int64) (*Review, error)
	GetByAuthorAndGame(accountID string, gameID int64) (*Review, error)
	Create(review *Review) error
	Update(review *Review) error
	Delete(id int64) error
	ListByGame(gameID int64, approvedOnly bool) ([]*Review, error)
	ListByAuthor(accountID string) ([]*Review, error)
	ListAll(filter ReviewFilter) ([]*Review, int64, error)
	ApprovedRatings(gameID int64) ([]int, error)
}

// ReviewInput carries the author-editable review fields
type ReviewInput struct {
	Title  string
	Body   string
	Rating int
}

// ReviewUseCase defines the interface for review moderation logic
type ReviewUseCase interface {
	CreateReview(authorID string, gameID int64, input ReviewInput) (*Review, error)
	EditReview(reviewID int64, editorID string, input ReviewInput) (*Review, error)
	DeleteReview(reviewID int64, actorID string, actorIsStaff bool) error
	ApproveReview(reviewID int64, actorIsStaff bool) (*Review, error)
	ListVisibleReviews(gameID int64, requesterID string, requesterIsStaff bool) ([]*Review, error)
	ListAllReviews(filter ReviewFilter) ([]*Review, int64, error)
	ListByAuthor(accountID string) ([]*Review, error)
	GameRatingStats(gameID int64) (*RatingStats, error)
}
