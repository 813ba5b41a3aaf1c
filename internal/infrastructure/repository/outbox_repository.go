package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/saradorri/safecasino/internal/domain"
)

// OutboxRepository implements domain.OutboxRepository
type OutboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db *gorm.DB) domain.OutboxRepository {
	return &OutboxRepository{db: db}
}

// Save persists a new outbox event
func (r *OutboxRepository) Save(event *domain.OutboxEvent) error {
	if event.Status == "" {
		event.Status = domain.EventStatusPending
	}
	event.CreatedAt = time.Now()
	return r.db.Create(event).Error
}

// GetPendingEvents retrieves pending events oldest first
func (r *OutboxRepository) GetPendingEvents(limit int) ([]*domain.OutboxEvent, error) {
	var events []*domain.OutboxEvent
	err := r.db.Where("status = ?", domain.EventStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// MarkAsProcessed marks an event as delivered
func (r *OutboxRepository) MarkAsProcessed(eventID string) error {
	now := time.Now()
	return r.db.Model(&domain.OutboxEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"status":       domain.EventStatusProcessed,
			"processed_at": &now,
		}).Error
}

// MarkAsFailed marks an event as permanently failed
func (r *OutboxRepository) MarkAsFailed(eventID string, errMsg string) error {
	return r.db.Model(&domain.OutboxEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"status": domain.EventStatusFailed,
			"error":  &errMsg,
		}).Error
}

// IncrementRetryCount bumps the retry counter for a failed delivery attempt
func (r *OutboxRepository) IncrementRetryCount(eventID string) error {
	return r.db.Model(&domain.OutboxEvent{}).
		Where("id = ?", eventID).
		Update("retry_count", gorm.Expr("retry_count + 1")).Error
}
