package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

// Processor implements domain.OutboxProcessor. It drains pending
// notification events and hands them to the mail collaborator;
// delivery failures are retried a bounded number of times and never
// propagate to the operation that enqueued the event.
type Processor struct {
	outboxRepo  domain.OutboxRepository
	accountRepo domain.AccountRepository
	sender      domain.EmailSender
	logger      *logger.Logger
	maxRetries  int
	interval    time.Duration

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	accountRepo domain.AccountRepository,
	sender domain.EmailSender,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo:  outboxRepo,
		accountRepo: accountRepo,
		sender:      sender,
		logger:      logger,
		maxRetries:  5,
		interval:    10 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// ProcessEvents processes all pending events
func (p *Processor) ProcessEvents() error {
	if err := p.checkCancellation(); err != nil {
		return err
	}

	events, err := p.outboxRepo.GetPendingEvents(100)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		select {
		case <-p.ctx.Done():
			return fmt.Errorf("processor cancelled")
		default:
		}

		if err := p.ProcessEvent(event); err != nil {
			p.logger.Error("Failed to process event",
				zap.String("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Error(err))

			if event.RetryCount < p.maxRetries {
				if retryErr := p.outboxRepo.IncrementRetryCount(event.ID); retryErr != nil {
					p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
				}
			} else {
				if failErr := p.outboxRepo.MarkAsFailed(event.ID, err.Error()); failErr != nil {
					p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
				}
			}
			continue
		}

		if err := p.outboxRepo.MarkAsProcessed(event.ID); err != nil {
			p.logger.Error("Failed to mark event as processed",
				zap.String("eventID", event.ID),
				zap.Error(err))
		}
	}

	return nil
}

// ProcessEvent delivers a single notification event
func (p *Processor) ProcessEvent(event *domain.OutboxEvent) error {
	p.logger.Debug("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	accountID, ok := event.Data["account_id"].(string)
	if !ok {
		return fmt.Errorf("invalid account_id in event data")
	}

	account, err := p.accountRepo.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to load account %s: %w", accountID, err)
	}
	if account == nil {
		// Account deleted since the event was written; nothing to send.
		p.logger.Warn("Dropping notification for deleted account",
			zap.String("eventID", event.ID),
			zap.String("accountID", accountID))
		return nil
	}

	switch event.Type {
	case domain.EventTypeVerificationEmail:
		token, ok := event.Data["token"].(string)
		if !ok {
			return fmt.Errorf("invalid token in event data")
		}
		return p.sender.SendVerificationEmail(account, token)
	case domain.EventTypePasswordResetEmail:
		token, ok := event.Data["token"].(string)
		if !ok {
			return fmt.Errorf("invalid token in event data")
		}
		return p.sender.SendPasswordResetEmail(account, token)
	case domain.EventTypeWelcomeEmail:
		return p.sender.SendWelcomeEmail(account)
	}

	return fmt.Errorf("unknown event type: %s", event.Type)
}

// checkCancellation checks if the processor has been cancelled
func (p *Processor) checkCancellation() error {
	select {
	case <-p.ctx.Done():
		return fmt.Errorf("processor cancelled")
	default:
		return nil
	}
}

// StartBackgroundProcessing starts the background processing loop
func (p *Processor) StartBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		p.logger.Warn("Outbox processor is already running")
		return
	}
	p.isRunning = true

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.logger.Info("Outbox processor started")
		for {
			select {
			case <-p.ctx.Done():
				p.logger.Info("Outbox processor stopped")
				return
			case <-ticker.C:
				if err := p.ProcessEvents(); err != nil {
					p.logger.Error("Outbox processing pass failed", zap.Error(err))
				}
			}
		}
	}()
}

// StopBackgroundProcessing stops the background processing loop
func (p *Processor) StopBackgroundProcessing() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		return
	}

	p.cancel()
	p.wg.Wait()
	p.isRunning = false
}
