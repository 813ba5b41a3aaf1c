package app

import (
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
	"github.com/saradorri/safecasino/internal/infrastructure/outbox"
)

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	accountRepo domain.AccountRepository,
	sender domain.EmailSender,
	logger *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(outboxRepo, accountRepo, sender, logger)
}
