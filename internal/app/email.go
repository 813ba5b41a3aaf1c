package app

import (
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/email"
)

func (a *application) InitEmailService() domain.EmailSender {
	return email.NewEmailService(a.config.Mail)
}
