package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/saradorri/safecasino/internal/config"
	"github.com/saradorri/safecasino/internal/domain"
)

// message is the payload the mail API accepts
type message struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	BodyText string `json:"body_text"`
}

type emailService struct {
	cfg    config.MailConfig
	client *retryablehttp.Client
}

// NewEmailService creates an EmailSender backed by the HTTP mail API
func NewEmailService(cfg config.MailConfig) domain.EmailSender {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 15 * time.Second
	client.Logger = nil

	return &emailService{cfg: cfg, client: client}
}

// SendVerificationEmail mails the single-use email verification link
func (s *emailService) SendVerificationEmail(account *domain.Account, token string) error {
	link := fmt.Sprintf("%s/verify-email?accountId=%s&token=%s", s.cfg.BaseLinkURL, account.ID, token)
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to SafeCasino. Confirm your email address within 24 hours:\n\n%s\n\nIf you did not create this account you can ignore this message.",
		account.FirstName, link,
	)
	return s.send(account.Email, "Confirm your SafeCasino account", body)
}

// SendPasswordResetEmail mails the single-use password reset link
func (s *emailService) SendPasswordResetEmail(account *domain.Account, token string) error {
	link := fmt.Sprintf("%s/reset-password?accountId=%s&token=%s", s.cfg.BaseLinkURL, account.ID, token)
	body := fmt.Sprintf(
		"Hi %s,\n\nA password reset was requested for your account. The link below is valid for one hour:\n\n%s\n\nIf you did not request this you can ignore this message.",
		account.FirstName, link,
	)
	return s.send(account.Email, "Reset your SafeCasino password", body)
}

// SendWelcomeEmail mails the post-verification welcome message
func (s *emailService) SendWelcomeEmail(account *domain.Account) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour email address is confirmed and your welcome bonus has been credited. Have fun, and play responsibly.",
		account.FirstName,
	)
	return s.send(account.Email, "Welcome to SafeCasino", body)
}

// send posts a message to the mail API
func (s *emailService) send(to, subject, bodyText string) error {
	payload, err := json.Marshal(message{
		From:     s.cfg.FromAddress,
		To:       to,
		Subject:  subject,
		BodyText: bodyText,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, s.cfg.URL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create mail request: %w", err)
	}
	req.Header.Set("x-api-key", s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail service error: unexpected status %d - %s", resp.StatusCode, string(respBody))
	}

	return nil
}
