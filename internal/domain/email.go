package domain

// EmailSender is the outbound notification collaborator. Delivery is
// best-effort: a failed send never rolls back the operation that
// triggered it.
type EmailSender interface {
	SendVerificationEmail(account *Account, token string) error
	SendPasswordResetEmail(account *Account, token string) error
	SendWelcomeEmail(account *Account) error
}
