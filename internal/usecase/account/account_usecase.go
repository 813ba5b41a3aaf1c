package account

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/config"
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/auth"
	"github.com/saradorri/safecasino/internal/infrastructure/lock"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
	"github.com/saradorri/safecasino/internal/infrastructure/password"
)

// AccountUseCase implements domain.AccountUseCase
type AccountUseCase struct {
	accountRepo domain.AccountRepository
	roleRepo    domain.RoleRepository
	tokenRepo   domain.AuthTokenRepository
	outboxRepo  domain.OutboxRepository
	jwtSvc      auth.JWTService
	lockManager *lock.KeyedLockManager
	cfg         config.AccountConfig
	logger      *logger.Logger
}

// NewAccountUseCase creates a new account use case
func NewAccountUseCase(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	tokenRepo domain.AuthTokenRepository,
	outboxRepo domain.OutboxRepository,
	jwtSvc auth.JWTService,
	lockManager *lock.KeyedLockManager,
	cfg config.AccountConfig,
	logger *logger.Logger,
) domain.AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		roleRepo:    roleRepo,
		tokenRepo:   tokenRepo,
		outboxRepo:  outboxRepo,
		jwtSvc:      jwtSvc,
		lockManager: lockManager,
		cfg:         cfg,
		logger:      logger,
	}
}

// Register creates a new unconfirmed account and queues a verification email
func (uc *AccountUseCase) Register(input domain.RegisterInput) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	uc.logger.Info("Starting account registration", zap.String("email", email))

	if email == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("email", "email format is invalid")
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, domain.NewValidationError("first_name", "first name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, domain.NewValidationError("last_name", "last name is required")
	}
	if input.DateOfBirth.IsZero() {
		return nil, domain.NewValidationError("date_of_birth", "date of birth is required")
	}

	if violations := password.CheckPolicy(input.Password, uc.cfg.Password); len(violations) > 0 {
		err := domain.NewBusinessRuleError(domain.ErrCodeWeakPassword, "Password does not meet the strength requirements")
		for _, v := range violations {
			err.WithField("password", v)
		}
		return nil, err
	}

	now := time.Now().UTC()
	candidate := &domain.Account{DateOfBirth: input.DateOfBirth}
	if candidate.Age(now) < uc.cfg.MinimumAge {
		uc.logger.Warn("Registration rejected - underage applicant", zap.String("email", email))
		return nil, domain.NewBusinessRuleError(domain.ErrCodeUnderage, "You must be at least 18 years old to register")
	}

	existing, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return nil, domain.NewDatabaseError("get account by email", err)
	}
	if existing != nil {
		uc.logger.Warn("Registration rejected - email already registered", zap.String("email", email))
		return nil, domain.NewConflictError(domain.ErrCodeDuplicateEmail, "An account with this email already exists")
	}

	hash, err := password.Hash(input.Password, password.DefaultParams())
	if err != nil {
		return nil, domain.NewInternalError("Failed to hash password", err)
	}

	account := &domain.Account{
		ID:             uuid.NewString(),
		Email:          email,
		PasswordHash:   hash,
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		DateOfBirth:    input.DateOfBirth,
		RegisteredAt:   now,
		EmailConfirmed: false,
		AgeVerified:    false,
		IsActive:       true,
	}

	if err := uc.accountRepo.Create(account); err != nil {
		// The unique index on email is the authoritative guard; a
		// concurrent registration loses here.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") ||
			strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, domain.NewConflictError(domain.ErrCodeDuplicateEmail, "An account with this email already exists")
		}
		return nil, domain.NewDatabaseError("create account", err)
	}

	playerRole, err := uc.roleRepo.GetByName(domain.RolePlayer)
	if err != nil {
		return nil, domain.NewDatabaseError("get role", err)
	}
	if playerRole != nil {
		if err := uc.roleRepo.AssignToAccount(account.ID, playerRole.ID); err != nil {
			return nil, domain.NewDatabaseError("assign role", err)
		}
		account.Roles = []domain.Role{*playerRole}
	}

	uc.enqueueTokenEmail(account.ID, domain.TokenPurposeEmailVerify, uc.cfg.VerifyTokenTTL, domain.EventTypeVerificationEmail)

	uc.logger.Info("Account registered",
		zap.String("account_id", account.ID),
		zap.String("email", email))

	return account, nil
}

// VerifyEmail redeems a verification token, confirms the address and
// credits the one-time welcome bonus
func (uc *AccountUseCase) VerifyEmail(accountID, token string) (*domain.Account, error) {
	uc.logger.Info("Verifying email", zap.String("account_id", accountID))

	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}
	if account.EmailConfirmed {
		return nil, domain.NewConflictError(domain.ErrCodeAlreadyConfirmed, "Email address is already confirmed")
	}

	if _, err := uc.redeemToken(accountID, domain.TokenPurposeEmailVerify, token); err != nil {
		return nil, err
	}

	account.EmailConfirmed = true
	account.AgeVerified = true
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, domain.NewDatabaseError("update account", err)
	}

	// Welcome bonus is credited exactly once, at confirmation. The
	// confirmed flag flip above gates retries.
	bonus := uc.cfg.WelcomeBonusAmount()
	if bonus.IsPositive() {
		key := "account:" + account.ID
		if lockErr := uc.lockManager.Lock(context.Background(), key); lockErr == nil {
			current, getErr := uc.accountRepo.GetByIDForUpdate(account.ID)
			if getErr == nil && current != nil {
				newBalance := current.Balance.Add(bonus)
				if balErr := uc.accountRepo.UpdateBalance(account.ID, newBalance); balErr != nil {
					uc.logger.Error("Failed to credit welcome bonus",
						zap.String("account_id", account.ID),
						zap.Error(balErr))
				} else {
					account.Balance = newBalance
				}
			}
			uc.lockManager.Unlock(key)
		}
	}

	uc.enqueueEvent(domain.EventTypeWelcomeEmail, domain.JSONB{"account_id": account.ID})

	uc.logger.Info("Email verified",
		zap.String("account_id", account.ID),
		zap.String("email", account.Email))

	return account, nil
}

// ResendVerification reissues a verification token. It reveals nothing
// about whether the address is registered.
func (uc *AccountUseCase) ResendVerification(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return domain.NewDatabaseError("get account by email", err)
	}
	if account == nil || account.EmailConfirmed {
		uc.logger.Debug("Verification resend skipped", zap.String("email", email))
		return nil
	}

	uc.enqueueTokenEmail(account.ID, domain.TokenPurposeEmailVerify, uc.cfg.VerifyTokenTTL, domain.EventTypeVerificationEmail)
	return nil
}

// Authenticate validates credentials and returns a signed session token.
// The failed-access counter and lockout decision run under a per-account
// lock so concurrent attempts cannot skip the threshold.
func (uc *AccountUseCase) Authenticate(email, pass string) (string, *domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	uc.logger.Info("Starting authentication", zap.String("email", email))

	if email == "" || pass == "" {
		return "", nil, domain.NewUnauthorizedError(domain.ErrCodeInvalidCredentials, "Invalid credentials")
	}

	probe, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return "", nil, domain.NewDatabaseError("get account by email", err)
	}
	if probe == nil {
		uc.logger.Warn("Authentication failed - account not found", zap.String("email", email))
		return "", nil, domain.NewUnauthorizedError(domain.ErrCodeInvalidCredentials, "Invalid credentials")
	}

	key := "account:" + probe.ID
	if err := uc.lockManager.Lock(context.Background(), key); err != nil {
		return "", nil, domain.NewInternalError("Failed to acquire account lock", err)
	}
	defer uc.lockManager.Unlock(key)

	// Re-read under the lock so the counter is current.
	account, err := uc.accountRepo.GetByID(probe.ID)
	if err != nil {
		return "", nil, domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return "", nil, domain.NewUnauthorizedError(domain.ErrCodeInvalidCredentials, "Invalid credentials")
	}

	now := time.Now().UTC()
	if account.IsLockedOut(now) {
		uc.logger.Warn("Authentication rejected - account locked out",
			zap.String("account_id", account.ID),
			zap.Timep("lockout_until", account.LockoutUntil))
		return "", nil, domain.NewAppError(domain.ErrCodeLockedOut,
			"Account is temporarily locked due to repeated failed sign-in attempts", http.StatusLocked, nil)
	}

	// Unconfirmed or disabled accounts are rejected before the password
	// is evaluated, so they never advance the failed-access counter.
	if !account.EmailConfirmed {
		uc.logger.Warn("Authentication rejected - email not confirmed",
			zap.String("account_id", account.ID))
		return "", nil, domain.NewAppError(domain.ErrCodeEmailNotConfirmed,
			"Email address has not been confirmed", http.StatusForbidden, nil)
	}
	if !account.IsActive {
		return "", nil, domain.NewForbiddenError("Account is disabled")
	}

	ok, err := password.Verify(pass, account.PasswordHash)
	if err != nil {
		return "", nil, domain.NewInternalError("Failed to verify password", err)
	}
	if !ok {
		failed := account.FailedAccessCount + 1
		var until *time.Time
		if failed >= uc.cfg.LockoutThreshold {
			t := now.Add(uc.cfg.LockoutDuration)
			until = &t
			failed = 0
			uc.logger.Warn("Account locked out after repeated failures",
				zap.String("account_id", account.ID),
				zap.Time("lockout_until", t))
		}
		if recErr := uc.accountRepo.RecordFailedAccess(account.ID, failed, until); recErr != nil {
			uc.logger.Error("Failed to record failed access",
				zap.String("account_id", account.ID),
				zap.Error(recErr))
		}
		if until != nil {
			return "", nil, domain.NewAppError(domain.ErrCodeLockedOut,
				"Account is temporarily locked due to repeated failed sign-in attempts", http.StatusLocked, nil)
		}
		return "", nil, domain.NewUnauthorizedError(domain.ErrCodeInvalidCredentials, "Invalid credentials")
	}

	if account.FailedAccessCount > 0 || account.LockoutUntil != nil {
		if resetErr := uc.accountRepo.ResetAccessState(account.ID); resetErr != nil {
			uc.logger.Error("Failed to reset access state",
				zap.String("account_id", account.ID),
				zap.Error(resetErr))
		}
	}

	token, err := uc.jwtSvc.GenerateToken(account.ID, account.Email, account.RoleNames())
	if err != nil {
		return "", nil, domain.NewAppError(domain.ErrCodeTokenInvalid, "Token generation failed", http.StatusInternalServerError, err)
	}

	uc.logger.Info("Authentication successful",
		zap.String("account_id", account.ID),
		zap.Strings("roles", account.RoleNames()))

	return token, account, nil
}

// RequestPasswordReset issues a reset token. It reveals nothing about
// whether the address is registered.
func (uc *AccountUseCase) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := uc.accountRepo.GetByEmail(email)
	if err != nil {
		return domain.NewDatabaseError("get account by email", err)
	}
	if account == nil || !account.EmailConfirmed {
		uc.logger.Debug("Password reset skipped", zap.String("email", email))
		return nil
	}

	uc.enqueueTokenEmail(account.ID, domain.TokenPurposePasswordReset, uc.cfg.ResetTokenTTL, domain.EventTypePasswordResetEmail)

	uc.logger.Info("Password reset requested", zap.String("account_id", account.ID))
	return nil
}

// ResetPassword redeems a reset token and replaces the password. A
// successful reset also clears any pending lockout.
func (uc *AccountUseCase) ResetPassword(accountID, token, newPassword string) error {
	uc.logger.Info("Resetting password", zap.String("account_id", accountID))

	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}

	if violations := password.CheckPolicy(newPassword, uc.cfg.Password); len(violations) > 0 {
		appErr := domain.NewBusinessRuleError(domain.ErrCodeWeakPassword, "Password does not meet the strength requirements")
		for _, v := range violations {
			appErr.WithField("password", v)
		}
		return appErr
	}

	if _, err := uc.redeemToken(accountID, domain.TokenPurposePasswordReset, token); err != nil {
		return err
	}

	hash, err := password.Hash(newPassword, password.DefaultParams())
	if err != nil {
		return domain.NewInternalError("Failed to hash password", err)
	}

	account.PasswordHash = hash
	if err := uc.accountRepo.Update(account); err != nil {
		return domain.NewDatabaseError("update account", err)
	}

	if err := uc.tokenRepo.InvalidateForAccount(accountID, domain.TokenPurposePasswordReset); err != nil {
		uc.logger.Error("Failed to invalidate remaining reset tokens",
			zap.String("account_id", accountID),
			zap.Error(err))
	}
	if err := uc.accountRepo.ResetAccessState(accountID); err != nil {
		uc.logger.Error("Failed to reset access state after password reset",
			zap.String("account_id", accountID),
			zap.Error(err))
	}

	uc.logger.Info("Password reset completed", zap.String("account_id", accountID))
	return nil
}

// GetProfile retrieves the caller's own account
func (uc *AccountUseCase) GetProfile(accountID string) (*domain.Account, error) {
	return uc.GetAccount(accountID)
}

// UpdateProfile updates the caller's own display fields
func (uc *AccountUseCase) UpdateProfile(accountID string, input domain.UpdateProfileInput) (*domain.Account, error) {
	account, err := uc.GetAccount(accountID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.FirstName) == "" {
		return nil, domain.NewValidationError("first_name", "first name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, domain.NewValidationError("last_name", "last name is required")
	}

	account.FirstName = strings.TrimSpace(input.FirstName)
	account.LastName = strings.TrimSpace(input.LastName)
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, domain.NewDatabaseError("update account", err)
	}
	return account, nil
}

// ListAccounts returns a page of accounts for the admin console
func (uc *AccountUseCase) ListAccounts(limit, offset int) ([]*domain.Account, int64, error) {
	accounts, total, err := uc.accountRepo.List(limit, offset)
	if err != nil {
		return nil, 0, domain.NewDatabaseError("list accounts", err)
	}
	return accounts, total, nil
}

// GetAccount retrieves an account by ID
func (uc *AccountUseCase) GetAccount(id string) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}
	return account, nil
}

// UpdateAccount applies an admin edit. Nil fields are left untouched.
func (uc *AccountUseCase) UpdateAccount(id string, input domain.AdminUpdateInput) (*domain.Account, error) {
	account, err := uc.GetAccount(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.Balance != nil {
		if input.Balance.IsNegative() {
			return nil, domain.NewBusinessRuleError(domain.ErrCodeInvalidAmount, "Balance cannot be negative")
		}
		account.Balance = *input.Balance
	}
	if input.EmailConfirmed != nil {
		account.EmailConfirmed = *input.EmailConfirmed
	}
	if input.AgeVerified != nil {
		account.AgeVerified = *input.AgeVerified
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}

	if err := uc.accountRepo.Update(account); err != nil {
		return nil, domain.NewDatabaseError("update account", err)
	}

	uc.logger.Info("Account updated by admin", zap.String("account_id", id))
	return account, nil
}

// DeleteAccount removes an account and, via cascade, its tokens,
// reviews and role assignments
func (uc *AccountUseCase) DeleteAccount(id string) error {
	if _, err := uc.GetAccount(id); err != nil {
		return err
	}
	if err := uc.accountRepo.Delete(id); err != nil {
		return domain.NewDatabaseError("delete account", err)
	}
	uc.logger.Info("Account deleted", zap.String("account_id", id))
	return nil
}

// Lock places a manual lockout on an account. Admins cannot lock
// themselves out.
func (uc *AccountUseCase) Lock(actorID, accountID string, duration time.Duration) error {
	if actorID == accountID {
		return domain.NewBusinessRuleError(domain.ErrCodeCannotLockSelf, "You cannot lock your own account")
	}
	if _, err := uc.GetAccount(accountID); err != nil {
		return err
	}
	if duration <= 0 {
		duration = uc.cfg.LockoutDuration
	}

	until := time.Now().UTC().Add(duration)
	if err := uc.accountRepo.SetLockout(accountID, &until); err != nil {
		return domain.NewDatabaseError("set lockout", err)
	}

	uc.logger.Info("Account locked",
		zap.String("account_id", accountID),
		zap.String("actor_id", actorID),
		zap.Time("lockout_until", until))
	return nil
}

// Unlock clears a lockout and the failed-access counter
func (uc *AccountUseCase) Unlock(accountID string) error {
	if _, err := uc.GetAccount(accountID); err != nil {
		return err
	}
	if err := uc.accountRepo.ResetAccessState(accountID); err != nil {
		return domain.NewDatabaseError("reset access state", err)
	}
	uc.logger.Info("Account unlocked", zap.String("account_id", accountID))
	return nil
}

// AssignRole grants a role to an account
func (uc *AccountUseCase) AssignRole(accountID, roleName string) error {
	account, err := uc.GetAccount(accountID)
	if err != nil {
		return err
	}

	role, err := uc.roleRepo.GetByName(roleName)
	if err != nil {
		return domain.NewDatabaseError("get role", err)
	}
	if role == nil {
		return domain.NewNotFoundError(domain.ErrCodeRoleNotFound, "Role")
	}
	if account.HasRole(roleName) {
		return domain.NewConflictError(domain.ErrCodeAlreadyHasRole, "Account already holds this role")
	}

	if err := uc.roleRepo.AssignToAccount(accountID, role.ID); err != nil {
		return domain.NewDatabaseError("assign role", err)
	}

	uc.logger.Info("Role assigned",
		zap.String("account_id", accountID),
		zap.String("role", roleName))
	return nil
}

// RemoveRole revokes a role from an account. Removing the Admin role is
// serialized so the last administrator can never be demoted.
func (uc *AccountUseCase) RemoveRole(accountID, roleName string) error {
	role, err := uc.roleRepo.GetByName(roleName)
	if err != nil {
		return domain.NewDatabaseError("get role", err)
	}
	if role == nil {
		return domain.NewNotFoundError(domain.ErrCodeRoleNotFound, "Role")
	}

	if role.IsProtected() {
		key := "role:" + role.Name
		if err := uc.lockManager.Lock(context.Background(), key); err != nil {
			return domain.NewInternalError("Failed to acquire role lock", err)
		}
		defer uc.lockManager.Unlock(key)
	}

	account, err := uc.GetAccount(accountID)
	if err != nil {
		return err
	}
	if !account.HasRole(roleName) {
		return domain.NewConflictError(domain.ErrCodeDoesNotHaveRole, "Account does not hold this role")
	}

	if role.IsProtected() {
		holders, err := uc.roleRepo.CountHolders(role.Name)
		if err != nil {
			return domain.NewDatabaseError("count role holders", err)
		}
		if holders <= 1 {
			uc.logger.Warn("Refusing to demote the last administrator",
				zap.String("account_id", accountID))
			return domain.NewBusinessRuleError(domain.ErrCodeLastAdminProtected, "Cannot remove the last administrator")
		}
	}

	if err := uc.roleRepo.RemoveFromAccount(accountID, role.ID); err != nil {
		return domain.NewDatabaseError("remove role", err)
	}

	uc.logger.Info("Role removed",
		zap.String("account_id", accountID),
		zap.String("role", roleName))
	return nil
}

// RolesOf returns the role names held by an account
func (uc *AccountUseCase) RolesOf(accountID string) ([]string, error) {
	account, err := uc.GetAccount(accountID)
	if err != nil {
		return nil, err
	}
	return account.RoleNames(), nil
}

// ListRoles returns all defined roles
func (uc *AccountUseCase) ListRoles() ([]*domain.Role, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, domain.NewDatabaseError("list roles", err)
	}
	return roles, nil
}

// AccountStats aggregates account counts for the admin dashboard
func (uc *AccountUseCase) AccountStats() (*domain.AccountStats, error) {
	stats, err := uc.accountRepo.Stats()
	if err != nil {
		return nil, domain.NewDatabaseError("account stats", err)
	}
	return stats, nil
}

// RoleStats returns the holder count per role
func (uc *AccountUseCase) RoleStats() (map[string]int64, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, domain.NewDatabaseError("list roles", err)
	}

	stats := make(map[string]int64, len(roles))
	for _, role := range roles {
		count, err := uc.roleRepo.CountHolders(role.Name)
		if err != nil {
			return nil, domain.NewDatabaseError("count role holders", err)
		}
		stats[role.Name] = count
	}
	return stats, nil
}

// issueToken mints a fresh single-use secret, stores only its hash and
// returns the plaintext for delivery. Outstanding tokens for the same
// purpose are invalidated first.
func (uc *AccountUseCase) issueToken(accountID string, purpose domain.TokenPurpose, ttl time.Duration) (string, error) {
	if err := uc.tokenRepo.InvalidateForAccount(accountID, purpose); err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	secret := hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(secret))

	token := &domain.AuthToken{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Purpose:   purpose,
		TokenHash: hex.EncodeToString(sum[:]),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := uc.tokenRepo.Create(token); err != nil {
		return "", err
	}
	return secret, nil
}

// redeemToken validates a presented secret against the stored hash and
// consumes it
func (uc *AccountUseCase) redeemToken(accountID string, purpose domain.TokenPurpose, secret string) (*domain.AuthToken, error) {
	if secret == "" {
		return nil, domain.NewBusinessRuleError(domain.ErrCodeInvalidToken, "Token is invalid or has expired")
	}

	sum := sha256.Sum256([]byte(secret))
	token, err := uc.tokenRepo.GetActive(accountID, purpose, hex.EncodeToString(sum[:]))
	if err != nil {
		return nil, domain.NewDatabaseError("get token", err)
	}
	if token == nil || !token.IsValid(time.Now().UTC()) {
		return nil, domain.NewBusinessRuleError(domain.ErrCodeInvalidToken, "Token is invalid or has expired")
	}

	if err := uc.tokenRepo.MarkUsed(token.ID); err != nil {
		return nil, domain.NewDatabaseError("mark token used", err)
	}
	return token, nil
}

// enqueueTokenEmail issues a token and queues its delivery. Failures are
// logged but never surfaced; the account operation has already
// succeeded.
func (uc *AccountUseCase) enqueueTokenEmail(accountID string, purpose domain.TokenPurpose, ttl time.Duration, eventType string) {
	secret, err := uc.issueToken(accountID, purpose, ttl)
	if err != nil {
		uc.logger.Error("Failed to issue token",
			zap.String("account_id", accountID),
			zap.String("purpose", string(purpose)),
			zap.Error(err))
		return
	}

	uc.enqueueEvent(eventType, domain.JSONB{
		"account_id": accountID,
		"token":      secret,
	})
}

func (uc *AccountUseCase) enqueueEvent(eventType string, data domain.JSONB) {
	event := &domain.OutboxEvent{
		ID:     uuid.NewString(),
		Type:   eventType,
		Data:   data,
		Status: domain.EventStatusPending,
	}
	if err := uc.outboxRepo.Save(event); err != nil {
		uc.logger.Error("Failed to enqueue notification event",
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}
