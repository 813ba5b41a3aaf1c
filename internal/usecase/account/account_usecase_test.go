package account

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/safecasino/internal/config"
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/domain/mocks"
	"github.com/saradorri/safecasino/internal/infrastructure/auth"
	"github.com/saradorri/safecasino/internal/infrastructure/lock"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
	"github.com/saradorri/safecasino/internal/infrastructure/password"
)

func testAccountConfig() config.AccountConfig {
	return config.AccountConfig{
		Password: config.PasswordPolicy{
			MinLength:      10,
			RequireUpper:   true,
			RequireLower:   true,
			RequireDigit:   true,
			RequireSpecial: true,
		},
		LockoutThreshold: 5,
		LockoutDuration:  5 * time.Minute,
		VerifyTokenTTL:   24 * time.Hour,
		ResetTokenTTL:    time.Hour,
		WelcomeBonus:     "10.00",
		MinimumAge:       18,
	}
}

type accountUseCaseFixture struct {
	accountRepo *mocks.MockAccountRepository
	roleRepo    *mocks.MockRoleRepository
	tokenRepo   *mocks.MockAuthTokenRepository
	outboxRepo  *mocks.MockOutboxRepository
	useCase     *AccountUseCase
}

func newAccountUseCaseFixture(ctrl *gomock.Controller) *accountUseCaseFixture {
	f := &accountUseCaseFixture{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		roleRepo:    mocks.NewMockRoleRepository(ctrl),
		tokenRepo:   mocks.NewMockAuthTokenRepository(ctrl),
		outboxRepo:  mocks.NewMockOutboxRepository(ctrl),
	}
	f.useCase = &AccountUseCase{
		accountRepo: f.accountRepo,
		roleRepo:    f.roleRepo,
		tokenRepo:   f.tokenRepo,
		outboxRepo:  f.outboxRepo,
		jwtSvc:      auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour}),
		lockManager: lock.NewKeyedLockManager(),
		cfg:         testAccountConfig(),
		logger:      logger.NewLogger("test", "debug"),
	}
	return f
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := password.Hash(plain, password.DefaultParams())
	assert.NoError(t, err)
	return hash
}

func adultDOB() time.Time {
	return time.Now().UTC().AddDate(-30, 0, 0)
}

func TestAccountUseCase_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validInput := domain.RegisterInput{
		Email:       "Player@Example.com",
		Password:    "Sup3r-Secret!",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: adultDOB(),
	}

	t.Run("successful registration assigns player role and queues verification", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		playerRole := &domain.Role{ID: "role-player", Name: domain.RolePlayer, IsActive: true}

		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(nil, nil)
		f.accountRepo.EXPECT().Create(gomock.Any()).Return(nil)
		f.roleRepo.EXPECT().GetByName(domain.RolePlayer).Return(playerRole, nil)
		f.roleRepo.EXPECT().AssignToAccount(gomock.Any(), "role-player").Return(nil)
		f.tokenRepo.EXPECT().InvalidateForAccount(gomock.Any(), domain.TokenPurposeEmailVerify).Return(nil)
		f.tokenRepo.EXPECT().Create(gomock.Any()).Return(nil)
		f.outboxRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(event *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventTypeVerificationEmail, event.Type)
			assert.Equal(t, domain.EventStatusPending, event.Status)
			assert.NotEmpty(t, event.Data["token"])
			return nil
		})

		account, err := f.useCase.Register(validInput)

		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, "player@example.com", account.Email)
		assert.False(t, account.EmailConfirmed)
		assert.False(t, account.AgeVerified)
		assert.True(t, account.IsActive)
		assert.True(t, account.HasRole(domain.RolePlayer))
	})

	t.Run("duplicate email is rejected with a conflict", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(&domain.Account{ID: "existing"}, nil)

		account, err := f.useCase.Register(validInput)

		assert.Nil(t, account)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeDuplicateEmail, appErr.Code)
		assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	})

	t.Run("unique index violation on create maps to a conflict", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(nil, nil)
		f.accountRepo.EXPECT().Create(gomock.Any()).Return(assertableError("ERROR: duplicate key value violates unique constraint"))

		account, err := f.useCase.Register(validInput)

		assert.Nil(t, account)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeDuplicateEmail, appErr.Code)
	})

	t.Run("weak password lists the violated rules", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		input := validInput
		input.Password = "short"

		account, err := f.useCase.Register(input)

		assert.Nil(t, account)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeWeakPassword, appErr.Code)
		assert.NotEmpty(t, appErr.Fields["password"])
	})

	t.Run("underage applicant is rejected", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		input := validInput
		input.DateOfBirth = time.Now().UTC().AddDate(-17, 0, 0)

		account, err := f.useCase.Register(input)

		assert.Nil(t, account)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeUnderage, appErr.Code)
	})

	t.Run("malformed email is rejected before any lookup", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		input := validInput
		input.Email = "not-an-email"

		account, err := f.useCase.Register(input)

		assert.Nil(t, account)
		assert.Error(t, err)
	})
}

func TestAccountUseCase_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("verification confirms the address and credits the welcome bonus once", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := &domain.Account{
			ID:             "acc-1",
			Email:          "player@example.com",
			EmailConfirmed: false,
			Balance:        decimal.Zero,
		}
		validToken := &domain.AuthToken{
			ID:        "tok-1",
			AccountID: "acc-1",
			Purpose:   domain.TokenPurposeEmailVerify,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}

		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.tokenRepo.EXPECT().GetActive("acc-1", domain.TokenPurposeEmailVerify, gomock.Any()).Return(validToken, nil)
		f.tokenRepo.EXPECT().MarkUsed("tok-1").Return(nil)
		f.accountRepo.EXPECT().Update(gomock.Any()).Return(nil)
		f.accountRepo.EXPECT().GetByIDForUpdate("acc-1").Return(account, nil)
		f.accountRepo.EXPECT().UpdateBalance("acc-1", gomock.Any()).DoAndReturn(func(_ string, balance decimal.Decimal) error {
			assert.True(t, balance.Equal(decimal.RequireFromString("10.00")))
			return nil
		})
		f.outboxRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(event *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventTypeWelcomeEmail, event.Type)
			return nil
		})

		verified, err := f.useCase.VerifyEmail("acc-1", "some-secret")

		assert.NoError(t, err)
		assert.True(t, verified.EmailConfirmed)
		assert.True(t, verified.AgeVerified)
		assert.True(t, verified.Balance.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("already confirmed address is a conflict", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(&domain.Account{ID: "acc-1", EmailConfirmed: true}, nil)

		verified, err := f.useCase.VerifyEmail("acc-1", "some-secret")

		assert.Nil(t, verified)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyConfirmed, appErr.Code)
	})

	t.Run("unknown or expired token is rejected", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
		f.tokenRepo.EXPECT().GetActive("acc-1", domain.TokenPurposeEmailVerify, gomock.Any()).Return(nil, nil)

		verified, err := f.useCase.VerifyEmail("acc-1", "bogus")

		assert.Nil(t, verified)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidToken, appErr.Code)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByID("missing").Return(nil, nil)

		verified, err := f.useCase.VerifyEmail("missing", "some-secret")

		assert.Nil(t, verified)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAccountNotFound, appErr.Code)
	})
}

func TestAccountUseCase_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const goodPassword = "Sup3r-Secret!"

	newConfirmedAccount := func(t *testing.T) *domain.Account {
		return &domain.Account{
			ID:             "acc-1",
			Email:          "player@example.com",
			PasswordHash:   mustHash(t, goodPassword),
			EmailConfirmed: true,
			IsActive:       true,
			Roles:          []domain.Role{{ID: "role-player", Name: domain.RolePlayer}},
		}
	}

	t.Run("valid credentials yield a signed token", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)

		token, got, err := f.useCase.Authenticate("Player@Example.com", goodPassword)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "acc-1", got.ID)
	})

	t.Run("wrong password increments the failed counter", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		account.FailedAccessCount = 2
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.accountRepo.EXPECT().RecordFailedAccess("acc-1", 3, gomock.Nil()).Return(nil)

		token, got, err := f.useCase.Authenticate("player@example.com", "wrong-password")

		assert.Empty(t, token)
		assert.Nil(t, got)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	})

	t.Run("fifth failure trips the lockout", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		account.FailedAccessCount = 4
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.accountRepo.EXPECT().RecordFailedAccess("acc-1", 0, gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ string, _ int, until *time.Time) error {
				assert.True(t, until.After(time.Now().UTC()))
				return nil
			})

		_, _, err := f.useCase.Authenticate("player@example.com", "wrong-password")

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeLockedOut, appErr.Code)
		assert.Equal(t, http.StatusLocked, appErr.HTTPStatus)
	})

	t.Run("locked out account is refused even with the right password", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		until := time.Now().UTC().Add(5 * time.Minute)
		account.LockoutUntil = &until
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)

		token, _, err := f.useCase.Authenticate("player@example.com", goodPassword)

		assert.Empty(t, token)
		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeLockedOut, appErr.Code)
		assert.Equal(t, http.StatusLocked, appErr.HTTPStatus)
	})

	t.Run("expired lockout admits the right password and clears state", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		past := time.Now().UTC().Add(-time.Minute)
		account.LockoutUntil = &past
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.accountRepo.EXPECT().ResetAccessState("acc-1").Return(nil)

		token, _, err := f.useCase.Authenticate("player@example.com", goodPassword)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unconfirmed email is rejected before the password is checked", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		account.EmailConfirmed = false
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)

		_, _, err := f.useCase.Authenticate("player@example.com", goodPassword)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeEmailNotConfirmed, appErr.Code)
		assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)
	})

	t.Run("wrong password on an unconfirmed account leaves the counter alone", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := newConfirmedAccount(t)
		account.EmailConfirmed = false
		account.FailedAccessCount = 2
		f.accountRepo.EXPECT().GetByEmail("player@example.com").Return(account, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)

		_, _, err := f.useCase.Authenticate("player@example.com", "wrong-password")

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeEmailNotConfirmed, appErr.Code)
	})

	t.Run("unknown email reports invalid credentials", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, nil)

		_, _, err := f.useCase.Authenticate("nobody@example.com", goodPassword)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidCredentials, appErr.Code)
	})
}

func TestAccountUseCase_PasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("reset request for an unknown email succeeds silently", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, nil)

		err := f.useCase.RequestPasswordReset("nobody@example.com")

		assert.NoError(t, err)
	})

	t.Run("reset request for an unconfirmed account succeeds without a token", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByEmail("player@example.com").
			Return(&domain.Account{ID: "acc-1", EmailConfirmed: false}, nil)

		err := f.useCase.RequestPasswordReset("player@example.com")

		assert.NoError(t, err)
	})

	t.Run("reset request queues a token email", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByEmail("player@example.com").
			Return(&domain.Account{ID: "acc-1", EmailConfirmed: true}, nil)
		f.tokenRepo.EXPECT().InvalidateForAccount("acc-1", domain.TokenPurposePasswordReset).Return(nil)
		f.tokenRepo.EXPECT().Create(gomock.Any()).Return(nil)
		f.outboxRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(event *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventTypePasswordResetEmail, event.Type)
			return nil
		})

		err := f.useCase.RequestPasswordReset("player@example.com")

		assert.NoError(t, err)
	})

	t.Run("reset replaces the password and clears lockout state", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := &domain.Account{ID: "acc-1", Email: "player@example.com"}
		validToken := &domain.AuthToken{
			ID:        "tok-1",
			AccountID: "acc-1",
			Purpose:   domain.TokenPurposePasswordReset,
			ExpiresAt: time.Now().UTC().Add(time.Hour),
		}

		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.tokenRepo.EXPECT().GetActive("acc-1", domain.TokenPurposePasswordReset, gomock.Any()).Return(validToken, nil)
		f.tokenRepo.EXPECT().MarkUsed("tok-1").Return(nil)
		f.accountRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *domain.Account) error {
			assert.NotEmpty(t, updated.PasswordHash)
			return nil
		})
		f.tokenRepo.EXPECT().InvalidateForAccount("acc-1", domain.TokenPurposePasswordReset).Return(nil)
		f.accountRepo.EXPECT().ResetAccessState("acc-1").Return(nil)

		err := f.useCase.ResetPassword("acc-1", "some-secret", "Fresh-Passw0rd!")

		assert.NoError(t, err)
	})

	t.Run("weak replacement password is rejected before the token is spent", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(&domain.Account{ID: "acc-1"}, nil)

		err := f.useCase.ResetPassword("acc-1", "some-secret", "weak")

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeWeakPassword, appErr.Code)
	})
}

func TestAccountUseCase_Lock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("admins cannot lock their own account", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)

		err := f.useCase.Lock("acc-1", "acc-1", 10*time.Minute)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeCannotLockSelf, appErr.Code)
	})

	t.Run("zero duration falls back to the configured lockout window", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByID("acc-2").Return(&domain.Account{ID: "acc-2"}, nil)
		f.accountRepo.EXPECT().SetLockout("acc-2", gomock.Any()).DoAndReturn(func(_ string, until *time.Time) error {
			assert.True(t, until.After(time.Now().UTC().Add(4*time.Minute)))
			return nil
		})

		err := f.useCase.Lock("acc-1", "acc-2", 0)

		assert.NoError(t, err)
	})

	t.Run("unlock clears the failed access state", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		f.accountRepo.EXPECT().GetByID("acc-2").Return(&domain.Account{ID: "acc-2"}, nil)
		f.accountRepo.EXPECT().ResetAccessState("acc-2").Return(nil)

		err := f.useCase.Unlock("acc-2")

		assert.NoError(t, err)
	})
}

func TestAccountUseCase_Roles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminRole := &domain.Role{ID: "role-admin", Name: domain.RoleAdmin, IsActive: true}

	t.Run("assigning a role the account already holds is a conflict", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := &domain.Account{ID: "acc-1", Roles: []domain.Role{*adminRole}}
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.roleRepo.EXPECT().GetByName(domain.RoleAdmin).Return(adminRole, nil)

		err := f.useCase.AssignRole("acc-1", domain.RoleAdmin)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAlreadyHasRole, appErr.Code)
	})

	t.Run("the last administrator cannot be demoted", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := &domain.Account{ID: "acc-1", Roles: []domain.Role{*adminRole}}
		f.roleRepo.EXPECT().GetByName(domain.RoleAdmin).Return(adminRole, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.roleRepo.EXPECT().CountHolders(domain.RoleAdmin).Return(int64(1), nil)

		err := f.useCase.RemoveRole("acc-1", domain.RoleAdmin)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeLastAdminProtected, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("an admin can be demoted while another remains", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		account := &domain.Account{ID: "acc-1", Roles: []domain.Role{*adminRole}}
		f.roleRepo.EXPECT().GetByName(domain.RoleAdmin).Return(adminRole, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)
		f.roleRepo.EXPECT().CountHolders(domain.RoleAdmin).Return(int64(2), nil)
		f.roleRepo.EXPECT().RemoveFromAccount("acc-1", "role-admin").Return(nil)

		err := f.useCase.RemoveRole("acc-1", domain.RoleAdmin)

		assert.NoError(t, err)
	})

	t.Run("removing a role the account does not hold is a conflict", func(t *testing.T) {
		f := newAccountUseCaseFixture(ctrl)
		modRole := &domain.Role{ID: "role-mod", Name: domain.RoleModerator, IsActive: true}
		account := &domain.Account{ID: "acc-1", Roles: []domain.Role{*adminRole}}
		f.roleRepo.EXPECT().GetByName(domain.RoleModerator).Return(modRole, nil)
		f.accountRepo.EXPECT().GetByID("acc-1").Return(account, nil)

		err := f.useCase.RemoveRole("acc-1", domain.RoleModerator)

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeDoesNotHaveRole, appErr.Code)
	})
}

// assertableError keeps the driver error text assertions readable
type assertableError string

func (e assertableError) Error() string { return string(e) }
