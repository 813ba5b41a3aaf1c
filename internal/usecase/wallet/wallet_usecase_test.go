package wallet

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/domain/mocks"
	"github.com/saradorri/safecasino/internal/infrastructure/lock"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

func newWalletFixture(ctrl *gomock.Controller) (*mocks.MockAccountRepository, *WalletUseCase) {
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	useCase := &WalletUseCase{
		accountRepo: accountRepo,
		lockManager: lock.NewKeyedLockManager(),
		logger:      logger.NewLogger("test", "debug"),
	}
	return accountRepo, useCase
}

func TestWalletUseCase_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the stored balance", func(t *testing.T) {
		accountRepo, useCase := newWalletFixture(ctrl)
		accountRepo.EXPECT().GetByID("acc-1").Return(&domain.Account{
			ID:      "acc-1",
			Balance: decimal.RequireFromString("42.50"),
		}, nil)

		balance, err := useCase.Balance("acc-1")

		assert.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("42.50")))
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		accountRepo, useCase := newWalletFixture(ctrl)
		accountRepo.EXPECT().GetByID("missing").Return(nil, nil)

		_, err := useCase.Balance("missing")

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeAccountNotFound, appErr.Code)
	})
}

func TestWalletUseCase_Credit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("credit adds to the balance", func(t *testing.T) {
		accountRepo, useCase := newWalletFixture(ctrl)
		accountRepo.EXPECT().GetByIDForUpdate("acc-1").Return(&domain.Account{
			ID:      "acc-1",
			Balance: decimal.RequireFromString("10.00"),
		}, nil)
		accountRepo.EXPECT().UpdateBalance("acc-1", gomock.Any()).DoAndReturn(func(_ string, balance decimal.Decimal) error {
			assert.True(t, balance.Equal(decimal.RequireFromString("35.25")))
			return nil
		})

		newBalance, err := useCase.Credit("acc-1", decimal.RequireFromString("25.25"))

		assert.NoError(t, err)
		assert.True(t, newBalance.Equal(decimal.RequireFromString("35.25")))
	})

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"zero amount is rejected", decimal.Zero},
		{"negative amount is rejected", decimal.RequireFromString("-5.00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, useCase := newWalletFixture(ctrl)

			_, err := useCase.Credit("acc-1", tt.amount)

			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidAmount, appErr.Code)
		})
	}
}

func TestWalletUseCase_Debit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("debit subtracts from the balance", func(t *testing.T) {
		accountRepo, useCase := newWalletFixture(ctrl)
		accountRepo.EXPECT().GetByIDForUpdate("acc-1").Return(&domain.Account{
			ID:      "acc-1",
			Balance: decimal.RequireFromString("50.00"),
		}, nil)
		accountRepo.EXPECT().UpdateBalance("acc-1", gomock.Any()).DoAndReturn(func(_ string, balance decimal.Decimal) error {
			assert.True(t, balance.Equal(decimal.RequireFromString("30.00")))
			return nil
		})

		newBalance, err := useCase.Debit("acc-1", decimal.RequireFromString("20.00"))

		assert.NoError(t, err)
		assert.True(t, newBalance.Equal(decimal.RequireFromString("30.00")))
	})

	t.Run("debit to exactly zero is allowed", func(t *testing.T) {
		accountRepo, useCase := newWalletFixture(ctrl)
		accountRepo.EXPECT().GetByIDForUpdate("acc-1").Return(&domain.Account{
			ID:      "acc-1",
			Balance: decimal.RequireFromString("20.00"),
		}, nil)
		accountRepo.EXPECT().UpdateBalance("acc-1", gomock.Any()).Return(nil)

		newBalance, err := useCase.Debit("acc-1", decimal.RequireFromString("20.00"))

		assert.NoError(t, err)
		assert.True(t, newBalance.IsZero())
	})

	t.Run("overdraft is refused", func(t *testing.T) {
		accountRepo, useCase := newWalletFixture(ctrl)
		accountRepo.EXPECT().GetByIDForUpdate("acc-1").Return(&domain.Account{
			ID:      "acc-1",
			Balance: decimal.RequireFromString("10.00"),
		}, nil)

		_, err := useCase.Debit("acc-1", decimal.RequireFromString("10.01"))

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInsufficientFunds, appErr.Code)
	})

	t.Run("negative amount is rejected before any lookup", func(t *testing.T) {
		_, useCase := newWalletFixture(ctrl)

		_, err := useCase.Debit("acc-1", decimal.RequireFromString("-1.00"))

		appErr, ok := domain.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidAmount, appErr.Code)
	})
}
