package wallet

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/infrastructure/lock"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

// WalletUseCase implements domain.WalletUseCase
type WalletUseCase struct {
	accountRepo domain.AccountRepository
	lockManager *lock.KeyedLockManager
	logger      *logger.Logger
}

// NewWalletUseCase creates a new wallet use case
func NewWalletUseCase(
	accountRepo domain.AccountRepository,
	lockManager *lock.KeyedLockManager,
	logger *logger.Logger,
) domain.WalletUseCase {
	return &WalletUseCase{
		accountRepo: accountRepo,
		lockManager: lockManager,
		logger:      logger,
	}
}

// Balance returns the current balance for an account
func (uc *WalletUseCase) Balance(accountID string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return decimal.Zero, domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return decimal.Zero, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}
	return account.Balance, nil
}

// Credit adds funds to an account and returns the new balance
func (uc *WalletUseCase) Credit(accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.NewBusinessRuleError(domain.ErrCodeInvalidAmount, "Amount must be greater than zero")
	}
	return uc.adjust(accountID, amount, false)
}

// Debit removes funds from an account and returns the new balance. The
// balance can never go negative.
func (uc *WalletUseCase) Debit(accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.NewBusinessRuleError(domain.ErrCodeInvalidAmount, "Amount must be greater than zero")
	}
	return uc.adjust(accountID, amount.Neg(), true)
}

// adjust applies a signed delta under the per-account lock. Read and
// write happen inside one row lock so concurrent adjustments serialize.
func (uc *WalletUseCase) adjust(accountID string, delta decimal.Decimal, isDebit bool) (decimal.Decimal, error) {
	key := "account:" + accountID
	if err := uc.lockManager.Lock(context.Background(), key); err != nil {
		return decimal.Zero, domain.NewInternalError("Failed to acquire account lock", err)
	}
	defer uc.lockManager.Unlock(key)

	account, err := uc.accountRepo.GetByIDForUpdate(accountID)
	if err != nil {
		return decimal.Zero, domain.NewDatabaseError("get account", err)
	}
	if account == nil {
		return decimal.Zero, domain.NewNotFoundError(domain.ErrCodeAccountNotFound, "Account")
	}

	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		uc.logger.Warn("Debit rejected - insufficient funds",
			zap.String("account_id", accountID),
			zap.String("balance", account.Balance.String()),
			zap.String("amount", delta.Abs().String()))
		return decimal.Zero, domain.NewBusinessRuleError(domain.ErrCodeInsufficientFunds, "Insufficient funds")
	}

	if err := uc.accountRepo.UpdateBalance(accountID, newBalance); err != nil {
		return decimal.Zero, domain.NewDatabaseError("update balance", err)
	}

	op := "credit"
	if isDebit {
		op = "debit"
	}
	uc.logger.Info("Balance adjusted",
		zap.String("account_id", accountID),
		zap.String("operation", op),
		zap.String("amount", delta.Abs().String()),
		zap.String("new_balance", newBalance.String()))

	return newBalance, nil
}
