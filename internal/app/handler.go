package app

import (
	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/http/handlers"
)

func (a *application) InitAuthHandler(uc domain.AccountUseCase) *handlers.AuthHandler {
	return handlers.NewAuthHandler(uc)
}

func (a *application) InitUserHandler(
	accountUC domain.AccountUseCase,
	walletUC domain.WalletUseCase,
	reviewUC domain.ReviewUseCase,
) *handlers.UserHandler {
	return handlers.NewUserHandler(accountUC, walletUC, reviewUC)
}

func (a *application) InitGameHandler(uc domain.CatalogUseCase) *handlers.GameHandler {
	return handlers.NewGameHandler(uc)
}

func (a *application) InitReviewHandler(uc domain.ReviewUseCase) *handlers.ReviewHandler {
	return handlers.NewReviewHandler(uc)
}

func (a *application) InitAdminHandler(uc domain.AccountUseCase) *handlers.AdminHandler {
	return handlers.NewAdminHandler(uc)
}
