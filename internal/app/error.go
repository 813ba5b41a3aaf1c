package app

import (
	"github.com/saradorri/safecasino/internal/http/middleware"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
