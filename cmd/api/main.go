// Package main SafeCasino API
//
// SafeCasino is a casino platform backend covering the player account
// lifecycle (registration, email verification, sign-in with lockout,
// password reset), a moderated game review system, a game catalog with
// categories and providers, and player balances.
//
//	Schemes: http, https
//	Host: localhost:8080
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer
package main

import (
	"context"

	_ "github.com/saradorri/safecasino/docs"
	"github.com/saradorri/safecasino/internal/app"
)

// @title SafeCasino API Service
// @version 1.0
// @description SafeCasino is a casino platform backend covering accounts, moderated reviews, the game catalog and player balances.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()
	application := app.NewApplication(ctx)
	application.Setup()
}
