// filepath: cmd/lumina/main.go
package main

import (
	"lumina/internal/cli"
)

// @title Lumina Studio API
// @version 1.0.0
// @description REST API for a photography studio: clients, shoot sessions, photo galleries and the public portfolio.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
