package main

import (
	_ "eligibility_hub/docs"
	"eligibility_hub/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Eligibility Verification API
// @version         1.0
// @description     Eligibility verification console backend: 270/271 submission tracking, benefit normalization and verification history.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
