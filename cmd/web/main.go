// @title           gemmarket API
// @version         1.0
// @description     Gemstone marketplace backend API.
// @contact.name    gemmarket team
// @contact.email   support@gemmarket.io
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "gemmarket_backend/internal/app"

func main() {
	app.Run()
}
