package main

import (
	"xivfinder.app/backend/cmd/app"
)

// @title          XIV Finder API
// @version        1.0.0
// @description    Aggregation service for in-game Party Finder recruitment listings.
// @license.name   MIT License
// @license.url    https://opensource.org/licenses/MIT
// @BasePath       /api
func main() {
	app.Run()
}
