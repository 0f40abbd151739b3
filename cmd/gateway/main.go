package main

import "jobportal/internal/app"

// Перенаправляет /api/applications/** на сервис откликов (307).
func main() {
	app.RunGateway()
}
