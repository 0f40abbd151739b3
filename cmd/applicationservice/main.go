// @title           Job Portal Application Service API
// @version         1.0
// @description     Отклики на вакансии, статусы и загрузка резюме.
// @host            localhost:8083
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	_ "jobportal/docs"
	"jobportal/internal/app"
)

func main() {
	app.RunApplicationService()
}
