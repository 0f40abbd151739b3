// @title           Job Portal Job Service API
// @version         1.0
// @description     Вакансии: публикация, поиск и сортировка.
// @host            localhost:8082
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
	app.RunJobService()
}
