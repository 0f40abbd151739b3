// @title           Job Portal User Service API
// @version         1.0
// @description     Регистрация, вход и профили пользователей (JOB_SEEKER, JOB_HIRER).
// @host            localhost:8081
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
	app.RunUserService()
}
