package handlers

// AppHandlers содержит хэндлеры всех трех сервисов.
// Каждый процесс регистрирует только свои, остальные поля остаются nil.
type AppHandlers struct {
	HealthHandler      *HealthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
}
