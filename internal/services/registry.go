package services

// ServiceContainer содержит сервисы процесса. Каждый бинарник заполняет только свои поля.
type ServiceContainer struct {
	UserService         UserService
	AuthService         AuthService
	JobService          JobService
	ApplicationService  ApplicationService
	NotificationService NotificationService
	UploadService       UploadService
}
