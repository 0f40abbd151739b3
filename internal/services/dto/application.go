package dto

// CreateApplicationRequest - тело POST /api/applications.
// Порядок проверок полей определяет сервис, теги здесь не ставим.
type CreateApplicationRequest struct {
	JobID       string   `json:"jobId"`
	JobSeekerID string   `json:"jobSeekerId"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Degree      string   `json:"degree"`
	CVURL       string   `json:"cvUrl"`
}

// ApplicationSort - общие параметры сортировки списков откликов
type ApplicationSort struct {
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
}

// ApplicationFilter - фильтры GET /api/applications
type ApplicationFilter struct {
	Skill      string `form:"skill"`
	Experience string `form:"experience"`
	Degree     string `form:"degree"`
	Status     string `form:"status" validate:"omitempty,is-application-status"`
	ApplicationSort
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type CanApplyResponse struct {
	CanApply bool `json:"canApply"`
}
