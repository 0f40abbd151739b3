package dto

// JobRequest - тело POST и PUT /api/jobs
type JobRequest struct {
	CompanyName    string   `json:"companyName" validate:"required,max=255"`
	JobTitle       string   `json:"jobTitle" validate:"required,max=255"`
	ExpectedSalary *float64 `json:"expectedSalary" validate:"required,gt=0"`
	Preference     string   `json:"preference" validate:"required,is-work-preference"`
	RequiredSkills []string `json:"requiredSkills" validate:"required,notblank-items"`
	Experience     string   `json:"experience" validate:"required"`
	WorkingHours   string   `json:"workingHours" validate:"required"`
	Prerequisites  string   `json:"prerequisites"`
	HirerID        string   `json:"hirerId" validate:"required"`
}

// AdvancedJobSearch - критерии /api/jobs/search/advanced; пустые критерии не фильтруют
type AdvancedJobSearch struct {
	CompanyName string   `form:"companyName"`
	JobTitle    string   `form:"jobTitle"`
	Skills      []string `form:"skills"`
	MinSalary   *float64 `form:"minSalary" validate:"omitempty,gte=0"`
	MaxSalary   *float64 `form:"maxSalary" validate:"omitempty,gte=0"`
	SortBy      string   `form:"sortBy"`
	SortOrder   string   `form:"sortOrder"`
}

// JobSearchSort - параметры /api/jobs/search-sort
type JobSearchSort struct {
	Keyword   string `form:"keyword"`
	Company   string `form:"company"`
	Title     string `form:"title"`
	Skill     string `form:"skill"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}
