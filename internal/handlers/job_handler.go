package handlers

import (
	"net/http"

	"jobportal/internal/services"
	"jobportal/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", requireAuth, h.CreateJob)
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.PUT("/:id", requireAuth, h.UpdateJob)
		jobs.DELETE("/:id", requireAuth, h.DeleteJob)
		jobs.GET("/hirer/:hirerId", h.ListByHirer)

		jobs.GET("/search", h.SearchByKeyword)
		jobs.GET("/search/company", h.SearchByCompany)
		jobs.GET("/search/title", h.SearchByTitle)
		jobs.GET("/search/skills", h.SearchBySkill)
		jobs.GET("/search/advanced", h.AdvancedSearch)
		jobs.GET("/search-sort", h.SearchAndSort)

		jobs.GET("/sorted/date", h.SortedByDate)
		jobs.GET("/sorted/salary", h.SortedBySalary)
		jobs.GET("/sorted/company", h.SortedByCompany)
	}
}

// CreateJob godoc
// @Summary Публикация вакансии
// @Description Доступно только пользователю с ролью JOB_HIRER
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JobRequest true "Вакансия"
// @Success 201 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Обновление вакансии
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Param request body dto.JobRequest true "Вакансия"
// @Success 200 {object} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.JobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Удаление вакансии
// @Tags Jobs
// @Security BearerAuth
// @Param id path string true "ID вакансии"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetJob godoc
// @Summary Вакансия по ID
// @Tags Jobs
// @Produce json
// @Param id path string true "ID вакансии"
// @Success 200 {object} models.Job
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs godoc
// @Summary Все вакансии, новые первыми
// @Tags Jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.ListJobs(c.Request.Context(), h.GetDB(c))
	})
}

// ListByHirer godoc
// @Summary Вакансии работодателя
// @Tags Jobs
// @Produce json
// @Param hirerId path string true "ID работодателя"
// @Success 200 {array} models.Job
// @Router /jobs/hirer/{hirerId} [get]
func (h *JobHandler) ListByHirer(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.ListByHirer(c.Request.Context(), h.GetDB(c), c.Param("hirerId"))
	})
}

// SearchByKeyword godoc
// @Summary Поиск по компании или должности
// @Tags Jobs
// @Produce json
// @Param keyword query string true "Ключевое слово"
// @Success 200 {array} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /jobs/search [get]
func (h *JobHandler) SearchByKeyword(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SearchByKeyword(c.Request.Context(), h.GetDB(c), c.Query("keyword"))
	})
}

// SearchByCompany godoc
// @Summary Поиск по компании
// @Tags Jobs
// @Produce json
// @Param companyName query string true "Компания"
// @Success 200 {array} models.Job
// @Router /jobs/search/company [get]
func (h *JobHandler) SearchByCompany(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SearchByCompany(c.Request.Context(), h.GetDB(c), c.Query("companyName"))
	})
}

// SearchByTitle godoc
// @Summary Поиск по должности
// @Tags Jobs
// @Produce json
// @Param jobTitle query string true "Должность"
// @Success 200 {array} models.Job
// @Router /jobs/search/title [get]
func (h *JobHandler) SearchByTitle(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SearchByTitle(c.Request.Context(), h.GetDB(c), c.Query("jobTitle"))
	})
}

// SearchBySkill godoc
// @Summary Поиск по навыку
// @Tags Jobs
// @Produce json
// @Param skill query string true "Навык"
// @Success 200 {array} models.Job
// @Router /jobs/search/skills [get]
func (h *JobHandler) SearchBySkill(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SearchBySkill(c.Request.Context(), h.GetDB(c), c.Query("skill"))
	})
}

// AdvancedSearch godoc
// @Summary Расширенный поиск
// @Description Пустые критерии не фильтруют. skills можно повторять или перечислить через запятую.
// @Tags Jobs
// @Produce json
// @Param companyName query string false "Компания"
// @Param jobTitle query string false "Должность"
// @Param skills query []string false "Навыки" collectionFormat(multi)
// @Param minSalary query number false "Минимальная зарплата"
// @Param maxSalary query number false "Максимальная зарплата"
// @Param sortBy query string false "salary, date, company, title"
// @Param sortOrder query string false "asc или desc"
// @Success 200 {array} models.Job
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /jobs/search/advanced [get]
func (h *JobHandler) AdvancedSearch(c *gin.Context) {
	var criteria dto.AdvancedJobSearch
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}
	criteria.Skills = splitList(criteria.Skills)

	h.respondList(c, func() (interface{}, error) {
		return h.jobService.AdvancedSearch(c.Request.Context(), h.GetDB(c), &criteria)
	})
}

// SearchAndSort godoc
// @Summary Поиск с сортировкой
// @Tags Jobs
// @Produce json
// @Param keyword query string false "Ключевое слово"
// @Param company query string false "Компания"
// @Param title query string false "Должность"
// @Param skill query string false "Навык"
// @Param sortBy query string false "salary, date, company, title"
// @Param sortOrder query string false "asc или desc"
// @Success 200 {array} models.Job
// @Router /jobs/search-sort [get]
func (h *JobHandler) SearchAndSort(c *gin.Context) {
	var query dto.JobSearchSort
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SearchAndSort(c.Request.Context(), h.GetDB(c), &query)
	})
}

// SortedByDate godoc
// @Summary Вакансии по дате публикации
// @Tags Jobs
// @Produce json
// @Param order query string false "asc или desc (по умолчанию)"
// @Success 200 {array} models.Job
// @Router /jobs/sorted/date [get]
func (h *JobHandler) SortedByDate(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SortedByDate(c.Request.Context(), h.GetDB(c), c.Query("order"))
	})
}

// SortedBySalary godoc
// @Summary Вакансии по зарплате
// @Tags Jobs
// @Produce json
// @Param order query string false "asc или desc (по умолчанию)"
// @Success 200 {array} models.Job
// @Router /jobs/sorted/salary [get]
func (h *JobHandler) SortedBySalary(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SortedBySalary(c.Request.Context(), h.GetDB(c), c.Query("order"))
	})
}

// SortedByCompany godoc
// @Summary Вакансии по компании (A-Z)
// @Tags Jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs/sorted/company [get]
func (h *JobHandler) SortedByCompany(c *gin.Context) {
	h.respondList(c, func() (interface{}, error) {
		return h.jobService.SortedByCompany(c.Request.Context(), h.GetDB(c))
	})
}

func (h *JobHandler) respondList(c *gin.Context, fetch func() (interface{}, error)) {
	result, err := fetch()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
