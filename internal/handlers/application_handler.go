package handlers

import (
	"net/http"

	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/services/dto"
	"jobportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService    services.ApplicationService
	uploadService services.UploadService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService, uploadService services.UploadService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:   base,
		appService:    appService,
		uploadService: uploadService,
	}
}

// RegisterRoutes - /api/applications. createLimit вешается только на подачу отклика.
func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, createLimit gin.HandlerFunc) {
	apps := rg.Group("/applications")
	{
		apps.POST("", createLimit, requireAuth, h.CreateApplication)
		apps.POST("/cv", requireAuth, h.UploadCV)
		apps.GET("", h.Search)
		apps.GET("/can-apply", h.CanApply)
		apps.GET("/:id", h.GetApplication)
		apps.PATCH("/:id/status/:status", requireAuth, h.UpdateStatus)
		apps.DELETE("/:id", requireAuth, h.DeleteApplication)

		apps.GET("/job/:jobId", h.ByJob)
		apps.GET("/job/:jobId/status/:status", h.ByJobAndStatus)
		apps.GET("/job/:jobId/count", h.CountForJob)
		apps.GET("/job/:jobId/pending/count", h.PendingCountForJob)
		apps.GET("/jobseeker/:jobSeekerId", h.ByJobSeeker)
		apps.GET("/jobseeker/:jobSeekerId/status/:status", h.ByJobSeekerAndStatus)
		apps.GET("/status/:status", h.ByStatus)

		apps.GET("/search/skill", h.BySkill)
		apps.GET("/search/experience", h.ByExperience)
		apps.GET("/search/degree", h.ByDegree)
	}
}

// CreateApplication godoc
// @Summary Отклик на вакансию
// @Description Проверяет соискателя и вакансию в соседних сервисах. Один PENDING отклик на пару (вакансия, соискатель).
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Отклик"
// @Success 201 {object} models.JobApplication
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Failure 429 {object} apperrors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.CreateApplication(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// UploadCV godoc
// @Summary Загрузка резюме
// @Tags Applications
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF, DOC или DOCX"
// @Success 201 {object} dto.CVUploadResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /applications/cv [post]
func (h *ApplicationHandler) UploadCV(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"file": "File is required"}))
		return
	}

	resp, err := h.uploadService.UploadCV(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetApplication godoc
// @Summary Отклик по ID
// @Tags Applications
// @Produce json
// @Param id path string true "ID отклика"
// @Success 200 {object} models.JobApplication
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.appService.GetApplication(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateStatus godoc
// @Summary Смена статуса отклика
// @Description Только из PENDING в ACCEPTED или REJECTED
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID отклика"
// @Param status path string true "ACCEPTED или REJECTED"
// @Success 200 {object} models.JobApplication
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /applications/{id}/status/{status} [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	app, err := h.appService.UpdateStatus(c.Request.Context(), h.GetDB(c), c.Param("id"), c.Param("status"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// DeleteApplication godoc
// @Summary Удаление отклика
// @Tags Applications
// @Security BearerAuth
// @Param id path string true "ID отклика"
// @Success 204
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.appService.DeleteApplication(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Search godoc
// @Summary Поиск откликов
// @Description Фильтры объединяются через AND, пустые игнорируются
// @Tags Applications
// @Produce json
// @Param skill query string false "Навык"
// @Param experience query string false "Опыт"
// @Param degree query string false "Образование"
// @Param status query string false "PENDING, ACCEPTED, REJECTED"
// @Param sortBy query string false "Поле сортировки"
// @Param sortDirection query string false "asc или desc (по умолчанию)"
// @Success 200 {array} models.JobApplication
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) Search(c *gin.Context) {
	var filter dto.ApplicationFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}

	apps, err := h.appService.Search(c.Request.Context(), h.GetDB(c), &filter)
	h.respond(c, apps, err)
}

// ByJob godoc
// @Summary Отклики на вакансию
// @Tags Applications
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Param sortBy query string false "Поле сортировки"
// @Param sortDirection query string false "asc или desc"
// @Success 200 {array} models.JobApplication
// @Router /applications/job/{jobId} [get]
func (h *ApplicationHandler) ByJob(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByJob(c.Request.Context(), h.GetDB(c), c.Param("jobId"), sort)
	})
}

// ByJobSeeker godoc
// @Summary Отклики соискателя
// @Tags Applications
// @Produce json
// @Param jobSeekerId path string true "ID соискателя"
// @Success 200 {array} models.JobApplication
// @Router /applications/jobseeker/{jobSeekerId} [get]
func (h *ApplicationHandler) ByJobSeeker(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByJobSeeker(c.Request.Context(), h.GetDB(c), c.Param("jobSeekerId"), sort)
	})
}

// ByJobAndStatus godoc
// @Summary Отклики на вакансию в статусе
// @Tags Applications
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Param status path string true "Статус"
// @Success 200 {array} models.JobApplication
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /applications/job/{jobId}/status/{status} [get]
func (h *ApplicationHandler) ByJobAndStatus(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByJobAndStatus(c.Request.Context(), h.GetDB(c), c.Param("jobId"), c.Param("status"), sort)
	})
}

// ByJobSeekerAndStatus godoc
// @Summary Отклики соискателя в статусе
// @Tags Applications
// @Produce json
// @Param jobSeekerId path string true "ID соискателя"
// @Param status path string true "Статус"
// @Success 200 {array} models.JobApplication
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /applications/jobseeker/{jobSeekerId}/status/{status} [get]
func (h *ApplicationHandler) ByJobSeekerAndStatus(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByJobSeekerAndStatus(c.Request.Context(), h.GetDB(c), c.Param("jobSeekerId"), c.Param("status"), sort)
	})
}

// ByStatus godoc
// @Summary Отклики в статусе
// @Tags Applications
// @Produce json
// @Param status path string true "Статус"
// @Success 200 {array} models.JobApplication
// @Router /applications/status/{status} [get]
func (h *ApplicationHandler) ByStatus(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByStatus(c.Request.Context(), h.GetDB(c), c.Param("status"), sort)
	})
}

// BySkill godoc
// @Summary Отклики по навыку
// @Tags Applications
// @Produce json
// @Param skill query string true "Навык"
// @Success 200 {array} models.JobApplication
// @Router /applications/search/skill [get]
func (h *ApplicationHandler) BySkill(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.BySkill(c.Request.Context(), h.GetDB(c), c.Query("skill"), sort)
	})
}

// ByExperience godoc
// @Summary Отклики по опыту
// @Tags Applications
// @Produce json
// @Param experience query string true "Опыт"
// @Success 200 {array} models.JobApplication
// @Router /applications/search/experience [get]
func (h *ApplicationHandler) ByExperience(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByExperience(c.Request.Context(), h.GetDB(c), c.Query("experience"), sort)
	})
}

// ByDegree godoc
// @Summary Отклики по образованию
// @Tags Applications
// @Produce json
// @Param degree query string true "Образование"
// @Success 200 {array} models.JobApplication
// @Router /applications/search/degree [get]
func (h *ApplicationHandler) ByDegree(c *gin.Context) {
	h.listSorted(c, func(sort dto.ApplicationSort) ([]models.JobApplication, error) {
		return h.appService.ByDegree(c.Request.Context(), h.GetDB(c), c.Query("degree"), sort)
	})
}

// CountForJob godoc
// @Summary Количество откликов на вакансию
// @Tags Applications
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} dto.CountResponse
// @Router /applications/job/{jobId}/count [get]
func (h *ApplicationHandler) CountForJob(c *gin.Context) {
	count, err := h.appService.CountForJob(c.Request.Context(), h.GetDB(c), c.Param("jobId"))
	h.respond(c, dto.CountResponse{Count: count}, err)
}

// PendingCountForJob godoc
// @Summary Количество PENDING откликов на вакансию
// @Tags Applications
// @Produce json
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} dto.CountResponse
// @Router /applications/job/{jobId}/pending/count [get]
func (h *ApplicationHandler) PendingCountForJob(c *gin.Context) {
	count, err := h.appService.PendingCountForJob(c.Request.Context(), h.GetDB(c), c.Param("jobId"))
	h.respond(c, dto.CountResponse{Count: count}, err)
}

// CanApply godoc
// @Summary Может ли соискатель откликнуться
// @Description false при любой ошибке, включая недоступность соседних сервисов
// @Tags Applications
// @Produce json
// @Param jobSeekerId query string true "ID соискателя"
// @Param jobId query string true "ID вакансии"
// @Success 200 {object} dto.CanApplyResponse
// @Router /applications/can-apply [get]
func (h *ApplicationHandler) CanApply(c *gin.Context) {
	ok := h.appService.CanApply(c.Request.Context(), h.GetDB(c), c.Query("jobSeekerId"), c.Query("jobId"))
	c.JSON(http.StatusOK, dto.CanApplyResponse{CanApply: ok})
}

func (h *ApplicationHandler) listSorted(c *gin.Context, fetch func(sort dto.ApplicationSort) ([]models.JobApplication, error)) {
	var sort dto.ApplicationSort
	if !h.BindAndValidate_Query(c, &sort) {
		return
	}

	apps, err := fetch(sort)
	h.respond(c, apps, err)
}

func (h *ApplicationHandler) respond(c *gin.Context, body interface{}, err error) {
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
