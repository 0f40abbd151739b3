package handlers

import (
	"context"
	"net/http"
	"time"

	"jobportal/internal/logger"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
	service string
}

func NewHealthHandler(base *BaseHandler, service string) *HealthHandler {
	return &HealthHandler{BaseHandler: base, service: service}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// Health godoc
// @Summary Проверка живости сервиса и БД
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "UP", Service: h.service, Database: "UP"}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.CtxWithError(ctx, "Health check: database unreachable", err)
		resp.Status = "DOWN"
		resp.Database = "DOWN"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
