package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const applicationsPrefix = "/api/applications"

// Gateway перенаправляет /api/applications/** на сервис откликов.
// Тело запроса не проксируется: клиент повторяет запрос по Location (307 сохраняет метод).
type Gateway struct {
	target string
}

func New(target string) (*Gateway, error) {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return nil, fmt.Errorf("invalid gateway target %q: %w", target, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid gateway target %q: need http(s)://host[:port]", target)
	}
	return &Gateway{target: strings.TrimRight(u.String(), "/")}, nil
}

func (g *Gateway) Target() string {
	return g.target
}

// Location - адрес, на который уходит запрос
func (g *Gateway) Location(r *http.Request) string {
	location := g.target + r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		location += "?" + r.URL.RawQuery
	}
	return location
}

func (g *Gateway) Redirect(c *gin.Context) {
	location := g.Location(c.Request)
	logger.CtxDebug(c.Request.Context(), "Redirecting", "method", c.Request.Method, "location", location)
	c.Redirect(http.StatusTemporaryRedirect, location)
}

func (g *Gateway) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "gateway", "target": g.target})
}

func notFound(c *gin.Context) {
	apperrors.HandleError(c, apperrors.New(apperrors.CodeNotFound, "gateway", "No route for "+c.Request.URL.Path))
}

// NewRouter - gin.Engine шлюза. БД и авторизации здесь нет.
func (g *Gateway) NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware("gateway"))

	router.GET("/health", g.Health)
	router.GET("/metrics", middleware.MetricsHandler())

	router.Any(applicationsPrefix, g.Redirect)
	router.Any(applicationsPrefix+"/*path", g.Redirect)

	router.NoRoute(notFound)
	router.NoMethod(notFound)
	return router
}
