package routes_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"jobportal/database"
	"jobportal/internal/auth"
	"jobportal/internal/client"
	"jobportal/internal/handlers"
	"jobportal/internal/middleware"
	"jobportal/internal/repositories"
	"jobportal/internal/routes"
	"jobportal/internal/services"
	"jobportal/internal/storage"
	"jobportal/internal/testutil"
	"jobportal/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// portal - три сервиса поверх одной тестовой БД, связанные настоящими HTTP-клиентами
type portal struct {
	users, jobs, apps *testutil.TestServer
	sender            *testutil.RecordingSender
	notifier          *services.EmailNotificationService
}

func newPortal(t *testing.T) *portal {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t, database.MigrateUsers, database.MigrateJobs, database.MigrateApplications)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	base := handlers.NewBaseHandler(validator.New())
	p := &portal{sender: &testutil.RecordingSender{}}

	userRepo := repositories.NewUserRepository()
	p.users = serveRouter(t, db, tokens, "user-service", &handlers.AppHandlers{
		HealthHandler: handlers.NewHealthHandler(base, "user-service"),
		UserHandler: handlers.NewUserHandler(base,
			services.NewUserService(userRepo), services.NewAuthService(userRepo, tokens)),
	}, routes.Options{Service: "user-service"})

	userClient := client.NewUserClient(p.users.Server.URL, time.Second, nil)
	p.jobs = serveRouter(t, db, tokens, "job-service", &handlers.AppHandlers{
		JobHandler: handlers.NewJobHandler(base,
			services.NewJobService(repositories.NewJobRepository(), userClient)),
	}, routes.Options{Service: "job-service"})

	jobClient := client.NewJobClient(p.jobs.Server.URL, time.Second, nil)
	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	p.notifier = services.NewNotificationService(p.sender, jobClient, 0)
	p.apps = serveRouter(t, db, tokens, "application-service", &handlers.AppHandlers{
		HealthHandler: handlers.NewHealthHandler(base, "application-service"),
		ApplicationHandler: handlers.NewApplicationHandler(base,
			services.NewApplicationService(repositories.NewApplicationRepository(), userClient, jobClient, p.notifier),
			services.NewUploadService(store, services.UploadConfig{MaxSize: 1024, AllowedTypes: []string{"application/pdf"}})),
	}, routes.Options{
		Service:    "application-service",
		Limiter:    middleware.NewMemoryLimiter(),
		RateLimit:  4,
		RateWindow: time.Minute,
	})

	return p
}

func serveRouter(t *testing.T, db *gorm.DB, tokens *auth.TokenManager, service string, appHandlers *handlers.AppHandlers, opts routes.Options) *testutil.TestServer {
	t.Helper()
	router := routes.NewEngine(service, db, tokens)
	routes.RegisterRoutes(router, appHandlers, opts)
	return testutil.NewTestServer(t, router, db)
}

func createUser(t *testing.T, p *portal, username, role, company string) string {
	t.Helper()
	res, body := p.users.SendRequest(t, http.MethodPost, "/api/users", "", map[string]string{
		"username":    username,
		"email":       username + "@example.com",
		"password":    "secret123",
		"role":        role,
		"companyName": company,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var user map[string]interface{}
	testutil.DecodeJSON(t, body, &user)
	return user["id"].(string)
}

func TestJobPortalFlow(t *testing.T) {
	p := newPortal(t)

	hirerID := createUser(t, p, "boss", "JOB_HIRER", "Acme")
	seekerID := createUser(t, p, "jane", "JOB_SEEKER", "")

	// --- users ---
	res, body := p.users.SendRequest(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": "jane", "email": "other@example.com", "password": "secret123", "role": "JOB_SEEKER",
	})
	require.Equal(t, http.StatusConflict, res.StatusCode, body)
	var errBody map[string]interface{}
	testutil.DecodeJSON(t, body, &errBody)
	assert.Equal(t, "CONFLICT", errBody["error"])
	assert.Equal(t, map[string]interface{}{"field": "username"}, errBody["details"])

	res, body = p.users.SendRequest(t, http.MethodPost, "/api/users", "", map[string]string{"username": "x"})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	testutil.DecodeJSON(t, body, &errBody)
	assert.Equal(t, "VALIDATION_ERROR", errBody["error"])

	res, body = p.users.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "boss", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var login map[string]interface{}
	testutil.DecodeJSON(t, body, &login)
	token := login["token"].(string)
	require.NotEmpty(t, token)

	res, _ = p.users.SendRequest(t, http.MethodGet, "/api/users/"+hirerID, "invalid-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// --- jobs ---
	job := map[string]interface{}{
		"companyName":    "Acme",
		"jobTitle":       "Go Developer",
		"expectedSalary": 3000,
		"preference":     "REMOTE",
		"requiredSkills": []string{"Go", "SQL"},
		"experience":     "3 years",
		"workingHours":   "9-18",
		"hirerId":        seekerID,
	}
	res, body = p.jobs.SendRequest(t, http.MethodPost, "/api/jobs", token, job)
	require.Equal(t, http.StatusForbidden, res.StatusCode, body)

	job["hirerId"] = hirerID
	res, body = p.jobs.SendRequest(t, http.MethodPost, "/api/jobs", token, job)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created map[string]interface{}
	testutil.DecodeJSON(t, body, &created)
	jobID := created["id"].(string)

	res, body = p.jobs.SendRequest(t, http.MethodGet, "/api/jobs/search/skills?skill=go", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var found []map[string]interface{}
	testutil.DecodeJSON(t, body, &found)
	require.Len(t, found, 1)
	assert.Equal(t, jobID, found[0]["id"])

	// --- applications ---
	application := map[string]interface{}{
		"jobId":       jobID,
		"jobSeekerId": seekerID,
		"name":        "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "+77011234567",
		"skills":      []string{"Go"},
		"experience":  "3 years",
		"degree":      "BSc",
		"cvUrl":       "/uploads/cv/jane.pdf",
	}
	res, body = p.apps.SendRequest(t, http.MethodPost, "/api/applications", token, application)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var app map[string]interface{}
	testutil.DecodeJSON(t, body, &app)
	appID := app["id"].(string)
	assert.Equal(t, "PENDING", app["status"])

	res, body = p.apps.SendRequest(t, http.MethodPost, "/api/applications", token, application)
	require.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = p.apps.SendRequest(t, http.MethodGet, "/api/applications/can-apply?jobSeekerId="+seekerID+"&jobId="+jobID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"canApply":false}`, body)

	res, body = p.apps.SendRequest(t, http.MethodGet, "/api/applications/job/"+jobID+"/count", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.JSONEq(t, `{"count":1}`, body)

	res, body = p.apps.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/applications/%s/status/accepted", appID), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	p.notifier.Wait()
	sent := p.sender.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Body, "Go Developer")

	res, body = p.apps.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/applications/%s/status/REJECTED", appID), token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = p.apps.SendRequest(t, http.MethodGet, "/api/applications/missing-id", "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode, body)
	testutil.DecodeJSON(t, body, &errBody)
	assert.Equal(t, "NOT_FOUND", errBody["error"])
}

func TestApplicationCreateIsRateLimited(t *testing.T) {
	p := newPortal(t)

	// лимит 4 в минуту; тело невалидное, но лимитер стоит раньше валидации
	for i := 0; i < 4; i++ {
		res, body := p.apps.SendRequest(t, http.MethodPost, "/api/applications", "", map[string]string{})
		require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	}

	res, body := p.apps.SendRequest(t, http.MethodPost, "/api/applications", "", map[string]string{})
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode, body)
	assert.Equal(t, "60", res.Header.Get("Retry-After"))

	// чтение не ограничено
	res, _ = p.apps.SendRequest(t, http.MethodGet, "/api/applications", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMalformedInputHidesParserErrors(t *testing.T) {
	p := newPortal(t)

	res, body := p.jobs.SendRequest(t, http.MethodGet, "/api/jobs/search/advanced?minSalary=abc", "", nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	var errBody map[string]interface{}
	testutil.DecodeJSON(t, body, &errBody)
	assert.Equal(t, "VALIDATION_ERROR", errBody["error"])
	assert.Equal(t, map[string]interface{}{"query": "Invalid query parameters"}, errBody["details"])
	assert.NotContains(t, body, "strconv")

	res, body = p.users.SendRequest(t, http.MethodPost, "/api/users", "", map[string]interface{}{"username": 42})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	testutil.DecodeJSON(t, body, &errBody)
	assert.Equal(t, "VALIDATION_ERROR", errBody["error"])
	assert.Equal(t, map[string]interface{}{"username": "Invalid value type"}, errBody["details"])
	assert.NotContains(t, body, "Go struct")
}

func TestHealthAndMetrics(t *testing.T) {
	p := newPortal(t)

	res, body := p.apps.SendRequest(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var health map[string]string
	testutil.DecodeJSON(t, body, &health)
	assert.Equal(t, "UP", health["status"])
	assert.Equal(t, "application-service", health["service"])

	res, body = p.apps.SendRequest(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "jobportal_http_requests_total")
}
