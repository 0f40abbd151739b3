// Package testutil - общие помощники для тестов сервисов: sqlite в памяти,
// поддельные соседние сервисы, запись писем и HTTP-сервер для запросов.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"jobportal/internal/client"
	"jobportal/internal/email"
	"jobportal/internal/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB открывает отдельную sqlite-базу в памяти для теста и прогоняет миграции
func NewTestDB(t *testing.T, migrations ...func(db *gorm.DB) error) *gorm.DB {
	t.Helper()
	logger.Init("test", "")

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Не удалось открыть тестовую БД: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, migrate := range migrations {
		if err := migrate(db); err != nil {
			t.Fatalf("Миграция тестовой БД не удалась: %v", err)
		}
	}
	return db
}

// ============================================================================
// Соседние сервисы
// ============================================================================

var (
	_ client.UserClient = (*FakeUserClient)(nil)
	_ client.JobClient  = (*FakeJobClient)(nil)
	_ email.Sender      = (*RecordingSender)(nil)
)

// FakeUserClient отвечает из карты; Fail имитирует недоступный user service
type FakeUserClient struct {
	mu    sync.Mutex
	users map[string]*client.UserRecord
	Fail  bool
}

func NewFakeUserClient(users ...*client.UserRecord) *FakeUserClient {
	f := &FakeUserClient{users: map[string]*client.UserRecord{}}
	for _, u := range users {
		f.Add(u)
	}
	return f
}

func (f *FakeUserClient) Add(user *client.UserRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
}

func (f *FakeUserClient) GetUser(ctx context.Context, id string) (*client.UserRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return nil, false
	}
	user, ok := f.users[id]
	return user, ok
}

func (f *FakeUserClient) UserExists(ctx context.Context, id string) bool {
	_, ok := f.GetUser(ctx, id)
	return ok
}

func (f *FakeUserClient) IsHirer(ctx context.Context, id string) bool {
	user, ok := f.GetUser(ctx, id)
	return ok && user.IsHirer()
}

type FakeJobClient struct {
	mu   sync.Mutex
	jobs map[string]*client.JobRecord
	Fail bool
}

func NewFakeJobClient(jobs ...*client.JobRecord) *FakeJobClient {
	f := &FakeJobClient{jobs: map[string]*client.JobRecord{}}
	for _, j := range jobs {
		f.Add(j)
	}
	return f
}

func (f *FakeJobClient) Add(job *client.JobRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.ID] = job
}

func (f *FakeJobClient) GetJob(ctx context.Context, id string) (*client.JobRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return nil, false
	}
	job, ok := f.jobs[id]
	return job, ok
}

func (f *FakeJobClient) JobExists(ctx context.Context, id string) bool {
	_, ok := f.GetJob(ctx, id)
	return ok
}

// ============================================================================
// Почта
// ============================================================================

// RecordingSender запоминает отправленные письма
type RecordingSender struct {
	mu     sync.Mutex
	emails []*email.Email
	Err    error
}

func (s *RecordingSender) Send(ctx context.Context, e *email.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.emails = append(s.emails, e)
	return nil
}

func (s *RecordingSender) Sent() []*email.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*email.Email, len(s.emails))
	copy(out, s.emails)
	return out
}

// ============================================================================
// HTTP
// ============================================================================

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

func NewTestServer(t *testing.T, handler http.Handler, db *gorm.DB) *TestServer {
	t.Helper()
	ts := &TestServer{Server: httptest.NewServer(handler), DB: db}
	t.Cleanup(ts.Server.Close)
	return ts
}

// SendRequest отправляет JSON-запрос и возвращает ответ с прочитанным телом.
// Редиректы не выполняются, чтобы их можно было проверить.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := ts.Server.Client()
	httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	res, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBody)
}

// DecodeJSON разбирает тело ответа или роняет тест
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("Не удалось распарсить JSON %q: %v", body, err)
	}
}
