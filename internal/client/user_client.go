package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"jobportal/internal/logger"
	"jobportal/internal/models"
)

// UserRecord - то, что соседям нужно знать о пользователе
type UserRecord struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName"`
}

// IsHirer - роль JOB_HIRER; нераспознанная роль хиром не считается
func (u *UserRecord) IsHirer() bool {
	role, err := models.ParseUserRole(u.Role)
	return err == nil && role == models.UserRoleJobHirer
}

type UserClient interface {
	// GetUser возвращает false, если пользователь не найден или запрос не удался
	GetUser(ctx context.Context, id string) (*UserRecord, bool)
	UserExists(ctx context.Context, id string) bool
	IsHirer(ctx context.Context, id string) bool
}

type HTTPUserClient struct {
	sibling *siblingClient
}

func NewUserClient(baseURL string, timeout time.Duration, httpClient *http.Client) *HTTPUserClient {
	return &HTTPUserClient{sibling: newSiblingClient("user-service", baseURL, timeout, httpClient)}
}

func (c *HTTPUserClient) GetUser(ctx context.Context, id string) (*UserRecord, bool) {
	if strings.TrimSpace(id) == "" {
		return nil, false
	}
	var user UserRecord
	if err := c.sibling.getJSON(ctx, "/api/users/"+escape(id), &user); err != nil {
		if err != errNotFound {
			logger.CtxWarn(ctx, "User lookup failed, treating as not found", "user_id", id, "error", err.Error())
		}
		return nil, false
	}
	if user.ID == "" {
		return nil, false
	}
	return &user, true
}

func (c *HTTPUserClient) UserExists(ctx context.Context, id string) bool {
	_, ok := c.GetUser(ctx, id)
	return ok
}

func (c *HTTPUserClient) IsHirer(ctx context.Context, id string) bool {
	user, ok := c.GetUser(ctx, id)
	return ok && user.IsHirer()
}
