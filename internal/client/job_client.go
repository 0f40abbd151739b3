package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"jobportal/internal/logger"
)

type JobRecord struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	JobTitle    string `json:"jobTitle"`
	HirerID     string `json:"hirerId"`
}

type JobClient interface {
	GetJob(ctx context.Context, id string) (*JobRecord, bool)
	JobExists(ctx context.Context, id string) bool
}

type HTTPJobClient struct {
	sibling *siblingClient
}

func NewJobClient(baseURL string, timeout time.Duration, httpClient *http.Client) *HTTPJobClient {
	return &HTTPJobClient{sibling: newSiblingClient("job-service", baseURL, timeout, httpClient)}
}

func (c *HTTPJobClient) GetJob(ctx context.Context, id string) (*JobRecord, bool) {
	if strings.TrimSpace(id) == "" {
		return nil, false
	}
	var job JobRecord
	if err := c.sibling.getJSON(ctx, "/api/jobs/"+escape(id), &job); err != nil {
		if err != errNotFound {
			logger.CtxWarn(ctx, "Job lookup failed, treating as not found", "job_id", id, "error", err.Error())
		}
		return nil, false
	}
	if job.ID == "" {
		return nil, false
	}
	return &job, true
}

func (c *HTTPJobClient) JobExists(ctx context.Context, id string) bool {
	_, ok := c.GetJob(ctx, id)
	return ok
}
