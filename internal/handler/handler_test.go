package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetWrapped(ctx context.Context, username, callerToken string) (*models.Report, error) {
	args := m.Called(ctx, username, callerToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func newTestRouter(svc ReportService) *mux.Router {
	router := mux.NewRouter()
	NewWrappedHandler(svc).RegisterRoutes(router)
	return router
}

func TestGetWrapped_Success(t *testing.T) {
	report := &models.Report{
		Username: "octocat",
		Avatar:   "https://avatars.githubusercontent.com/u/1",
		Year:     2025,
		Profile:  models.ProfileSummary{Bio: "I build things", Location: "Earth"},
		Stats:    models.Stats{Commits: 60, BusiestDay: "Monday"},
	}

	svc := new(MockReportService)
	svc.On("GetWrapped", mock.Anything, "octocat", "").Return(report, nil)

	req := httptest.NewRequest("GET", "/api/github/octocat", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *report, got)

	svc.AssertExpectations(t)
}

func TestGetWrapped_ForwardsBearerToken(t *testing.T) {
	svc := new(MockReportService)
	svc.On("GetWrapped", mock.Anything, "octocat", "ghp_secret").Return(&models.Report{}, nil)

	req := httptest.NewRequest("GET", "/api/github/octocat", nil)
	req.Header.Set("Authorization", "Bearer ghp_secret")
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetWrapped_UpstreamFailure(t *testing.T) {
	svc := new(MockReportService)
	svc.On("GetWrapped", mock.Anything, "octocat", "").Return(nil, errors.New("rate limited"))

	req := httptest.NewRequest("GET", "/api/github/octocat", nil)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// The cause is never classified to the caller
	assert.Equal(t, "GitHub fetch failed", resp.Error)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"well-formed bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, bearerToken(req))
		})
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	newTestRouter(new(MockReportService)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
