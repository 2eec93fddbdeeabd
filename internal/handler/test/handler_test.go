package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reel/internal/config"
	handlers "reel/internal/handler"
	"reel/internal/metrics"
	"reel/internal/models"
	"reel/internal/repository"
	"reel/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	users        *MockUserRepository
	applications *MockApplicationRepository
	flags        *MockFlagRepository
	alerts       *MockAlertRepository
	portfolios   *MockPortfolioRepository
	projects     *MockProjectRepository
	credits      *MockCreditRepository
	media        *MockMediaRepository
	posts        *MockPostRepository
	interactions *MockInteractionRepository
	messages     *MockMessageRepository
	tags         *MockTrendTagRepository
	kpis         *MockKPIRepository
	insights     *MockInsightRepository

	postService   *MockPostService
	mediaService  *MockMediaService
	systemService *MockSystemService

	router *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		users:         new(MockUserRepository),
		applications:  new(MockApplicationRepository),
		flags:         new(MockFlagRepository),
		alerts:        new(MockAlertRepository),
		portfolios:    new(MockPortfolioRepository),
		projects:      new(MockProjectRepository),
		credits:       new(MockCreditRepository),
		media:         new(MockMediaRepository),
		posts:         new(MockPostRepository),
		interactions:  new(MockInteractionRepository),
		messages:      new(MockMessageRepository),
		tags:          new(MockTrendTagRepository),
		kpis:          new(MockKPIRepository),
		insights:      new(MockInsightRepository),
		postService:   new(MockPostService),
		mediaService:  new(MockMediaService),
		systemService: new(MockSystemService),
	}

	h := &handlers.Handlers{
		UserRepo:        env.users,
		ApplicationRepo: env.applications,
		FlagRepo:        env.flags,
		AlertRepo:       env.alerts,
		PortfolioRepo:   env.portfolios,
		ProjectRepo:     env.projects,
		CreditRepo:      env.credits,
		MediaRepo:       env.media,
		PostRepo:        env.posts,
		InteractionRepo: env.interactions,
		MessageRepo:     env.messages,
		TrendTagRepo:    env.tags,
		KPIRepo:         env.kpis,
		InsightRepo:     env.insights,
		PostService:     env.postService,
		MediaService:    env.mediaService,
		SystemService:   env.systemService,
		Cfg:             &config.Config{MaxUploadSize: 1 << 20},
		Validate:        handlers.NewValidator(),
	}
	env.router = handlers.NewRouter(h)

	t.Cleanup(func() {
		mock.AssertExpectationsForObjects(t,
			env.users, env.applications, env.flags, env.alerts, env.portfolios, env.projects,
			env.credits, env.media, env.posts, env.interactions, env.messages, env.tags,
			env.kpis, env.insights, env.postService, env.mediaService, env.systemService)
	})

	return env
}

func (env *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func stringPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestNewHandlers(t *testing.T) {
	repo := &repository.Repository{
		User: new(MockUserRepository),
		Post: new(MockPostRepository),
	}
	services := &service.Service{
		Post:   new(MockPostService),
		Media:  new(MockMediaService),
		System: new(MockSystemService),
	}
	cfg := &config.Config{}

	handler := handlers.NewHandlers(repo, services, cfg)

	assert.NotNil(t, handler.UserRepo)
	assert.NotNil(t, handler.PostRepo)
	assert.NotNil(t, handler.PostService)
	assert.NotNil(t, handler.MediaService)
	assert.NotNil(t, handler.SystemService)
	assert.Same(t, cfg, handler.Cfg)
	assert.NotNil(t, handler.Validate)
}

func TestIndex(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "reel-api", decodeBody(t, rr)["service"])
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{name: "database reachable", expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "database down", pingErr: errors.New("dial tcp: refused"), expectedStatus: http.StatusServiceUnavailable, expectedBody: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.systemService.On("Health", mock.Anything).Return(tt.pingErr)

			rr := env.do(http.MethodGet, "/health", nil)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr)["status"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestUnknownRouteAndMethod(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "resource not found", decodeBody(t, rr)["error"])

	rr = env.do(http.MethodPost, "/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestUnknownRouteAndMethodAreCounted(t *testing.T) {
	env := newTestEnv(t)
	notFound := func() float64 {
		return testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	}
	notAllowed := func() float64 {
		return testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "unmatched", "405")) +
			testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/health", "405"))
	}
	beforeNotFound, beforeNotAllowed := notFound(), notAllowed()

	env.do(http.MethodGet, "/does-not-exist", nil)
	env.do(http.MethodPost, "/health", nil)

	assert.Equal(t, beforeNotFound+1, notFound())
	assert.Equal(t, beforeNotAllowed+1, notAllowed())
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{name: "not found", err: repository.ErrNotFound, expectedStatus: http.StatusNotFound, expectedError: "kpi not found"},
		{name: "conflict", err: repository.ErrConflict, expectedStatus: http.StatusConflict, expectedError: "kpi already exists"},
		{name: "bad reference", err: repository.ErrInvalidReference, expectedStatus: http.StatusBadRequest, expectedError: repository.ErrInvalidReference.Error()},
		{name: "database failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.kpis.On("GetByID", mock.Anything, int64(3)).Return(nil, tt.err)

			rr := env.do(http.MethodGet, "/analytics/kpis/3", nil)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedError, decodeBody(t, rr)["error"])
		})
	}
}

func TestBadPathID(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/creator/users/abc", "/creator/users/0", "/creator/users/-4"} {
		rr := env.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)
		assert.Equal(t, "invalid id", decodeBody(t, rr)["error"], path)
	}
}

func TestRequestBodyErrors(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(http.MethodPost, "/analytics/kpis", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "request body is required", decodeBody(t, rr)["error"])

	rr = env.do(http.MethodPost, "/analytics/kpis", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid JSON body", decodeBody(t, rr)["error"])

	rr = env.do(http.MethodPost, "/analytics/kpis", map[string]string{"kpi_name": "reach"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "formula is required", decodeBody(t, rr)["error"])

	rr = env.do(http.MethodPut, "/analytics/kpis/1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "no fields to update", decodeBody(t, rr)["error"])
}

func TestSystemMetrics(t *testing.T) {
	env := newTestEnv(t)
	env.systemService.On("Metrics", mock.Anything).Return(&models.SystemMetrics{
		Status:   service.StatusOK,
		Database: models.DatabaseMetrics{Driver: "postgres", OpenConnections: 2},
		Tables:   map[string]int64{"users": 4},
		Storage:  "disabled",
	}, nil)

	rr := env.do(http.MethodGet, "/admin/system-metrics", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "postgres", body["database"].(map[string]interface{})["driver"])
	assert.Equal(t, float64(4), body["tables"].(map[string]interface{})["users"])
}
