package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-portal/internal/controller"
	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/metrics"
	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
	"github.com/unclebandit/influencer-portal/internal/service"
)

type stubUserRepo struct{}

func (stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = 1
	return nil
}

func (stubUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if id != 1 {
		return nil, appErrors.NewNotFound("User", id)
	}
	return &model.User{ID: 1, Username: "ana"}, nil
}

func (stubUserRepo) List(_ context.Context) ([]model.User, error) {
	return []model.User{{ID: 1, Username: "ana"}}, nil
}

type stubTrendRepo struct{}

func (stubTrendRepo) Create(_ context.Context, t *model.Trend) error {
	t.ID = 1
	return nil
}

func (stubTrendRepo) List(_ context.Context, filter repository.TrendFilter) ([]model.Trend, error) {
	return []model.Trend{{ID: 1, Platform: filter.Platform, Keyword: "y2k"}}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newTestRouter(opts Options) http.Handler {
	if opts.Users == nil {
		opts.Users = &controller.UserController{UserService: &service.UserService{UserRepo: stubUserRepo{}}}
	}
	if opts.Content == nil {
		opts.Content = &controller.ContentController{}
	}
	if opts.Campaigns == nil {
		opts.Campaigns = &controller.CampaignController{}
	}
	if opts.Tasks == nil {
		opts.Tasks = &controller.WorkflowTaskController{}
	}
	if opts.Trends == nil {
		opts.Trends = &controller.TrendController{}
	}
	return New(opts)
}

func TestHealthcheck(t *testing.T) {
	cases := []struct {
		name string
		db   fakePinger
		want string
	}{
		{"up", fakePinger{}, "up"},
		{"down", fakePinger{err: errors.New("connection refused")}, "down"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(Options{DB: tc.db})
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var body healthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tc.want, body.Database)
			assert.False(t, body.Timestamp.IsZero())
		})
	}
}

func TestRPCRoutes(t *testing.T) {
	h := newTestRouter(Options{DB: fakePinger{}})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rpc/getUsers", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ana"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rpc/getUsers", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rpc/deleteUser", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	body := strings.NewReader(`{"email":"ana@example.com","username":"ana","full_name":"Ana"}`)
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rpc/createUser", body))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestTrendRoutes(t *testing.T) {
	h := newTestRouter(Options{
		DB:     fakePinger{},
		Trends: &controller.TrendController{TrendService: &service.TrendService{TrendRepo: stubTrendRepo{}}},
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rpc/getTrends?platform=tiktok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"keyword":"y2k"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/rpc/createTrend",
		strings.NewReader(`{"platform":"tiktok","keyword":"y2k","popularity_score":10}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestNotFoundProcedureError(t *testing.T) {
	h := newTestRouter(Options{DB: fakePinger{}})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rpc/getUser?id=7", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"User with id 7 does not exist"}}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	h := newTestRouter(Options{DB: fakePinger{}, Metrics: m})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rpc/getUsers", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `portal_http_requests_total{method="GET",route="/rpc/getUsers",status="200"} 1`)
}

func TestRateLimit(t *testing.T) {
	m := metrics.New()
	h := newTestRouter(Options{DB: fakePinger{}, Metrics: m, RateRPS: 1, RateBurst: 1})

	call := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/rpc/getUsers", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"))

	// healthcheck sits outside the limiter
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.RemoteAddr = "10.0.0.1:5002"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPLimiterForgetsIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPLimiter(1, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	assert.Len(t, l.limiters, 1)

	now = now.Add(11 * time.Minute)
	assert.True(t, l.allow("b"))
	assert.Len(t, l.limiters, 1)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.5:4321"
	assert.Equal(t, "192.168.1.5", clientIP(req))

	req.RemoteAddr = "192.168.1.5"
	assert.Equal(t, "192.168.1.5", clientIP(req))
}
