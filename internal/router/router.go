// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/unclebandit/influencer-portal/internal/controller"
	"github.com/unclebandit/influencer-portal/internal/db"
	"github.com/unclebandit/influencer-portal/internal/metrics"
)

type Options struct {
	Users     *controller.UserController
	Content   *controller.ContentController
	Campaigns *controller.CampaignController
	Tasks     *controller.WorkflowTaskController
	Trends    *controller.TrendController

	DB        db.Pinger
	Metrics   *metrics.Registry
	RateRPS   float64
	RateBurst int
}

func New(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(Instrument(opts.Metrics))
	}

	r.Get("/healthcheck", healthcheck(opts.DB))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/rpc", func(r chi.Router) {
		r.Use(RateLimit(opts.RateRPS, opts.RateBurst, opts.Metrics))

		u := opts.Users
		r.Post("/createUser", u.CreateUser)
		r.Get("/getUser", u.GetUser)
		r.Get("/getUsers", u.GetUsers)
		r.Post("/createPlatformAccount", u.CreatePlatformAccount)
		r.Get("/getPlatformAccounts", u.GetPlatformAccounts)

		c := opts.Content
		r.Post("/createContent", c.CreateContent)
		r.Get("/getContent", c.GetContent)
		r.Post("/createScheduledPost", c.CreateScheduledPost)
		r.Get("/getScheduledPosts", c.GetScheduledPosts)
		r.Post("/updateScheduledPostStatus", c.UpdateScheduledPostStatus)
		r.Post("/createAiContentRequest", c.CreateAIContentRequest)
		r.Get("/getAiContentRequests", c.GetAIContentRequests)

		cp := opts.Campaigns
		r.Post("/createCampaign", cp.CreateCampaign)
		r.Get("/getCampaigns", cp.GetCampaigns)
		r.Post("/updateCampaignStatus", cp.UpdateCampaignStatus)
		r.Post("/createCampaignMetrics", cp.CreateCampaignMetrics)
		r.Get("/getCampaignMetrics", cp.GetCampaignMetrics)
		r.Get("/getCampaignMetricsSummary", cp.GetCampaignMetricsSummary)

		wt := opts.Tasks
		r.Post("/createWorkflowTask", wt.CreateWorkflowTask)
		r.Get("/getWorkflowTasks", wt.GetWorkflowTasks)
		r.Post("/updateWorkflowTaskStatus", wt.UpdateWorkflowTaskStatus)

		tr := opts.Trends
		r.Post("/createTrend", tr.CreateTrend)
		r.Get("/getTrends", tr.GetTrends)
	})

	return r
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// healthcheck always answers 200; database reports "down" when the ping fails.
func healthcheck(p db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Timestamp: time.Now().UTC(), Database: "up"}
		if p == nil {
			resp.Database = "down"
		} else {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.PingContext(ctx); err != nil {
				log.Warn().Err(err).Msg("database ping failed")
				resp.Database = "down"
			}
		}
		controller.WriteJSON(w, http.StatusOK, resp)
	}
}
