package handlers

import (
	"net/http"

	"reel/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every module under its prefix. Logging and metrics run
// inside the router so they can read the matched path template. mux skips
// Use middleware for unmatched requests, so the 404/405 handlers are wrapped directly.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = middleware.Chain(http.HandlerFunc(h.NotFound), middleware.Logging, middleware.Metrics)
	r.MethodNotAllowedHandler = middleware.Chain(http.HandlerFunc(h.MethodNotAllowed), middleware.Logging, middleware.Metrics)
	r.Use(middleware.Logging, middleware.Metrics)

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	registerAdminRoutes(r.PathPrefix("/admin").Subrouter(), h)
	registerAnalyticsRoutes(r.PathPrefix("/analytics").Subrouter(), h)
	registerCreatorRoutes(r.PathPrefix("/creator").Subrouter(), h)
	registerSocialRoutes(r.PathPrefix("/social").Subrouter(), h)

	return r
}

func registerAdminRoutes(r *mux.Router, h *Handlers) {
	r.HandleFunc("/applications", h.ListApplications).Methods(http.MethodGet)
	r.HandleFunc("/applications", h.CreateApplication).Methods(http.MethodPost)
	r.HandleFunc("/applications/{id}", h.GetApplication).Methods(http.MethodGet)
	r.HandleFunc("/applications/{id}", h.UpdateApplication).Methods(http.MethodPut)
	r.HandleFunc("/applications/{id}", h.DeleteApplication).Methods(http.MethodDelete)

	r.HandleFunc("/flagged-activities", h.ListFlags).Methods(http.MethodGet)
	r.HandleFunc("/flagged-activities", h.CreateFlag).Methods(http.MethodPost)
	r.HandleFunc("/flagged-activities/{id}", h.GetFlag).Methods(http.MethodGet)
	r.HandleFunc("/flagged-activities/{id}", h.UpdateFlag).Methods(http.MethodPut)
	r.HandleFunc("/flagged-activities/{id}", h.DeleteFlag).Methods(http.MethodDelete)

	r.HandleFunc("/alerts", h.ListAlerts).Methods(http.MethodGet)
	r.HandleFunc("/alerts", h.CreateAlert).Methods(http.MethodPost)
	r.HandleFunc("/alerts/{id}", h.GetAlert).Methods(http.MethodGet)
	r.HandleFunc("/alerts/{id}", h.UpdateAlert).Methods(http.MethodPut)
	r.HandleFunc("/alerts/{id}", h.DeleteAlert).Methods(http.MethodDelete)

	r.HandleFunc("/system-metrics", h.SystemMetrics).Methods(http.MethodGet)
}

func registerAnalyticsRoutes(r *mux.Router, h *Handlers) {
	r.HandleFunc("/analytics-health", h.AnalyticsHealth).Methods(http.MethodGet)
	r.HandleFunc("/creators", h.ListCreators).Methods(http.MethodGet)
	r.HandleFunc("/trending-tags", h.TrendingTags).Methods(http.MethodGet)

	r.HandleFunc("/trend-tags", h.ListTrendTags).Methods(http.MethodGet)
	r.HandleFunc("/trend-tags", h.CreateTrendTag).Methods(http.MethodPost)
	r.HandleFunc("/trend-tags/{id}", h.GetTrendTag).Methods(http.MethodGet)
	r.HandleFunc("/trend-tags/{id}", h.UpdateTrendTag).Methods(http.MethodPut)
	r.HandleFunc("/trend-tags/{id}", h.ArchiveTrendTag).Methods(http.MethodDelete)

	r.HandleFunc("/kpis", h.ListKPIs).Methods(http.MethodGet)
	r.HandleFunc("/kpis", h.CreateKPI).Methods(http.MethodPost)
	r.HandleFunc("/kpis/{id}", h.GetKPI).Methods(http.MethodGet)
	r.HandleFunc("/kpis/{id}", h.UpdateKPI).Methods(http.MethodPut)
	r.HandleFunc("/kpis/{id}", h.ArchiveKPI).Methods(http.MethodDelete)

	r.HandleFunc("/insights", h.ListInsights).Methods(http.MethodGet)
	r.HandleFunc("/insights", h.CreateInsight).Methods(http.MethodPost)
	r.HandleFunc("/insights/{id}", h.GetInsight).Methods(http.MethodGet)
	r.HandleFunc("/insights/{id}", h.UpdateInsight).Methods(http.MethodPut)
	r.HandleFunc("/insights/{id}", h.DeleteInsight).Methods(http.MethodDelete)
}

func registerCreatorRoutes(r *mux.Router, h *Handlers) {
	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.DeactivateUser).Methods(http.MethodDelete)

	r.HandleFunc("/creators", h.ListCreators).Methods(http.MethodGet)

	r.HandleFunc("/portfolios", h.ListPortfolios).Methods(http.MethodGet)
	r.HandleFunc("/portfolios", h.CreatePortfolio).Methods(http.MethodPost)
	r.HandleFunc("/portfolios/{id}", h.GetPortfolio).Methods(http.MethodGet)
	r.HandleFunc("/portfolios/{id}", h.UpdatePortfolio).Methods(http.MethodPut)
	r.HandleFunc("/portfolios/{id}", h.ArchivePortfolio).Methods(http.MethodDelete)

	r.HandleFunc("/projects", h.ListProjects).Methods(http.MethodGet)
	r.HandleFunc("/projects", h.CreateProject).Methods(http.MethodPost)
	r.HandleFunc("/projects/{id}", h.GetProject).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}", h.UpdateProject).Methods(http.MethodPut)
	r.HandleFunc("/projects/{id}", h.ArchiveProject).Methods(http.MethodDelete)

	r.HandleFunc("/projects/{id}/credits", h.ListProjectCredits).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}/credits", h.CreateProjectCredit).Methods(http.MethodPost)

	r.HandleFunc("/projects/{id}/media", h.ListProjectMedia).Methods(http.MethodGet)
	r.HandleFunc("/projects/{id}/media", h.CreateProjectMedia).Methods(http.MethodPost)
	r.HandleFunc("/projects/{id}/media/upload", h.UploadProjectMedia).Methods(http.MethodPost)
	r.HandleFunc("/media/{id}", h.DeleteMedia).Methods(http.MethodDelete)

	r.HandleFunc("/collaborations", h.ListCollaborations).Methods(http.MethodGet)
	r.HandleFunc("/collaborations", h.CreateCollaboration).Methods(http.MethodPost)
	r.HandleFunc("/collaborations/{id}", h.UpdateCollaboration).Methods(http.MethodPut)
	r.HandleFunc("/collaborations/{id}", h.DeleteCollaboration).Methods(http.MethodDelete)
}

func registerSocialRoutes(r *mux.Router, h *Handlers) {
	r.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)

	r.HandleFunc("/post-interactions", h.ListInteractions).Methods(http.MethodGet)
	r.HandleFunc("/post-interactions", h.CreateInteraction).Methods(http.MethodPost)
	r.HandleFunc("/post-interactions/{id}", h.DeleteInteraction).Methods(http.MethodDelete)

	r.HandleFunc("/messages", h.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages", h.CreateMessage).Methods(http.MethodPost)
	r.HandleFunc("/messages/{id}", h.GetMessage).Methods(http.MethodGet)
	r.HandleFunc("/messages/{id}", h.UpdateMessage).Methods(http.MethodPut)
	r.HandleFunc("/messages/{id}", h.DeleteMessage).Methods(http.MethodDelete)
}
