package handlers

import (
	"net/http"

	"reel/internal/models"
)

const (
	defaultTrendingLimit = 10
	maxTrendingLimit     = 100
)

func (h *Handlers) AnalyticsHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "analytics blueprint is working"}, http.StatusOK)
}

func (h *Handlers) TrendingTags(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultTrendingLimit, maxTrendingLimit)

	tags, err := h.TrendTagRepo.Trending(r.Context(), limit)
	if err != nil {
		respondError(w, r, "trend tag", err)
		return
	}

	writeList(w, "trending_tags", tags)
}

func (h *Handlers) ListTrendTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TrendTagRepo.List(r.Context(), models.StatusFilter{Statuses: queryList(r, "status")})
	if err != nil {
		respondError(w, r, "trend tag", err)
		return
	}

	writeList(w, "trend_tags", tags)
}

func (h *Handlers) GetTrendTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.TrendTagRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "trend tag", err)
		return
	}

	writeSuccess(w, tag, http.StatusOK)
}

func (h *Handlers) CreateTrendTag(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTrendTagRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tag, err := h.TrendTagRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "trend tag", err)
		return
	}

	writeSuccess(w, tag, http.StatusCreated)
}

func (h *Handlers) UpdateTrendTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateTrendTagRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	tag, err := h.TrendTagRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "trend tag", err)
		return
	}

	writeSuccess(w, tag, http.StatusOK)
}

// ArchiveTrendTag keeps the row so historic usage counts survive.
func (h *Handlers) ArchiveTrendTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.TrendTagRepo.Archive(r.Context(), id); err != nil {
		respondError(w, r, "trend tag", err)
		return
	}

	writeDeleted(w, "trend tag archived", "tag_id", id)
}

func (h *Handlers) ListKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.KPIRepo.List(r.Context(), models.StatusFilter{Statuses: queryList(r, "status")})
	if err != nil {
		respondError(w, r, "kpi", err)
		return
	}

	writeList(w, "kpis", kpis)
}

func (h *Handlers) GetKPI(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	kpi, err := h.KPIRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "kpi", err)
		return
	}

	writeSuccess(w, kpi, http.StatusOK)
}

func (h *Handlers) CreateKPI(w http.ResponseWriter, r *http.Request) {
	var req models.CreateKPIRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	kpi, err := h.KPIRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "kpi", err)
		return
	}

	writeSuccess(w, kpi, http.StatusCreated)
}

func (h *Handlers) UpdateKPI(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateKPIRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	kpi, err := h.KPIRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "kpi", err)
		return
	}

	writeSuccess(w, kpi, http.StatusOK)
}

func (h *Handlers) ArchiveKPI(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.KPIRepo.Archive(r.Context(), id); err != nil {
		respondError(w, r, "kpi", err)
		return
	}

	writeDeleted(w, "kpi archived", "kpi_id", id)
}

func (h *Handlers) ListInsights(w http.ResponseWriter, r *http.Request) {
	creatorID, err := queryID(r, "creator_id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	insights, err := h.InsightRepo.List(r.Context(), models.InsightFilter{CreatorID: creatorID})
	if err != nil {
		respondError(w, r, "insight", err)
		return
	}

	writeList(w, "insights", insights)
}

func (h *Handlers) GetInsight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	insight, err := h.InsightRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "insight", err)
		return
	}

	writeSuccess(w, insight, http.StatusOK)
}

func (h *Handlers) CreateInsight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInsightRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	insight, err := h.InsightRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "insight", err)
		return
	}

	writeSuccess(w, insight, http.StatusCreated)
}

func (h *Handlers) UpdateInsight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateInsightRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	insight, err := h.InsightRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "insight", err)
		return
	}

	writeSuccess(w, insight, http.StatusOK)
}

func (h *Handlers) DeleteInsight(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.InsightRepo.Delete(r.Context(), id); err != nil {
		respondError(w, r, "insight", err)
		return
	}

	writeDeleted(w, "insight deleted", "insight_id", id)
}
