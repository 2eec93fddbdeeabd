package handlers

import (
	"net/http"

	"reel/internal/models"
)

func (h *Handlers) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.ApplicationRepo.List(r.Context(), models.ApplicationFilter{
		Statuses: queryList(r, "status"),
	})
	if err != nil {
		respondError(w, r, "application", err)
		return
	}

	writeList(w, "applications", applications)
}

func (h *Handlers) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	application, err := h.ApplicationRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "application", err)
		return
	}

	writeSuccess(w, application, http.StatusOK)
}

func (h *Handlers) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req models.CreateApplicationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	application, err := h.ApplicationRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "application", err)
		return
	}

	writeSuccess(w, application, http.StatusCreated)
}

func (h *Handlers) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateApplicationRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	application, err := h.ApplicationRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "application", err)
		return
	}

	writeSuccess(w, application, http.StatusOK)
}

func (h *Handlers) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.ApplicationRepo.Delete(r.Context(), id); err != nil {
		respondError(w, r, "application", err)
		return
	}

	writeDeleted(w, "application deleted", "application_id", id)
}

func (h *Handlers) ListFlags(w http.ResponseWriter, r *http.Request) {
	flags, err := h.FlagRepo.List(r.Context(), models.FlagFilter{
		Statuses:    queryList(r, "status"),
		RelatedType: r.URL.Query().Get("related_type"),
	})
	if err != nil {
		respondError(w, r, "flagged activity", err)
		return
	}

	writeList(w, "flagged_activities", flags)
}

func (h *Handlers) GetFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	flag, err := h.FlagRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "flagged activity", err)
		return
	}

	writeSuccess(w, flag, http.StatusOK)
}

func (h *Handlers) CreateFlag(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFlagRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	flag, err := h.FlagRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "flagged activity", err)
		return
	}

	writeSuccess(w, flag, http.StatusCreated)
}

func (h *Handlers) UpdateFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateFlagRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	// resolved_at is stamped by the repository when the status becomes resolved
	flag, err := h.FlagRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "flagged activity", err)
		return
	}

	writeSuccess(w, flag, http.StatusOK)
}

func (h *Handlers) DeleteFlag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.FlagRepo.Delete(r.Context(), id); err != nil {
		respondError(w, r, "flagged activity", err)
		return
	}

	writeDeleted(w, "flagged activity deleted", "flag_id", id)
}

func (h *Handlers) ListAlerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.AlertRepo.List(r.Context(), models.AlertFilter{
		Statuses:        queryList(r, "status"),
		AlertType:       r.URL.Query().Get("alert_type"),
		ExcludeResolved: !queryBool(r, "include_resolved", true),
	})
	if err != nil {
		respondError(w, r, "alert", err)
		return
	}

	writeList(w, "alerts", alerts)
}

func (h *Handlers) GetAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	alert, err := h.AlertRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "alert", err)
		return
	}

	writeSuccess(w, alert, http.StatusOK)
}

func (h *Handlers) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlertRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	alert, err := h.AlertRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "alert", err)
		return
	}

	writeSuccess(w, alert, http.StatusCreated)
}

func (h *Handlers) UpdateAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateAlertRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	alert, err := h.AlertRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "alert", err)
		return
	}

	writeSuccess(w, alert, http.StatusOK)
}

func (h *Handlers) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.AlertRepo.Delete(r.Context(), id); err != nil {
		respondError(w, r, "alert", err)
		return
	}

	writeDeleted(w, "alert deleted", "alert_id", id)
}

// SystemMetrics answers 200 even when degraded; the status field carries the verdict.
func (h *Handlers) SystemMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.SystemService.Metrics(r.Context())
	if err != nil {
		respondError(w, r, "system metrics", err)
		return
	}

	writeSuccess(w, snapshot, http.StatusOK)
}
