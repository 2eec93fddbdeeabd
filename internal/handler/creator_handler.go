package handlers

import (
	"net/http"

	"reel/internal/models"
)

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.List(r.Context(), models.UserFilter{
		Role:            r.URL.Query().Get("role"),
		IncludeInactive: queryBool(r, "include_inactive", false),
	})
	if err != nil {
		respondError(w, r, "user", err)
		return
	}

	writeList(w, "users", users)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.UserRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "user", err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.UserRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "user", err)
		return
	}

	writeSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "user", err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

// DeactivateUser is the DELETE verb; the row stays for credits and messages.
func (h *Handlers) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.UserRepo.Deactivate(r.Context(), id); err != nil {
		respondError(w, r, "user", err)
		return
	}

	writeDeleted(w, "user deactivated", "user_id", id)
}

// ListCreators backs creator discovery in both the creator and analytics modules.
func (h *Handlers) ListCreators(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sort := query.Get("sort")
	switch sort {
	case "", models.CreatorSortMomentum, models.CreatorSortMomentumAsc, models.CreatorSortName:
	default:
		WriteError(w, "sort must be one of [momentum momentum_asc name]", http.StatusBadRequest)
		return
	}

	creators, err := h.UserRepo.ListCreators(r.Context(), models.CreatorFilter{
		Market: query.Get("market"),
		Style:  query.Get("style"),
		Sort:   sort,
	})
	if err != nil {
		respondError(w, r, "creator", err)
		return
	}

	writeList(w, "creators", creators)
}

func (h *Handlers) ListPortfolios(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "user_id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	portfolios, err := h.PortfolioRepo.List(r.Context(), models.PortfolioFilter{
		UserID:          userID,
		IncludeArchived: queryBool(r, "include_archived", false),
	})
	if err != nil {
		respondError(w, r, "portfolio", err)
		return
	}

	writeList(w, "portfolios", portfolios)
}

func (h *Handlers) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	portfolio, err := h.PortfolioRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "portfolio", err)
		return
	}

	writeSuccess(w, portfolio, http.StatusOK)
}

func (h *Handlers) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePortfolioRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	portfolio, err := h.PortfolioRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "portfolio", err)
		return
	}

	writeSuccess(w, portfolio, http.StatusCreated)
}

func (h *Handlers) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePortfolioRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	portfolio, err := h.PortfolioRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "portfolio", err)
		return
	}

	writeSuccess(w, portfolio, http.StatusOK)
}

func (h *Handlers) ArchivePortfolio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.PortfolioRepo.Archive(r.Context(), id); err != nil {
		respondError(w, r, "portfolio", err)
		return
	}

	writeDeleted(w, "portfolio archived", "portfolio_id", id)
}

func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	portfolioID, err := queryID(r, "portfolio_id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	projects, err := h.ProjectRepo.List(r.Context(), models.ProjectFilter{
		PortfolioID:     portfolioID,
		Visibility:      r.URL.Query().Get("visibility"),
		IncludeArchived: queryBool(r, "include_archived", false),
	})
	if err != nil {
		respondError(w, r, "project", err)
		return
	}

	writeList(w, "projects", projects)
}

func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.ProjectRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "project", err)
		return
	}

	writeSuccess(w, project, http.StatusOK)
}

func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.ProjectRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "project", err)
		return
	}

	writeSuccess(w, project, http.StatusCreated)
}

func (h *Handlers) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateProjectRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	project, err := h.ProjectRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "project", err)
		return
	}

	writeSuccess(w, project, http.StatusOK)
}

func (h *Handlers) ArchiveProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.ProjectRepo.Archive(r.Context(), id); err != nil {
		respondError(w, r, "project", err)
		return
	}

	writeDeleted(w, "project archived", "project_id", id)
}

func (h *Handlers) ListProjectCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	credits, err := h.CreditRepo.List(r.Context(), models.CreditFilter{ProjectID: &id})
	if err != nil {
		respondError(w, r, "credit", err)
		return
	}

	writeList(w, "credits", credits)
}

func (h *Handlers) CreateProjectCredit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateCreditRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// the path names the project, whatever the body says
	req.ProjectID = id
	if !h.validate(w, &req) {
		return
	}

	credit, err := h.CreditRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "credit", err)
		return
	}

	writeSuccess(w, credit, http.StatusCreated)
}

func (h *Handlers) ListCollaborations(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "user_id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	projectID, err := queryID(r, "project_id")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	credits, err := h.CreditRepo.List(r.Context(), models.CreditFilter{ProjectID: projectID, UserID: userID})
	if err != nil {
		respondError(w, r, "collaboration", err)
		return
	}

	writeList(w, "collaborations", credits)
}

func (h *Handlers) CreateCollaboration(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCreditRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	credit, err := h.CreditRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "collaboration", err)
		return
	}

	writeSuccess(w, credit, http.StatusCreated)
}

func (h *Handlers) UpdateCollaboration(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateCreditRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	credit, err := h.CreditRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "collaboration", err)
		return
	}

	writeSuccess(w, credit, http.StatusOK)
}

func (h *Handlers) DeleteCollaboration(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.CreditRepo.Delete(r.Context(), id); err != nil {
		respondError(w, r, "collaboration", err)
		return
	}

	writeDeleted(w, "collaboration deleted", "credit_id", id)
}
