package handlers

import (
	"net/http"

	"reel/internal/models"
)

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userID")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := h.PostRepo.List(r.Context(), models.PostFilter{
		UserID:     userID,
		Visibility: r.URL.Query().Get("visibility"),
	})
	if err != nil {
		respondError(w, r, "post", err)
		return
	}

	writeList(w, "posts", posts)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "post", err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	// creating a post together with the tag usage bump
	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		respondError(w, r, "post", err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	post, err := h.PostRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "post", err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.PostRepo.SoftDelete(r.Context(), id); err != nil {
		respondError(w, r, "post", err)
		return
	}

	writeDeleted(w, "post deleted", "post_id", id)
}

func (h *Handlers) ListInteractions(w http.ResponseWriter, r *http.Request) {
	postID, err := queryID(r, "postID")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := queryID(r, "userID")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	interactions, err := h.InteractionRepo.List(r.Context(), models.InteractionFilter{PostID: postID, UserID: userID})
	if err != nil {
		respondError(w, r, "interaction", err)
		return
	}

	writeList(w, "interactions", interactions)
}

func (h *Handlers) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInteractionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	interaction, err := h.InteractionRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "interaction", err)
		return
	}

	writeSuccess(w, interaction, http.StatusCreated)
}

func (h *Handlers) DeleteInteraction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.InteractionRepo.Delete(r.Context(), id); err != nil {
		respondError(w, r, "interaction", err)
		return
	}

	writeDeleted(w, "interaction deleted", "interaction_id", id)
}

// requireUserID reads the caller's id for the message endpoints, which have no other way to tell sides apart.
func requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := queryID(r, "userID")
	if err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	if userID == nil {
		WriteError(w, "userID is required", http.StatusBadRequest)
		return 0, false
	}
	return *userID, true
}

func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	messages, err := h.MessageRepo.ListForUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, "message", err)
		return
	}

	writeList(w, "messages", messages)
}

func (h *Handlers) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	message, err := h.MessageRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, "message", err)
		return
	}
	if !message.VisibleTo(userID) {
		WriteError(w, "message not found", http.StatusNotFound)
		return
	}

	writeSuccess(w, message, http.StatusOK)
}

func (h *Handlers) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMessageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	message, err := h.MessageRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "message", err)
		return
	}

	writeSuccess(w, message, http.StatusCreated)
}

func (h *Handlers) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.UpdateMessageRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.IsEmpty() {
		WriteError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	message, err := h.MessageRepo.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, "message", err)
		return
	}

	writeSuccess(w, message, http.StatusOK)
}

// DeleteMessage hides the message from the caller's side only.
func (h *Handlers) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	if err := h.MessageRepo.DeleteForUser(r.Context(), id, userID); err != nil {
		respondError(w, r, "message", err)
		return
	}

	writeDeleted(w, "message deleted", "message_id", id)
}
