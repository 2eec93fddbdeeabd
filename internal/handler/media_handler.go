package handlers

import (
	"errors"
	"net/http"
	"strings"

	"reel/internal/models"
	"reel/internal/service"
)

// multipart overhead allowed on top of the file itself
const uploadFormOverhead = 1 << 20

func (h *Handlers) ListProjectMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	media, err := h.MediaRepo.ListByProject(r.Context(), id)
	if err != nil {
		respondError(w, r, "media", err)
		return
	}

	writeList(w, "media", media)
}

// CreateProjectMedia registers media hosted elsewhere; nothing goes to object storage.
func (h *Handlers) CreateProjectMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.CreateMediaRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	req.ProjectID = id
	req.ObjectKey = nil

	media, err := h.MediaRepo.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, "media", err)
		return
	}

	writeSuccess(w, media, http.StatusCreated)
}

func (h *Handlers) UploadProjectMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	maxSize := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+uploadFormOverhead)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, "media", service.ErrFileTooLarge)
			return
		}
		WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var caption *string
	if value := strings.TrimSpace(r.FormValue("caption")); value != "" {
		caption = &value
	}

	media, err := h.MediaService.UploadMedia(r.Context(), service.UploadMediaRequest{
		ProjectID: id,
		FileName:  header.Filename,
		Caption:   caption,
		File:      file,
		Size:      header.Size,
	})
	if err != nil {
		respondError(w, r, "project", err)
		return
	}

	writeSuccess(w, media, http.StatusCreated)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.MediaService.DeleteMedia(r.Context(), id); err != nil {
		respondError(w, r, "media", err)
		return
	}

	writeDeleted(w, "media deleted", "media_id", id)
}
