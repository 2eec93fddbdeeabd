package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"reel/internal/logging"
	"reel/internal/repository"
	"reel/internal/service"
	"reel/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Error: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	writeJSON(w, data, statusCode)
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// writeList wraps items as {"<key>": [...]}.
func writeList(w http.ResponseWriter, key string, items interface{}) {
	writeSuccess(w, map[string]interface{}{key: items}, http.StatusOK)
}

func writeDeleted(w http.ResponseWriter, message, idKey string, id int64) {
	writeSuccess(w, map[string]interface{}{
		"message": message,
		idKey:     id,
	}, http.StatusOK)
}

// respondError maps repository, service and storage errors to a status code.
// entity names the resource in not-found and conflict messages.
func respondError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, entity+" not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, entity+" already exists", http.StatusConflict)
	case errors.Is(err, repository.ErrInvalidReference):
		WriteError(w, repository.ErrInvalidReference.Error(), http.StatusBadRequest)
	case errors.Is(err, repository.ErrInvalidInput):
		WriteError(w, repository.ErrInvalidInput.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnsupportedMedia):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrFileTooLarge):
		WriteError(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, storage.ErrStorageDisabled), errors.Is(err, storage.ErrStorageUnavailable):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("object storage unavailable")
		WriteError(w, "media storage is unavailable", http.StatusServiceUnavailable)
	default:
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// It writes the 400 response itself and reports whether the handler should continue.
func (h *Handlers) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	return decodeJSON(w, r, dst) && h.validate(w, dst)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.Body == nil || r.ContentLength == 0 {
		WriteError(w, "request body is required", http.StatusBadRequest)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}

	return true
}

func (h *Handlers) validate(w http.ResponseWriter, dst interface{}) bool {
	if err := h.Validate.Struct(dst); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required", "required_if":
			messages = append(messages, fe.Field()+" is required")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(messages, "; ")
}
