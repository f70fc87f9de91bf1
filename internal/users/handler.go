package users

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/userd-api/userd/internal/platform/httpx"
)

// Handler wires HTTP endpoints for user management.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records := h.service.List(r.Context())
	httpx.JSON(w, http.StatusOK, listResponse{
		Users: toResponses(records),
		Count: len(records),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, userEnvelope{User: toResponse(user)})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	user, err := h.service.Create(r.Context(), form)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, mutationResponse{
		Message: "User created successfully",
		User:    toResponse(user),
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	form, err := decodeForm(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	user, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), form)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, mutationResponse{
		Message: "User updated successfully",
		User:    toResponse(user),
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, deleteResponse{
		Message:     "User deleted successfully",
		DeletedUser: toResponse(user),
	})
}

// decodeForm reads the request body into a form. An empty body yields a
// nil form, which the validator reports as missing data; a body that
// fails typed decoding is rejected outright.
func decodeForm(r *http.Request) (*UserForm, error) {
	var form *UserForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, ValidationError("Invalid request body")
	}
	return form, nil
}

// respondError translates domain errors to the API's status/body pairs.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr ValidationError
	switch {
	case errors.As(err, &vErr):
		httpx.Error(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, ErrEmailExists):
		httpx.Error(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("user request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
