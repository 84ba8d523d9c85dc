package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/mapper"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/my_errors"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/request"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/response"
)

type ActivityService interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	Signup(ctx context.Context, activityName, email string) (string, error)
	Unregister(ctx context.Context, activityName, email string) (string, error)
}

type ActivityHandler struct {
	service   ActivityService
	validator *validator.Validate
}

func NewActivityHandler(service ActivityService, validator *validator.Validate) *ActivityHandler {
	return &ActivityHandler{
		service:   service,
		validator: validator,
	}
}

// ListActivities godoc
// @Summary List all activities
// @Description Get the full activity catalog keyed by activity name
// @Tags Activities
// @Produce json
// @Success 200 {object} dto.CatalogDTO "Catalog retrieved successfully"
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapDomainCatalogToDTO(activities))
}

// Signup godoc
// @Summary Sign up for an activity
// @Description Register a student email for the named activity
// @Tags Activities
// @Produce json
// @Param activityName path string true "Activity name (URL-encoded)"
// @Param email query string true "Student email"
// @Success 200 {object} response.MessageResponse "Signed up successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing email or already signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{activityName}/signup [post]
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	activityName, ok := h.activityNameFromPath(w, r)
	if !ok {
		return
	}

	req := request.SignupRequest{Email: r.URL.Query().Get("email")}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	message, err := h.service.Signup(r.Context(), activityName, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: message})
}

// Unregister godoc
// @Summary Unregister from an activity
// @Description Remove a student email from the named activity's roster
// @Tags Activities
// @Produce json
// @Param activityName path string true "Activity name (URL-encoded)"
// @Param email query string true "Student email"
// @Success 200 {object} response.MessageResponse "Unregistered successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing email or not signed up"
// @Failure 404 {object} dto.ErrorResponse "Activity not found"
// @Router /activities/{activityName}/unregister [post]
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	activityName, ok := h.activityNameFromPath(w, r)
	if !ok {
		return
	}

	req := request.SignupRequest{Email: r.URL.Query().Get("email")}
	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "email query parameter is required")
		return
	}

	message, err := h.service.Unregister(r.Context(), activityName, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, response.MessageResponse{Message: message})
}

// activityNameFromPath extracts and URL-decodes the activity name segment.
// chi matches on the raw path when it contains escapes, so the parameter may
// still carry %20 and friends.
func (h *ActivityHandler) activityNameFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "activityName")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "activity name is required")
		return "", false
	}

	name, err := url.PathUnescape(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid activity name")
		return "", false
	}
	return name, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, my_errors.ErrActivityNotFound):
		respondError(w, http.StatusNotFound, my_errors.ErrActivityNotFound.Error())
	case errors.Is(err, my_errors.ErrAlreadySignedUp):
		respondError(w, http.StatusBadRequest, my_errors.ErrAlreadySignedUp.Error())
	case errors.Is(err, my_errors.ErrNotSignedUp):
		respondError(w, http.StatusBadRequest, my_errors.ErrNotSignedUp.Error())
	case errors.Is(err, my_errors.ErrEmptyField):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
