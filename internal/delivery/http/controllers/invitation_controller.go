package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"invitebox/internal/delivery/http/helpers"
	"invitebox/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// invitationIDFromPath extracts and validates the invitationID path parameter,
// writing a 400 response and returning false when it is missing or malformed.
func invitationIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("invitationID")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing invitationID")
		return "", false
	}
	if !uuidRegex.MatchString(id) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid invitationID")
		return "", false
	}
	return id, true
}

// writeDomainError maps domain errors to HTTP responses. Corrupt records are
// logged at error level but rendered as not-found so no internal state leaks;
// storage-write failures come back as a retryable 500 with a generic message.
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrCorruptRecord):
		logger.ErrorContext(r.Context(), "corrupt record", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrStorageWrite):
		logger.ErrorContext(r.Context(), "storage write failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "temporary storage failure, please retry")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

type InvitationController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService) *InvitationController {
	return &InvitationController{
		Logger:  logger,
		Service: svc,
	}
}

// InvitationRequest is the request body for POST /invitations and PUT /invitations/{invitationID}.
type InvitationRequest struct {
	Event        domain.EventDetails `json:"event"`
	Presentation domain.Presentation `json:"presentation"`
}

// InvitationSuccessResponse is the success response envelope for invitation endpoints.
type InvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// CreateInvitation godoc
// @Summary Create an invitation
// @Description Creates a new event invitation and returns it with its generated share identifier.
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body controllers.InvitationRequest true "Event and presentation fields"
// @Success 201 {object} controllers.InvitationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations [post]
func (c *InvitationController) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req InvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.Service.Create(r.Context(), req.Event, req.Presentation)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, inv)
}

// GetInvitation godoc
// @Summary Get an invitation
// @Tags invitations
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {object} controllers.InvitationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID} [get]
func (c *InvitationController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	inv, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// UpdateInvitation godoc
// @Summary Update an invitation
// @Description Overwrites the invitation's event and presentation fields. The identifier and creation time never change.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Param body body controllers.InvitationRequest true "Event and presentation fields"
// @Success 200 {object} controllers.InvitationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID} [put]
func (c *InvitationController) UpdateInvitation(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	var req InvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.Service.Update(r.Context(), id, req.Event, req.Presentation)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// PublicInvitationView is the payload for the guest-facing invitation page:
// the invitation plus a freshly computed RSVP summary.
type PublicInvitationView struct {
	Invitation *domain.Invitation `json:"invitation"`
	Summary    domain.Summary     `json:"summary"`
}

// PublicInvitationSuccessResponse is the success response envelope for GET /public/invitations/{invitationID}.
type PublicInvitationSuccessResponse struct {
	Data  *PublicInvitationView `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// GetPublicInvitation godoc
// @Summary Get the public view of an invitation
// @Description Returns the invitation and the current RSVP summary. This is the only read the guest page needs; the share link carries nothing but the identifier.
// @Tags public
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {object} controllers.PublicInvitationSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /public/invitations/{invitationID} [get]
func (c *InvitationController) GetPublicInvitation(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	inv, summary, err := c.Service.PublicView(r.Context(), id)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &PublicInvitationView{Invitation: inv, Summary: summary})
}
