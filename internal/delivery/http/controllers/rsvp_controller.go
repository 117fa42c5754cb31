package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"invitebox/internal/delivery/http/helpers"
	"invitebox/internal/domain"
)

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// SubmitRSVPResponse pairs the stored record with the notification outcome.
// The notification status is informational; a failed delivery never fails the
// submission.
type SubmitRSVPResponse struct {
	RSVP         *domain.RSVP              `json:"rsvp"`
	Notification domain.NotificationResult `json:"notification"`
}

// SubmitRSVPSuccessResponse is the success response envelope for POST /public/invitations/{invitationID}/rsvps (201).
type SubmitRSVPSuccessResponse struct {
	Data  *SubmitRSVPResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SubmitRSVP godoc
// @Summary Submit a guest RSVP
// @Description Appends a new RSVP record for the invitation. A repeat submission from the same guest email creates a new record. The manager is notified by email best-effort.
// @Tags public
// @Accept json
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Param body body domain.NewRSVP true "Guest response"
// @Success 201 {object} controllers.SubmitRSVPSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /public/invitations/{invitationID}/rsvps [post]
func (c *RSVPController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	var req domain.NewRSVP
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	rec, notification, err := c.Service.Append(r.Context(), id, req)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, &SubmitRSVPResponse{RSVP: rec, Notification: notification})
}

// ListRSVPsResponse is the data payload for GET /invitations/{invitationID}/rsvps.
type ListRSVPsResponse struct {
	RSVPs      []*domain.RSVP         `json:"rsvps"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListRSVPs godoc
// @Summary List RSVPs for an invitation
// @Description Returns the invitation's RSVP records in submission order. Supports page and page_size query parameters.
// @Tags invitations
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 50, max 500)"
// @Success 200 {object} helpers.APIResponse "data: rsvps + pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/rsvps [get]
func (c *RSVPController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	records, err := c.Service.List(r.Context(), id)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}

	params := helpers.ParsePagination(r)
	total := len(records)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &ListRSVPsResponse{
		RSVPs:      records[start:end],
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// SummarySuccessResponse is the success response envelope for GET /invitations/{invitationID}/summary.
type SummarySuccessResponse struct {
	Data  *domain.Summary   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetSummary godoc
// @Summary Get RSVP summary for an invitation
// @Description Returns live counts derived from the invitation's RSVP records. The summary is recomputed on every read and never stored.
// @Tags invitations
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {object} controllers.SummarySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/summary [get]
func (c *RSVPController) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	summary, err := c.Service.Summary(r.Context(), id)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &summary)
}

// ExportRSVPs godoc
// @Summary Export RSVPs as CSV
// @Description Returns all RSVP records for the invitation as a downloadable CSV document.
// @Tags invitations
// @Produce text/csv
// @Param invitationID path string true "Invitation ID (UUID)"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/rsvps/export [get]
func (c *RSVPController) ExportRSVPs(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	data, err := c.Service.ExportCSV(r.Context(), id)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "rsvps_"+id+".csv"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// SendReminderRequest is the request body for POST /invitations/{invitationID}/reminders.
type SendReminderRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate implements helpers.Validator.
func (r *SendReminderRequest) Validate() []string {
	if strings.TrimSpace(r.Message) == "" {
		return []string{"message is required"}
	}
	return nil
}

// SendReminderSuccessResponse is the success response envelope for POST /invitations/{invitationID}/reminders.
type SendReminderSuccessResponse struct {
	Data  *domain.BatchNotificationResult `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// SendReminder godoc
// @Summary Send a reminder email to attending guests
// @Description Sends an individual reminder email to every guest who answered yes with an email address. Per-recipient failures are collected in the result and never abort the remaining sends.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitationID path string true "Invitation ID (UUID)"
// @Param body body controllers.SendReminderRequest true "Reminder subject and message"
// @Success 200 {object} controllers.SendReminderSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{invitationID}/reminders [post]
func (c *RSVPController) SendReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := invitationIDFromPath(w, r)
	if !ok {
		return
	}
	var req SendReminderRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Service.SendReminder(r.Context(), id, req.Subject, req.Message)
	if err != nil {
		writeDomainError(c.Logger, w, r, err, "invitation not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, &result)
}
