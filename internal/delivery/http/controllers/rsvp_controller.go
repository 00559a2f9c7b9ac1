package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// SubmitRSVPRequest is the request body for POST /api/rsvp.
//
// selections is either event ID -> member -> status, or member -> status together with
// invited_days. Status "attending" counts as attending; any other value does not.
type SubmitRSVPRequest struct {
	FamilyID    string                     `json:"family_id" example:"FAMILY_001"`
	FamilyName  string                     `json:"family_name" example:"Shah"`
	Selections  map[string]json.RawMessage `json:"selections" swaggertype:"object"`
	InvitedDays []string                   `json:"invited_days,omitempty"`
}

// Validate implements Validator.
func (req SubmitRSVPRequest) Validate() []string {
	if strings.TrimSpace(req.FamilyID) == "" || req.Selections == nil {
		return []string{"Family ID and selections are required"}
	}
	return nil
}

// toSubmission sorts selections into per-event objects and per-member statuses.
func (req SubmitRSVPRequest) toSubmission() (*domain.RSVPSubmission, error) {
	sub := &domain.RSVPSubmission{
		FamilyID:         req.FamilyID,
		FamilyName:       req.FamilyName,
		EventSelections:  make(map[string]map[string]string),
		MemberSelections: make(map[string]string),
		InvitedDays:      req.InvitedDays,
	}
	for key, raw := range req.Selections {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			sub.MemberSelections[key] = memberStatus(raw)
			continue
		}
		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return nil, fmt.Errorf("selections.%s is not a valid object", key)
		}
		statuses := make(map[string]string, len(members))
		for name, v := range members {
			statuses[name] = memberStatus(v)
		}
		sub.EventSelections[key] = statuses
	}
	return sub, nil
}

// memberStatus returns a JSON string's value and "" for any other JSON value.
func memberStatus(raw json.RawMessage) string {
	var status string
	if err := json.Unmarshal(raw, &status); err != nil {
		return ""
	}
	return status
}

// SubmitRSVPSuccessResponse is the success response envelope for POST /api/rsvp (200).
type SubmitRSVPSuccessResponse struct {
	Success bool               `json:"success"`
	Data    *domain.RSVPResult `json:"data"`
	Error   *helpers.APIError  `json:"error"`
}

// GetInvitationSuccessResponse is the success response envelope for GET /api/rsvp (200).
type GetInvitationSuccessResponse struct {
	Success bool               `json:"success"`
	Data    *domain.Invitation `json:"data"`
	Error   *helpers.APIError  `json:"error"`
}

type RSVPController struct {
	Logger      *slog.Logger
	Service     domain.RSVPService
	Invitations domain.InvitationService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService, invitations domain.InvitationService) *RSVPController {
	return &RSVPController{
		Logger:      logger,
		Service:     svc,
		Invitations: invitations,
	}
}

// Submit godoc
// @Summary Submit an RSVP
// @Description Records a family's attendance decisions. One row is appended per event (per_event schema) or per member and invited day (per_member_day schema). Members or events without a decision produce no rows.
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body SubmitRSVPRequest true "RSVP submission"
// @Success 200 {object} controllers.SubmitRSVPSuccessResponse "data contains the number of rows written"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp [post]
func (c *RSVPController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sub, err := req.toSubmission()
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	res, err := c.Service.Submit(r.Context(), sub)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to process RSVP")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

// GetInvitation godoc
// @Summary Get a family's invitation
// @Description Returns the family, its invited events and days, site settings and whether the family has already responded.
// @Tags rsvp
// @Produce json
// @Param id query string true "Family ID"
// @Success 200 {object} controllers.GetInvitationSuccessResponse "data contains the invitation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp [get]
func (c *RSVPController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	id := helpers.QueryString(r, "id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	inv, err := c.Invitations.GetInvitation(r.Context(), id)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to load invitation")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// QRCode godoc
// @Summary QR code of a family's RSVP link
// @Tags rsvp
// @Produce png
// @Param id query string true "Family ID"
// @Param size query int false "Image size in pixels (default 256, max 1024)"
// @Success 200 {file} binary
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/rsvp/qr [get]
func (c *RSVPController) QRCode(w http.ResponseWriter, r *http.Request) {
	id := helpers.QueryString(r, "id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	// 0 lets the service pick its default size.
	size := helpers.QueryInt(r, "size", 0, 1, math.MaxInt)
	png, err := c.Invitations.QRCode(id, size)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to render QR code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
