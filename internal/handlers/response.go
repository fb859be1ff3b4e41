package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/logger"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/sbilibin2017/gw-agent-wallet/internal/policy"
	"github.com/shopspring/decimal"
)

// Response is the envelope of every JSON reply.
// swagger:model Response
type Response struct {
	// Whether the request succeeded
	Success bool `json:"success"`

	// Payload
	Data any `json:"data,omitempty"`

	// Human readable status or error message
	Message string `json:"message,omitempty"`
}

// ListResponse is the envelope of paginated replies.
// swagger:model ListResponse
type ListResponse struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Count      int        `json:"count"`
	Total      int        `json:"total"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the returned page.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ErrorResponse is returned for every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`

	// Error message
	// default: Server error
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{Success: true, Data: data, Message: message})
}

func writeList(w http.ResponseWriter, data any, count, total int, page models.Page) {
	writeJSON(w, http.StatusOK, ListResponse{
		Success: true,
		Data:    data,
		Count:   count,
		Total:   total,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages(total),
		},
	})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, models.ErrDuplicateClaim),
		errors.Is(err, models.ErrInvalidBookingState),
		errors.Is(err, models.ErrInvalidStateTransition),
		errors.Is(err, models.ErrInvalidOwner),
		errors.Is(err, models.ErrUserAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnauthorized),
		errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError replies with the status of err. Unexpected errors are logged
// and replaced by a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, status, ErrorResponse{Message: "Server error"})
		return
	}
	writeJSON(w, status, ErrorResponse{Message: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", models.ErrValidation)
	}
	return nil
}

func actorFrom(r *http.Request) (policy.Actor, error) {
	actor, ok := policy.ActorFromContext(r.Context())
	if !ok {
		return policy.Actor{}, models.ErrUnauthorized
	}
	return actor, nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a valid id", models.ErrValidation, name)
	}
	return id, nil
}

func optionalUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a valid id", models.ErrValidation, name)
	}
	return &id, nil
}

func optionalDecimal(r *http.Request, name string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", models.ErrValidation, name)
	}
	return &d, nil
}

// parsePage reads ?page= and ?limit=, applying defaults.
func parsePage(r *http.Request) (models.Page, error) {
	var p models.Page
	q := r.URL.Query()
	for name, dst := range map[string]*int{"page": &p.Page, "limit": &p.Limit} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return models.Page{}, fmt.Errorf("%w: %s must be a positive integer", models.ErrValidation, name)
		}
		*dst = n
	}
	if p.Page > models.MaxPage {
		return models.Page{}, fmt.Errorf("%w: page must not exceed %d", models.ErrValidation, models.MaxPage)
	}
	return p.Normalize(), nil
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
