package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/sbilibin2017/gw-agent-wallet/internal/policy"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=claim.go -destination=mock_claim.go -package=handlers

// ClaimSubmitter records a new claim.
type ClaimSubmitter interface {
	SubmitClaim(ctx context.Context, in models.ClaimInput) (*models.Claim, error)
}

// AgentClaimLister lists the caller's claims.
type AgentClaimLister interface {
	ListClaimsForAgent(ctx context.Context, agentID uuid.UUID, bookingID *uuid.UUID) ([]models.Claim, error)
}

// ClaimLister lists all claims for reviewers.
type ClaimLister interface {
	ListAllClaims(ctx context.Context, filter models.ClaimFilter) ([]models.Claim, int, error)
}

// ClaimGetter returns one claim the actor may see.
type ClaimGetter interface {
	GetClaim(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Claim, error)
}

// ClaimDecider approves or rejects a claim.
type ClaimDecider interface {
	Decide(ctx context.Context, claimID uuid.UUID, decision models.Decision, reviewerID uuid.UUID, rejectionReason string) (*models.Claim, error)
}

// ClaimRequest represents the JSON body of a claim submission
// swagger:model ClaimRequest
type ClaimRequest struct {
	// required: true
	BookingID uuid.UUID `json:"bookingId"`

	// Amount paid, in Currency
	// required: true
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`

	// ISO 4217 code
	// required: true
	// default: EUR
	Currency string `json:"currency"`

	// Units of Currency per settlement unit. Resolved from the rate service when omitted.
	RateOfExchange *decimal.Decimal `json:"rateOfExchange,omitempty" swaggertype:"number"`

	// required: true
	LeadPaxName string `json:"leadPaxName"`

	// YYYY-MM-DD or RFC 3339
	// required: true
	TravelDate string `json:"travelDate"`

	Notes string `json:"notes"`
}

// DecisionRequest represents the JSON body of a claim review
// swagger:model DecisionRequest
type DecisionRequest struct {
	// approved or rejected
	// required: true
	Status string `json:"status"`

	// Required when rejecting
	RejectionReason string `json:"rejectionReason"`
}

// NewSubmitClaimHandler records a payment claim for a confirmed booking.
// @Summary Submit claim
// @Description Records a pending claim. claimedAmount = amount / rateOfExchange.
// @Tags claims
// @Accept json
// @Produce json
// @Param request body handlers.ClaimRequest true "Claim"
// @Success 201 {object} handlers.Response{data=models.Claim}
// @Failure 400 {object} handlers.ErrorResponse "Invalid claim, booking not confirmed or duplicate claim"
// @Failure 404 {object} handlers.ErrorResponse "Booking not found"
// @Router /claims [post]
// @Security BearerAuth
func NewSubmitClaimHandler(svc ClaimSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req ClaimRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		travelDate, err := parseDate(req.TravelDate)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: travelDate must be a date", models.ErrValidation))
			return
		}

		claim, err := svc.SubmitClaim(r.Context(), models.ClaimInput{
			BookingID:      req.BookingID,
			AgentID:        actor.UserID,
			Amount:         req.Amount,
			Currency:       req.Currency,
			RateOfExchange: req.RateOfExchange,
			LeadPaxName:    req.LeadPaxName,
			TravelDate:     travelDate,
			Notes:          req.Notes,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusCreated, claim, "Claim submitted")
	}
}

// NewMyClaimsHandler lists the calling agent's claims.
// @Summary My claims
// @Tags claims
// @Produce json
// @Param booking query string false "Booking id"
// @Success 200 {object} handlers.ListResponse{data=[]models.Claim}
// @Router /claims/my-claims [get]
// @Security BearerAuth
func NewMyClaimsHandler(svc AgentClaimLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		bookingID, err := optionalUUID(r, "booking")
		if err != nil {
			writeError(w, r, err)
			return
		}

		claims, err := svc.ListClaimsForAgent(r.Context(), actor.UserID, bookingID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		n := len(claims)
		writeList(w, claims, n, n, models.Page{Page: 1, Limit: n})
	}
}

// NewListClaimsHandler lists claims for reviewers.
// @Summary List claims
// @Tags claims
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Param agentId query string false "Agent id"
// @Param bookingId query string false "Booking id"
// @Param currency query string false "Currency code"
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size"
// @Success 200 {object} handlers.ListResponse{data=[]models.Claim}
// @Failure 400 {object} handlers.ErrorResponse
// @Router /claims [get]
// @Security BearerAuth
func NewListClaimsHandler(svc ClaimLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := parsePage(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		agentID, err := optionalUUID(r, "agentId")
		if err != nil {
			writeError(w, r, err)
			return
		}
		bookingID, err := optionalUUID(r, "bookingId")
		if err != nil {
			writeError(w, r, err)
			return
		}

		q := r.URL.Query()
		claims, total, err := svc.ListAllClaims(r.Context(), models.ClaimFilter{
			Status:    models.ClaimStatus(strings.ToLower(strings.TrimSpace(q.Get("status")))),
			AgentID:   agentID,
			BookingID: bookingID,
			Currency:  strings.TrimSpace(q.Get("currency")),
			Page:      page,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeList(w, claims, len(claims), total, page)
	}
}

// NewGetClaimHandler returns one claim.
// @Summary Get claim
// @Description Agents may only read their own claims
// @Tags claims
// @Produce json
// @Param id path string true "Claim id"
// @Success 200 {object} handlers.Response{data=models.Claim}
// @Failure 403 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /claims/{id} [get]
// @Security BearerAuth
func NewGetClaimHandler(svc ClaimGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		claim, err := svc.GetClaim(r.Context(), actor, id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, claim, "")
	}
}

// NewDecideClaimHandler approves or rejects a pending claim.
// @Summary Decide claim
// @Description Approval credits the agent wallet and marks the booking paid in one transaction. Repeating a recorded decision is a no-op.
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim id"
// @Param request body handlers.DecisionRequest true "Decision"
// @Success 200 {object} handlers.Response{data=models.Claim}
// @Failure 400 {object} handlers.ErrorResponse "Invalid decision or claim already decided otherwise"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /claims/{id}/status [put]
// @Security BearerAuth
func NewDecideClaimHandler(svc ClaimDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFrom(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req DecisionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		decision, err := models.ParseDecision(req.Status)
		if err != nil {
			writeError(w, r, err)
			return
		}

		claim, err := svc.Decide(r.Context(), id, decision, actor.UserID, req.RejectionReason)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, claim, "Claim "+string(claim.Status))
	}
}
