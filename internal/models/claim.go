package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClaimStatus is the lifecycle state of a payment claim.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// Terminal reports whether no further transition is possible.
func (s ClaimStatus) Terminal() bool {
	return s == ClaimApproved || s == ClaimRejected
}

// Valid reports whether s is a known status.
func (s ClaimStatus) Valid() bool {
	return s == ClaimPending || s.Terminal()
}

// Decision is a reviewer's verdict on a pending claim.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ParseDecision accepts both the verb ("approve") and the resulting status ("approved").
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approve", "approved":
		return DecisionApprove, nil
	case "reject", "rejected":
		return DecisionReject, nil
	}
	return "", fmt.Errorf("%w: status must be approved or rejected", ErrValidation)
}

// Status is the claim status a decision leads to.
func (d Decision) Status() ClaimStatus {
	if d == DecisionApprove {
		return ClaimApproved
	}
	return ClaimRejected
}

// Claim is an agent's request to be paid for a confirmed booking.
// ClaimedAmount is fixed at creation as Amount / RateOfExchange.
type Claim struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	BookingID       uuid.UUID       `json:"bookingId" db:"booking_id"`
	AgentID         uuid.UUID       `json:"agentId" db:"agent_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Currency        string          `json:"currency" db:"currency"`
	RateOfExchange  decimal.Decimal `json:"rateOfExchange" db:"rate_of_exchange"`
	ClaimedAmount   decimal.Decimal `json:"claimedAmount" db:"claimed_amount"`
	LeadPaxName     string          `json:"leadPaxName" db:"lead_pax_name"`
	TravelDate      time.Time       `json:"travelDate" db:"travel_date"`
	Notes           string          `json:"notes" db:"notes"`
	Status          ClaimStatus     `json:"status" db:"status"`
	TransactionID   string          `json:"transactionId" db:"transaction_id"`
	ClaimDate       time.Time       `json:"claimDate" db:"claim_date"`
	SettledAt       *time.Time      `json:"settledAt,omitempty" db:"settled_at"`
	RejectionReason *string         `json:"rejectionReason,omitempty" db:"rejection_reason"`
	ReviewedBy      *uuid.UUID      `json:"reviewedBy,omitempty" db:"reviewed_by"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// ClaimInput carries the fields an agent submits.
type ClaimInput struct {
	BookingID      uuid.UUID        `json:"bookingId"`
	AgentID        uuid.UUID        `json:"agentId"`
	Amount         decimal.Decimal  `json:"amount"`
	Currency       string           `json:"currency"`
	RateOfExchange *decimal.Decimal `json:"rateOfExchange,omitempty"`
	LeadPaxName    string           `json:"leadPaxName"`
	TravelDate     time.Time        `json:"travelDate"`
	Notes          string           `json:"notes"`
}

func notNilUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("is required")
	}
	return nil
}

// Validate checks the submitted fields.
func (in ClaimInput) Validate() error {
	return validationError(validation.ValidateStruct(&in,
		validation.Field(&in.BookingID, validation.By(notNilUUID)),
		validation.Field(&in.AgentID, validation.By(notNilUUID)),
		validation.Field(&in.Amount, validation.By(positiveDecimal), validation.By(maxScale(AmountScale))),
		validation.Field(&in.Currency, validation.Required, validation.Match(currencyCode).Error("must be a 3-letter ISO code")),
		validation.Field(&in.RateOfExchange, validation.By(positiveDecimal), validation.By(maxScale(RateScale))),
		validation.Field(&in.LeadPaxName, validation.By(notBlank)),
		validation.Field(&in.TravelDate, validation.Required),
	))
}

// NewClaim validates in and returns a pending claim with its converted amount
// rounded to precision decimal places.
func NewClaim(in ClaimInput, precision int32, now time.Time) (*Claim, error) {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Claim{
		ID:             uuid.New(),
		BookingID:      in.BookingID,
		AgentID:        in.AgentID,
		Amount:         in.Amount,
		Currency:       in.Currency,
		RateOfExchange: *in.RateOfExchange,
		ClaimedAmount:  ConvertClaimAmount(in.Amount, *in.RateOfExchange, precision),
		LeadPaxName:    strings.TrimSpace(in.LeadPaxName),
		TravelDate:     in.TravelDate,
		Notes:          strings.TrimSpace(in.Notes),
		Status:         ClaimPending,
		TransactionID:  NewClaimTransactionID(now),
		ClaimDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ConvertClaimAmount returns amount / rate rounded half away from zero.
func ConvertClaimAmount(amount, rate decimal.Decimal, precision int32) decimal.Decimal {
	return amount.DivRound(rate, precision)
}

// NewClaimTransactionID returns a human readable identifier such as CLM-20261017-1A2B3C4D.
func NewClaimTransactionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CLM-%s-%s", now.UTC().Format("20060102"), suffix)
}

// Approve moves a pending claim to approved.
func (c *Claim) Approve(reviewerID uuid.UUID, now time.Time) error {
	if c.Status != ClaimPending {
		return fmt.Errorf("%w: claim is %s", ErrInvalidStateTransition, c.Status)
	}
	c.Status = ClaimApproved
	c.SettledAt = &now
	c.ReviewedBy = &reviewerID
	c.UpdatedAt = now
	return nil
}

// Reject moves a pending claim to rejected. A reason is mandatory.
func (c *Claim) Reject(reviewerID uuid.UUID, reason string, now time.Time) error {
	if c.Status != ClaimPending {
		return fmt.Errorf("%w: claim is %s", ErrInvalidStateTransition, c.Status)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: rejectionReason is required", ErrValidation)
	}
	c.Status = ClaimRejected
	c.RejectionReason = &reason
	c.ReviewedBy = &reviewerID
	c.UpdatedAt = now
	return nil
}

// ClaimFilter narrows ListAllClaims. Zero values are ignored.
type ClaimFilter struct {
	Status    ClaimStatus
	AgentID   *uuid.UUID
	BookingID *uuid.UUID
	Currency  string
	Page
}
