package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

//go:generate mockgen -source=booking.go -destination=mock_booking.go -package=handlers

// BookingStatusChanger moves a booking through its lifecycle.
type BookingStatusChanger interface {
	TransitionStatus(ctx context.Context, id uuid.UUID, next models.BookingStatus) (*models.Booking, error)
}

// PaymentStatusSetter overrides a booking's payment status.
type PaymentStatusSetter interface {
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) (*models.Booking, error)
}

// StatusRequest represents the JSON body of a status change
// swagger:model StatusRequest
type StatusRequest struct {
	// required: true
	Status string `json:"status"`
}

// NewBookingStatusHandler changes a booking's status.
// @Summary Change booking status
// @Description One step forward at a time; cancelled is allowed from any open status. Entering booked requires a seller.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body handlers.StatusRequest true "Next status"
// @Success 200 {object} handlers.Response{data=models.Booking}
// @Failure 400 {object} handlers.ErrorResponse "Transition not allowed"
// @Failure 404 {object} handlers.ErrorResponse
// @Router /bookings/{id}/status [put]
// @Security BearerAuth
func NewBookingStatusHandler(svc BookingStatusChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var req StatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		booking, err := svc.TransitionStatus(r.Context(), id, models.BookingStatus(strings.ToLower(strings.TrimSpace(req.Status))))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, booking, "")
	}
}

// NewPaymentStatusHandler overrides a booking's payment status.
// @Summary Set payment status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body handlers.StatusRequest true "unpaid, partially_paid, paid or refunded"
// @Success 200 {object} handlers.Response{data=models.Booking}
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /bookings/{id}/payment-status [put]
// @Security BearerAuth
func NewPaymentStatusHandler(svc PaymentStatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}
		var req StatusRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		booking, err := svc.SetPaymentStatus(r.Context(), id, models.PaymentStatus(strings.ToLower(strings.TrimSpace(req.Status))))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeData(w, http.StatusOK, booking, "")
	}
}
