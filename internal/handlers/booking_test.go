package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBookingStatusHandler(t *testing.T) {
	id := uuid.New()
	params := map[string]string{"id": id.String()}

	tests := []struct {
		name           string
		body           any
		setup          func(m *MockBookingStatusChanger)
		expectedStatus int
	}{
		{
			name: "moved forward",
			body: StatusRequest{Status: "Booked"},
			setup: func(m *MockBookingStatusChanger) {
				m.EXPECT().TransitionStatus(gomock.Any(), id, models.BookingBooked).
					Return(&models.Booking{ID: id, BookingStatus: models.BookingBooked}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "gate refuses",
			body: StatusRequest{Status: "completed"},
			setup: func(m *MockBookingStatusChanger) {
				m.EXPECT().TransitionStatus(gomock.Any(), id, models.BookingCompleted).
					Return(nil, models.ErrInvalidStateTransition)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown booking",
			body: StatusRequest{Status: "processing"},
			setup: func(m *MockBookingStatusChanger) {
				m.EXPECT().TransitionStatus(gomock.Any(), id, gomock.Any()).Return(nil, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockBookingStatusChanger(ctrl)
			tt.setup(svc)

			rr := httptest.NewRecorder()
			NewBookingStatusHandler(svc).ServeHTTP(rr, newRequest(t, http.MethodPut, "/", tt.body, nil, params))

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestPaymentStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	svc := NewMockPaymentStatusSetter(ctrl)
	svc.EXPECT().SetPaymentStatus(gomock.Any(), id, models.PaymentRefunded).
		Return(&models.Booking{ID: id, PaymentStatus: models.PaymentRefunded}, nil)

	rr := httptest.NewRecorder()
	req := newRequest(t, http.MethodPut, "/", StatusRequest{Status: "refunded"}, nil, map[string]string{"id": id.String()})
	NewPaymentStatusHandler(svc).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	req = newRequest(t, http.MethodPut, "/", StatusRequest{Status: "paid"}, nil, map[string]string{"id": "nope"})
	NewPaymentStatusHandler(svc).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
