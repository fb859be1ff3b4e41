package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the operational lifecycle stage of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingProcessing BookingStatus = "processing"
	BookingBooked     BookingStatus = "booked"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

var bookingSequence = []BookingStatus{
	BookingPending,
	BookingProcessing,
	BookingBooked,
	BookingConfirmed,
	BookingCompleted,
}

// Valid reports whether s is a known status.
func (s BookingStatus) Valid() bool {
	return s == BookingCancelled || s.position() >= 0
}

// Terminal reports whether s accepts no further transitions.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Next returns the single forward step from s, if any.
func (s BookingStatus) Next() (BookingStatus, bool) {
	i := s.position()
	if i < 0 || i+1 >= len(bookingSequence) {
		return "", false
	}
	return bookingSequence[i+1], true
}

func (s BookingStatus) position() int {
	for i, st := range bookingSequence {
		if st == s {
			return i
		}
	}
	return -1
}

// PaymentStatus tracks settlement of a booking independently of its status.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentRefunded      PaymentStatus = "refunded"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnpaid, PaymentPartiallyPaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Seller is a supplier assigned to part of a booking.
type Seller struct {
	Seller   string   `json:"seller"`
	Services []string `json:"services"`
	Notes    string   `json:"notes"`
}

// Sellers is stored as a JSONB array.
type Sellers []Seller

// Value implements driver.Valuer.
func (s Sellers) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *Sellers) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = Sellers{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("sellers: unsupported source type")
}

// Booking is the subset of a booking the ledger consumes.
type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	AgentID       uuid.UUID     `json:"agentId" db:"agent_id"`
	BookingStatus BookingStatus `json:"bookingStatus" db:"booking_status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	Sellers       Sellers       `json:"sellers" db:"sellers"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
