package response

import (
	"time"

	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CheckoutResponse struct {
	SessionID  string `json:"session_id"`
	SessionURL string `json:"session_url"`
	PriceCents int64  `json:"price_cents"`
}

func FromCheckoutIntent(intent *commands.CheckoutIntent) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID:  intent.SessionID,
		SessionURL: intent.SessionURL,
		PriceCents: intent.PriceCents,
	}
}

type BookingResultResponse struct {
	Outcome       string     `json:"outcome"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	StationID     *uuid.UUID `json:"station_id,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	PriceCents    int64      `json:"price_cents,omitempty"`
}

func FromBookingResult(result *commands.BookingResult) *BookingResultResponse {
	resp := &BookingResultResponse{Outcome: string(result.Outcome)}
	if result.Outcome != commands.BookingSucceeded {
		return resp
	}
	resp.ReservationID = &result.ReservationID
	resp.StationID = &result.StationID
	resp.StartTime = &result.StartTime
	resp.EndTime = &result.EndTime
	resp.PriceCents = result.PriceCents
	return resp
}

type ReservationListResponse struct {
	ID          uuid.UUID `json:"id"`
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromReservationListItem(rm *queries.ReservationListItem) (*ReservationListResponse, error) {
	var resp ReservationListResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
