//go:build unit || e2e

package builder

import (
	"time"

	reqdto "voltshare-booking/internal/handler/dto/request"
	"voltshare-booking/internal/usecase/commands"
	"voltshare-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	StationID       uuid.UUID
	StationName     string
	HourlyRateCents int64
	UserID          uuid.UUID
	UserEmail       string
	CarID           uuid.UUID
	Start           time.Time
	End             time.Time
}

func NewBookingBuilder() *BookingBuilder {
	tomorrow := time.Now().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.Local)
	return &BookingBuilder{
		StationID:       uuid.New(),
		StationName:     "Hauptbahnhof Charger 3",
		HourlyRateCents: 500,
		UserID:          uuid.New(),
		UserEmail:       "rider@example.com",
		CarID:           uuid.New(),
		Start:           start,
		End:             start.Add(2 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildCheckoutParams() commands.BeginCheckoutParams {
	return commands.BeginCheckoutParams{
		StationID: b.StationID,
		UserID:    b.UserID,
		CarID:     b.CarID,
		Start:     b.Start,
		End:       b.End,
	}
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	carID := b.CarID
	return reqdto.CheckoutRequest{
		StationID: b.StationID,
		CarID:     &carID,
		StartTime: b.Start,
		EndTime:   b.End,
	}
}

func (b *BookingBuilder) BuildStationSnapshot() *commands.StationSnapshot {
	return &commands.StationSnapshot{
		ID:              b.StationID,
		Name:            b.StationName,
		Address:         "Europaplatz 1, Berlin",
		HourlyRateCents: b.HourlyRateCents,
		PowerKW:         22,
	}
}

func (b *BookingBuilder) BuildUserSnapshot() *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:    b.UserID,
		Email: b.UserEmail,
		Cars: []commands.CarSnapshot{
			{ID: b.CarID, Model: "ID.3", Plate: "B-EV 1234"},
		},
	}
}

func (b *BookingBuilder) BuildReservationList() []*queries.ReservationListItem {
	return []*queries.ReservationListItem{
		{
			ID:          uuid.New(),
			StationID:   b.StationID,
			StationName: b.StationName,
			StartTime:   b.Start,
			EndTime:     b.End.Add(time.Hour),
			PriceCents:  1800,
			CreatedAt:   time.Now(),
		},
	}
}

func (b *BookingBuilder) BuildCheckoutSession() *commands.CheckoutSession {
	return &commands.CheckoutSession{
		ID:  "cs_test_" + uuid.NewString(),
		URL: "https://checkout.stripe.com/c/pay/cs_test",
	}
}
