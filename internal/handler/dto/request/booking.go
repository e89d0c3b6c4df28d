package request

import (
	"time"

	"voltshare-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	StationID uuid.UUID  `json:"station_id" binding:"required"`
	CarID     *uuid.UUID `json:"car_id,omitempty"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   time.Time  `json:"end_time" binding:"required"`
}

func (r CheckoutRequest) ToParams(userID uuid.UUID) commands.BeginCheckoutParams {
	params := commands.BeginCheckoutParams{
		StationID: r.StationID,
		UserID:    userID,
		Start:     r.StartTime,
		End:       r.EndTime,
	}
	if r.CarID != nil {
		params.CarID = *r.CarID
	}
	return params
}

type ConfirmRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=success cancel dismiss"`
}

func (r ConfirmRequest) ToOutcome() commands.PaymentOutcome {
	return commands.PaymentOutcome(r.Outcome)
}
