package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"voltshare-booking/internal/domain/booking"
	"voltshare-booking/internal/infra"
	"voltshare-booking/internal/pkg/clock"
	"voltshare-booking/internal/pkg/config"
	"voltshare-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStationNotFound       = errs.New("station not found")
	ErrValidation            = errs.New("invalid booking selection")
	ErrSlotConflict          = errs.New("time slot already reserved")
	ErrStagingFailed         = errs.New("failed to stage booking intent")
	ErrPaymentSession        = errs.New("payment session could not be created")
	ErrIncompleteBookingData = errs.New("incomplete booking data")
	ErrReservationPersist    = errs.New("reservation could not be persisted")
)

type BookingOutcome string

const (
	BookingSucceeded BookingOutcome = "success"
	BookingCancelled BookingOutcome = "cancelled"
)

type BeginCheckoutParams struct {
	StationID uuid.UUID
	UserID    uuid.UUID
	CarID     uuid.UUID
	Start     time.Time
	End       time.Time
}

// CheckoutIntent is handed back to the caller so it can drive the rider
// through the external payment session.
type CheckoutIntent struct {
	SessionID  string
	SessionURL string
	PriceCents int64
}

type BookingResult struct {
	Outcome       BookingOutcome
	ReservationID uuid.UUID
	StationID     uuid.UUID
	StartTime     time.Time
	EndTime       time.Time
	PriceCents    int64
}

type BookingCommands interface {
	// BeginCheckout prices the committed range, stages the intent and opens
	// a payment session (orchestration steps 1-3).
	BeginCheckout(ctx context.Context, params BeginCheckoutParams) (*CheckoutIntent, error)
	// CompleteBooking consumes the staged intent once the payment session
	// resolved (steps 4-8). The staged intent is cleared on every path.
	CompleteBooking(ctx context.Context, userID uuid.UUID, outcome PaymentOutcome) (*BookingResult, error)
	// Execute runs the whole sequence in one call, blocking on the payment
	// gateway's authenticated session between the two halves.
	Execute(ctx context.Context, params BeginCheckoutParams) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	stationRepo     StationRepository
	userRepo        UserRepository
	reservationRepo ReservationRepository
	gateway         PaymentGateway
	staging         TransientStore
	refresher       CacheRefresher
	calculator      booking.PriceCalculator
	clock           clock.Clock
	stagingTTL      time.Duration
}

func NewBookingCommands(
	stationRepo StationRepository,
	userRepo UserRepository,
	reservationRepo ReservationRepository,
	gateway PaymentGateway,
	staging TransientStore,
	refresher CacheRefresher,
	calculator booking.PriceCalculator,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		stationRepo:     stationRepo,
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		gateway:         gateway,
		staging:         staging,
		refresher:       refresher,
		calculator:      calculator,
		clock:           clk,
		stagingTTL:      cfg.Booking.StagingTTL,
	}
}

// stagedIntent is the serialized form of a booking intent parked in the
// transient store while the rider is off in the payment session.
type stagedIntent struct {
	StationID   uuid.UUID `json:"station_id"`
	StationName string    `json:"station_name"`
	UserID      uuid.UUID `json:"user_id"`
	CarID       uuid.UUID `json:"car_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	PriceCents  int64     `json:"price_cents"`
	SessionID   string    `json:"session_id,omitempty"`
}

func stagingKey(userID uuid.UUID) string {
	return "booking:intent:" + userID.String()
}

// stagedIntentFrom flattens a validated domain intent into its
// transient-store form.
func stagedIntentFrom(intent *booking.Intent, stationName string) stagedIntent {
	return stagedIntent{
		StationID:   intent.StationID(),
		StationName: stationName,
		UserID:      intent.UserID(),
		CarID:       intent.CarID(),
		Start:       intent.Range().Start(),
		End:         intent.Range().ReservationEnd(),
		PriceCents:  intent.Price().Cents(),
	}
}

func (b *bookingCommandsImpl) BeginCheckout(ctx context.Context, params BeginCheckoutParams) (*CheckoutIntent, error) {
	rng, err := booking.NewRange(params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if rng.Start().Before(b.clock.Now()) {
		return nil, errs.Mark(errs.New("range starts in the past"), ErrValidation)
	}

	stationSnap, err := b.stationRepo.FindByID(ctx, params.StationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, errs.Wrap(err, "failed to load station")
	}

	// Hand-off validation against the reservation snapshot. The selection
	// itself never revalidates; this is the single pre-payment check.
	for _, r := range stationSnap.Reservations {
		if r.Overlaps(rng.Start(), rng.ReservationEnd()) {
			return nil, ErrSlotConflict
		}
	}

	userSnap, err := b.userRepo.FindByID(ctx, params.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteBookingData)
	}

	carID, err := resolveCar(userSnap, params.CarID)
	if err != nil {
		return nil, err
	}

	price := b.calculator.Calculate(stationSnap.HourlyRateCents, rng)

	intent, err := booking.NewIntent(stationSnap.ID, params.UserID, carID, rng, price)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteBookingData)
	}

	staged := stagedIntentFrom(intent, stationSnap.Name)
	payload, err := json.Marshal(staged)
	if err != nil {
		return nil, errs.Mark(err, ErrStagingFailed)
	}
	if err := b.staging.Set(ctx, stagingKey(params.UserID), payload, b.stagingTTL); err != nil {
		return nil, errs.Mark(err, ErrStagingFailed)
	}

	session, err := b.gateway.CreateCheckoutSession(ctx, CheckoutSessionParams{
		UserEmail:   userSnap.Email,
		ProductName: stationSnap.Name,
		AmountCents: price.Cents(),
	})
	if err != nil || session == nil || session.URL == "" {
		b.clearStaged(ctx, params.UserID)
		return nil, errs.Mark(err, ErrPaymentSession)
	}

	staged.SessionID = session.ID
	if payload, err = json.Marshal(staged); err == nil {
		if err := b.staging.Set(ctx, stagingKey(params.UserID), payload, b.stagingTTL); err != nil {
			slog.Warn("failed to attach session id to staged intent", "error", err.Error())
		}
	}

	return &CheckoutIntent{
		SessionID:  session.ID,
		SessionURL: session.URL,
		PriceCents: price.Cents(),
	}, nil
}

func (b *bookingCommandsImpl) CompleteBooking(ctx context.Context, userID uuid.UUID, outcome PaymentOutcome) (*BookingResult, error) {
	// Staged intent is cleared exactly once, whatever happens below.
	defer b.clearStaged(ctx, userID)

	if outcome != OutcomeSuccess {
		// Cancel and dismiss both abort silently: no reservation, no error.
		return &BookingResult{Outcome: BookingCancelled}, nil
	}

	staged, err := b.loadStaged(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteBookingData)
	}

	userSnap, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteBookingData)
	}

	carID, err := resolveCar(userSnap, staged.CarID)
	if err != nil {
		return nil, err
	}
	if staged.StationID == uuid.Nil || staged.Start.IsZero() || staged.End.IsZero() {
		return nil, ErrIncompleteBookingData
	}

	// Fresh overlap re-check right before persistence. The availability
	// snapshot the rider selected against may be minutes old; a concurrent
	// booking in that window must not slip through.
	overlapping, err := b.reservationRepo.CountOverlapping(ctx, staged.StationID, staged.Start, staged.End)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationPersist)
	}
	if overlapping > 0 {
		return nil, ErrSlotConflict
	}

	reservationID, err := b.reservationRepo.Create(ctx, NewReservationRecord{
		StationID:  staged.StationID,
		UserID:     userID,
		CarID:      carID,
		BookedAt:   b.clock.Now(),
		StartTime:  staged.Start,
		EndTime:    staged.End,
		PriceCents: staged.PriceCents,
	})
	if err != nil {
		// The create call is issued at most once per attempt: retrying here
		// could double-book, so the failure is terminal.
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrReservationPersist)
	}

	// Refresh failures never undo a created reservation; they are warnings.
	if err := b.refresher.RefreshUserData(ctx, userID); err != nil {
		slog.Warn("post-booking user cache refresh failed", "user_id", userID, "error", err.Error())
	}
	if err := b.refresher.RefreshStationData(ctx, staged.StationID); err != nil {
		slog.Warn("post-booking station cache refresh failed", "station_id", staged.StationID, "error", err.Error())
	}

	return &BookingResult{
		Outcome:       BookingSucceeded,
		ReservationID: reservationID,
		StationID:     staged.StationID,
		StartTime:     staged.Start,
		EndTime:       staged.End,
		PriceCents:    staged.PriceCents,
	}, nil
}

func (b *bookingCommandsImpl) Execute(ctx context.Context, params BeginCheckoutParams) (*BookingResult, error) {
	intent, err := b.BeginCheckout(ctx, params)
	if err != nil {
		return nil, err
	}

	outcome, err := b.gateway.OpenAuthenticatedSession(ctx, CheckoutSession{ID: intent.SessionID, URL: intent.SessionURL})
	if err != nil {
		// A session that cannot report an outcome is indistinguishable from
		// the rider walking away; abort like a dismissal.
		slog.Warn("payment session did not resolve", "error", err.Error())
		outcome = OutcomeDismiss
	}

	return b.CompleteBooking(ctx, params.UserID, outcome)
}

func (b *bookingCommandsImpl) loadStaged(ctx context.Context, userID uuid.UUID) (*stagedIntent, error) {
	payload, err := b.staging.Get(ctx, stagingKey(userID))
	if err != nil {
		return nil, err
	}
	var staged stagedIntent
	if err := json.Unmarshal(payload, &staged); err != nil {
		return nil, err
	}
	return &staged, nil
}

func (b *bookingCommandsImpl) clearStaged(ctx context.Context, userID uuid.UUID) {
	if err := b.staging.Delete(ctx, stagingKey(userID)); err != nil {
		slog.Warn("failed to clear staged booking intent", "user_id", userID, "error", err.Error())
	}
}

func resolveCar(user *UserSnapshot, stagedCarID uuid.UUID) (uuid.UUID, error) {
	if len(user.Cars) == 0 {
		return uuid.Nil, ErrIncompleteBookingData
	}
	if stagedCarID == uuid.Nil {
		return user.Cars[0].ID, nil
	}
	for _, car := range user.Cars {
		if car.ID == stagedCarID {
			return car.ID, nil
		}
	}
	return uuid.Nil, ErrIncompleteBookingData
}
