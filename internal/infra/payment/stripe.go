package payment

import (
	"context"
	"time"

	"voltshare-booking/internal/pkg/config"
	"voltshare-booking/internal/pkg/errs"
	"voltshare-booking/internal/usecase/commands"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// pollInterval is how often an open checkout session is re-read while
// waiting for the rider to finish paying.
const pollInterval = 3 * time.Second

type StripeGateway struct {
	successURL string
	cancelURL  string
	currency   string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	stripe.Key = cfg.SecretKey
	return &StripeGateway{
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		currency:   cfg.Currency,
	}
}

var _ commands.PaymentGateway = (*StripeGateway)(nil)

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, params commands.CheckoutSessionParams) (*commands.CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.ProductName),
					},
					UnitAmount: stripe.Int64(params.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(g.successURL),
		CancelURL:     stripe.String(g.cancelURL),
		CustomerEmail: stripe.String(params.UserEmail),
	}
	sessionParams.Context = ctx

	sess, err := session.New(sessionParams)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create checkout session")
	}

	return &commands.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// OpenAuthenticatedSession polls the checkout session until the rider pays,
// the session expires, or the context runs out. Expiry maps to a cancel; an
// unresolved context deadline maps to a dismiss.
func (g *StripeGateway) OpenAuthenticatedSession(ctx context.Context, cs commands.CheckoutSession) (commands.PaymentOutcome, error) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		getParams := &stripe.CheckoutSessionParams{}
		getParams.Context = ctx

		sess, err := session.Get(cs.ID, getParams)
		if err != nil {
			return commands.OutcomeDismiss, errs.Wrap(err, "failed to read checkout session")
		}

		switch {
		case sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid:
			return commands.OutcomeSuccess, nil
		case sess.Status == stripe.CheckoutSessionStatusExpired:
			return commands.OutcomeCancel, nil
		}

		select {
		case <-ctx.Done():
			return commands.OutcomeDismiss, nil
		case <-ticker.C:
		}
	}
}
