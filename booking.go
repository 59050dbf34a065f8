package saludya

import (
	"context"
	"net/http"
	"strings"

	"github.com/jonatanlavado-utec/saludya-client/internal/api"
	cerr "github.com/jonatanlavado-utec/saludya-client/internal/errors"
	"github.com/jonatanlavado-utec/saludya-client/internal/types"
)

// BookingOrchestrator runs the two-step pay-then-book transaction. The
// steps cross two independent services with no shared rollback: when the
// charge succeeds and the booking then fails, the orchestrator reports
// that state verbatim instead of retrying or refunding. Compensation is a
// support workflow, not client code.
type BookingOrchestrator struct {
	httpClient *http.Client
	urls       serviceURLs
	session    *SessionManager
	ledger     *AppointmentLedger
	log        clientLogger
}

func newBookingOrchestrator(c *Client) *BookingOrchestrator {
	return &BookingOrchestrator{
		httpClient: c.httpClient,
		urls:       c.urls,
		session:    c.session,
		ledger:     c.ledger,
		log:        clientLogger{c.log},
	}
}

// ProcessPayment charges the card and, only after the payment service has
// confirmed, books the appointment with the returned payment id attached.
// amount 0 means "the doctor's consultation price". Step two never starts
// before step one's response arrives, and neither step is retried.
func (b *BookingOrchestrator) ProcessPayment(ctx context.Context, amount float64, card types.CardInfo, doctor types.Doctor, slot types.TimeSlot, symptoms string) Result {
	user, okUser := b.session.User()
	if !okUser {
		return fail(msgNoSession)
	}
	if amount == 0 {
		amount = doctor.Price
	}

	payment, err := api.CreatePayment(ctx, b.httpClient, b.urls.payments, types.PaymentRequest{
		UserID:     user.ID,
		Amount:     amount,
		CardNumber: normalizeCardNumber(card.Number),
		CardHolder: card.Holder,
		ExpiryDate: card.ExpiryDate,
		CVV:        card.CVV,
	})
	if err != nil {
		paymentsTotal.WithLabelValues(outcomeFailure).Inc()
		if cerr.IsNetwork(err) {
			// We do not know whether money moved; the UI must say so
			// differently than a declined card.
			return fail(msgNoServerConnection)
		}
		return fail(failureMessage(err, msgNoServerConnection, nil, msgPaymentFailed))
	}
	paymentsTotal.WithLabelValues(outcomeSuccess).Inc()

	if err := b.ledger.create(ctx, doctor, slot, symptoms, payment.ID); err != nil {
		b.log.warnErr(err, "payment succeeded but booking failed")
		return fail(msgPaidButNotBooked)
	}
	return ok()
}

// normalizeCardNumber strips the separators people type into card fields.
// The payment service rejects anything that is not 16 digits.
func normalizeCardNumber(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	return strings.ReplaceAll(number, "-", "")
}
