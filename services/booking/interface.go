package booking

import (
	"context"

	"barberbook/models"
)

// BookingAPI is the slice of the backend client the flow needs.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (string, error)
	ConfirmBooking(ctx context.Context, token string) (*models.ConfirmedBooking, error)
	CheckAvailability(ctx context.Context, barberID, date, timeValue string) (bool, error)
}

// ContactInfo carries the contact fields of the booking form.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// FlowService drives the multi-step booking form for each client session:
// draft mutation, slot fetching, submission and email-token redemption.
type FlowService interface {
	// Draft returns the client's current draft, creating an empty one
	// (pre-filled from the authenticated profile) when none exists.
	Draft(ctx context.Context, clientID string) (*models.BookingDraft, error)
	SetService(ctx context.Context, clientID, serviceID string) (*models.BookingDraft, error)
	// SetBarber and SetDate clear the selected time and the slot-status
	// set, forcing a re-fetch keyed to the new pair.
	SetBarber(ctx context.Context, clientID, barberID string) (*models.BookingDraft, error)
	SetDate(ctx context.Context, clientID, date string) (*models.BookingDraft, error)
	// SetTime accepts the candidate only when it is available in the
	// current slot-status set, or when no set has loaded yet.
	SetTime(ctx context.Context, clientID, timeValue string) (*models.BookingDraft, error)
	SetContact(ctx context.Context, clientID string, contact ContactInfo) (*models.BookingDraft, error)
	AcceptPolicy(ctx context.Context, clientID string, accepted bool) (*models.BookingDraft, error)

	// FetchSlots resolves the slot-status set for the draft's current
	// (barber, date) pair and stores it on the draft. Results keyed to a
	// pair that changed while the fetch was in flight are discarded.
	FetchSlots(ctx context.Context, clientID string) ([]models.TimeSlotStatus, error)

	// Submit validates the draft, forwards it to the backend and records a
	// pending confirmation. Guests always submit a null user id.
	Submit(ctx context.Context, clientID string) (*models.PendingConfirmation, error)

	// Redeem exchanges an email confirmation token. A rejected token keeps
	// the pending confirmation in place.
	Redeem(ctx context.Context, clientID, token string) (*models.ConfirmedBooking, error)
	Pending(ctx context.Context, clientID string) (*models.PendingConfirmation, error)

	// RevalidateDraft clears a selected time that has since become
	// unavailable (e.g. the lead-time window passed).
	RevalidateDraft(ctx context.Context, clientID string) error
	// ActiveDrafts lists clients whose drafts carry a selected time, for
	// the periodic revalidation sweep.
	ActiveDrafts(ctx context.Context) ([]string, error)
	// ExpirePendingConfirmations drops pending confirmations past their TTL.
	ExpirePendingConfirmations(ctx context.Context) error
}
