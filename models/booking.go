package models

// Booking draft states.
const (
	DraftStateEmpty         = "empty"
	DraftStateServiceChosen = "service-selected"
	DraftStateBarberChosen  = "barber-selected"
	DraftStateDateChosen    = "date-selected"
	DraftStateTimeChosen    = "time-selected"
	DraftStateSubmitting    = "submitting"
	DraftStateEmailPending  = "email-pending"
	DraftStateError         = "error"
)

// TimeSlotStatus describes one bookable time value for a (barber, date) pair.
type TimeSlotStatus struct {
	Time        string `json:"time"` // HH:MM
	IsPast      bool   `json:"isPast"`
	IsAvailable bool   `json:"isAvailable"`
}

// BookingDraft is an in-progress booking for one client session.
type BookingDraft struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId,omitempty"`
	BarberID  string  `json:"barberId,omitempty"`
	Date      string  `json:"date,omitempty"` // ISO date, e.g. "2025-03-10"
	Time      string  `json:"time,omitempty"` // HH:MM
	Name      string  `json:"name,omitempty"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	UserID    *string `json:"userId"` // nil for guest bookings
	PolicyOK  bool    `json:"policyAccepted"`
	State     string  `json:"state"`

	// SlotSet is the most recently fetched slot-status set for the current
	// (barber, date) pair. It is replaced whole, never merged.
	SlotSet []TimeSlotStatus `json:"slotSet,omitempty"`
	// SlotEpoch increments whenever barber or date changes; slot fetches
	// carry the epoch that triggered them and stale results are discarded.
	SlotEpoch int64 `json:"slotEpoch"`
}

// SlotFor returns the status entry for the given time value, if present.
func (d *BookingDraft) SlotFor(timeValue string) (TimeSlotStatus, bool) {
	for _, s := range d.SlotSet {
		if s.Time == timeValue {
			return s, true
		}
	}
	return TimeSlotStatus{}, false
}

// BookingRequest is the payload the backend expects for POST /bookings.
// The backend contract takes the service display name, not its id.
type BookingRequest struct {
	Service string  `json:"service"`
	Barber  string  `json:"barber"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Notes   string  `json:"notes,omitempty"`
	UserID  *string `json:"userId"`
}

// Booking is a row in the customer's booking history.
type Booking struct {
	ID      string `json:"id"`
	Service string `json:"service"`
	Barber  string `json:"barber"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"` // e.g. "pending", "confirmed", "cancelled"
}

// ConfirmedBooking is what the backend returns when an email token is redeemed.
type ConfirmedBooking struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Service string `json:"service"`
	Barber  string `json:"barber"`
	Email   string `json:"email"`
}
