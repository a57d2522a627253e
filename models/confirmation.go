package models

import "time"

// PendingConfirmation is a locally cached booking awaiting email-token
// redemption. It is deleted once the token is redeemed or superseded by a
// newer submission; a failed redemption leaves it in place.
type PendingConfirmation struct {
	BookingID   string    `json:"bookingId"`
	ServiceName string    `json:"service"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}
