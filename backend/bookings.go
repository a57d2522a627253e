package backend

import (
	"context"
	"net/http"

	"barberbook/models"
)

// createBookingResponse is the backend's shape for POST /bookings.
type createBookingResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// CreateBooking submits a booking. The backend sends the confirmation email;
// the booking stays pending until the emailed token is redeemed.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (string, error) {
	var resp createBookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", "", req, &resp); err != nil {
		return "", err
	}
	return resp.BookingID, nil
}

// MyBookings lists the authenticated customer's booking history.
func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/my-bookings", token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking cancels one of the customer's bookings.
func (c *Client) CancelBooking(ctx context.Context, token, bookingID string) error {
	return c.do(ctx, http.MethodPut, "/bookings/"+bookingID+"/cancel", token, nil, nil)
}

// TimeSlotsStatus returns the authoritative slot-status set for a specific
// barber and date, accounting for existing bookings.
func (c *Client) TimeSlotsStatus(ctx context.Context, barberID, date string) ([]models.TimeSlotStatus, error) {
	var slots []models.TimeSlotStatus
	path := "/bookings/time-slots-status" + query(map[string]string{
		"barberId": barberID,
		"date":     date,
	})
	if err := c.do(ctx, http.MethodGet, path, "", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CheckAvailability asks whether a specific slot is still free.
func (c *Client) CheckAvailability(ctx context.Context, barberID, date, timeValue string) (bool, error) {
	var resp struct {
		Available bool `json:"available"`
	}
	path := "/bookings/check-availability" + query(map[string]string{
		"barberId": barberID,
		"date":     date,
		"time":     timeValue,
	})
	if err := c.do(ctx, http.MethodGet, path, "", nil, &resp); err != nil {
		return false, err
	}
	return resp.Available, nil
}

// ConfirmBooking redeems an email confirmation token and returns the
// finalized booking details.
func (c *Client) ConfirmBooking(ctx context.Context, token string) (*models.ConfirmedBooking, error) {
	var confirmed models.ConfirmedBooking
	body := map[string]string{"token": token}
	if err := c.do(ctx, http.MethodPost, "/bookings/confirm", "", body, &confirmed); err != nil {
		return nil, err
	}
	return &confirmed, nil
}
