// File: barberbook/handlers/booking.go
package handlers

import (
	"net/http"

	"barberbook/backend"
	"barberbook/middleware"
	"barberbook/services/booking"
	"barberbook/services/session"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking form flow and booking history.
type BookingHandler struct {
	Flow     booking.FlowService
	API      *backend.Client
	Sessions session.Service
}

func NewBookingHandler(flow booking.FlowService, api *backend.Client, sessions session.Service) *BookingHandler {
	return &BookingHandler{Flow: flow, API: api, Sessions: sessions}
}

// GetDraftHandler returns the client's current draft, plus any pending
// confirmation so the page can show the email-pending banner after reload.
func (h *BookingHandler) GetDraftHandler(c *gin.Context) {
	ctx := c.Request.Context()
	clientID := middleware.ClientID(c)

	draft, err := h.Flow.Draft(ctx, clientID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	pending, err := h.Flow.Pending(ctx, clientID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "pending": pending})
}

type selectionInput struct {
	ServiceID string `json:"serviceId"`
	BarberID  string `json:"barberId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// UpdateDraftHandler applies one selection step. Only the provided field is
// applied; the service enforces the slot guard and invalidation rules.
func (h *BookingHandler) UpdateDraftHandler(c *gin.Context) {
	var input selectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	clientID := middleware.ClientID(c)
	var (
		draft any
		err   error
	)
	switch {
	case input.ServiceID != "":
		draft, err = h.Flow.SetService(ctx, clientID, input.ServiceID)
	case input.BarberID != "":
		draft, err = h.Flow.SetBarber(ctx, clientID, input.BarberID)
	case input.Date != "":
		draft, err = h.Flow.SetDate(ctx, clientID, input.Date)
	case input.Time != "":
		draft, err = h.Flow.SetTime(ctx, clientID, input.Time)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "no selection provided"})
		return
	}
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetContactHandler records the contact fields.
func (h *BookingHandler) SetContactHandler(c *gin.Context) {
	var contact booking.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Flow.SetContact(c.Request.Context(), middleware.ClientID(c), contact)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// AcceptPolicyHandler records the policy acknowledgement.
func (h *BookingHandler) AcceptPolicyHandler(c *gin.Context) {
	var input struct {
		Accepted bool `json:"accepted"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Flow.AcceptPolicy(c.Request.Context(), middleware.ClientID(c), input.Accepted)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetSlotsHandler fetches the slot-status set for the draft's current
// (barber, date) pair.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	slots, err := h.Flow.FetchSlots(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// SubmitHandler submits the draft and returns the pending confirmation.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	pending, err := h.Flow.Submit(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":   "email-pending",
		"pending": pending,
		"message": "A confirmation email has been sent. The booking is held until the link inside is opened.",
	})
}

// ConfirmHandler redeems the email confirmation token carried in the
// confirmation link.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	confirmed, err := h.Flow.Redeem(c.Request.Context(), middleware.ClientID(c), input.Token)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// MyBookingsHandler lists the authenticated customer's bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	clientID := middleware.ClientID(c)
	sess := h.Sessions.Current(ctx, clientID)
	if sess == nil {
		RespondServiceError(c, backend.ErrUnauthorized)
		return
	}
	bookings, err := h.API.MyBookings(ctx, sess.Token)
	if err != nil {
		session.PurgeOnAuthError(ctx, h.Sessions, clientID, err)
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler cancels one of the customer's bookings.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	ctx := c.Request.Context()
	clientID := middleware.ClientID(c)
	sess := h.Sessions.Current(ctx, clientID)
	if sess == nil {
		RespondServiceError(c, backend.ErrUnauthorized)
		return
	}
	if err := h.API.CancelBooking(ctx, sess.Token, c.Param("id")); err != nil {
		session.PurgeOnAuthError(ctx, h.Sessions, clientID, err)
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
