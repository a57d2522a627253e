// File: barberbook/services/booking/booking.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barberbook/backend"
	"barberbook/models"
	"barberbook/services/catalog"
	"barberbook/services/session"
	"barberbook/store"
	"barberbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// activeDraftsKey indexes clients whose draft has a selected time.
const activeDraftsKey = "drafts:active"

// pendingIndexKey indexes clients holding a pending confirmation, for the
// periodic expiry sweep.
const pendingIndexKey = "pending:index"

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	API      BookingAPI
	Resolver *DefaultSlotResolver
	Catalog  catalog.Service
	Sessions session.Service
	Store    store.KV
	Logger   *zap.Logger
}

func draftKey(clientID string) string {
	return utils.DraftKeyPrefix + clientID
}

func pendingKey(clientID string) string {
	return utils.PendingKeyPrefix + clientID
}

func (s *DefaultFlowService) loadDraft(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	data, err := s.Store.Get(ctx, draftKey(clientID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		s.Logger.Warn("discarding malformed booking draft", zap.String("clientID", clientID))
		_ = s.Store.Del(ctx, draftKey(clientID))
		return nil, nil
	}
	return &draft, nil
}

func (s *DefaultFlowService) saveDraft(ctx context.Context, clientID string, draft *models.BookingDraft) error {
	draft.State = deriveState(draft)
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Store.Set(ctx, draftKey(clientID), string(data), utils.DraftTTL); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	// Keep the revalidation index in step with the selected time.
	if draft.Time != "" {
		_ = s.Store.SAdd(ctx, activeDraftsKey, clientID)
	} else {
		_ = s.Store.SRem(ctx, activeDraftsKey, clientID)
	}
	return nil
}

// deriveState maps draft contents onto the form's progression states.
// Submission states (submitting, email-pending, error) are set explicitly.
func deriveState(d *models.BookingDraft) string {
	switch d.State {
	case models.DraftStateSubmitting, models.DraftStateEmailPending, models.DraftStateError:
		return d.State
	}
	switch {
	case d.Time != "":
		return models.DraftStateTimeChosen
	case d.Date != "":
		return models.DraftStateDateChosen
	case d.BarberID != "":
		return models.DraftStateBarberChosen
	case d.ServiceID != "":
		return models.DraftStateServiceChosen
	default:
		return models.DraftStateEmpty
	}
}

// newDraft builds an empty draft, pre-filled from the authenticated profile.
func (s *DefaultFlowService) newDraft(ctx context.Context, clientID string) *models.BookingDraft {
	draft := &models.BookingDraft{
		ID:    uuid.New().String(),
		State: models.DraftStateEmpty,
	}
	if sess := s.Sessions.Current(ctx, clientID); sess != nil {
		draft.Name = sess.User.Name
		draft.Email = sess.User.Email
		draft.Phone = sess.User.Phone
		id := sess.User.ID
		draft.UserID = &id
	}
	return draft
}

// Draft returns the current draft, creating one when none exists.
func (s *DefaultFlowService) Draft(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		draft = s.newDraft(ctx, clientID)
		if err := s.saveDraft(ctx, clientID, draft); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

func (s *DefaultFlowService) mutate(ctx context.Context, clientID string, fn func(*models.BookingDraft) error) (*models.BookingDraft, error) {
	draft, err := s.Draft(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.saveDraft(ctx, clientID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetService records the chosen service. It constrains nothing else.
func (s *DefaultFlowService) SetService(ctx context.Context, clientID, serviceID string) (*models.BookingDraft, error) {
	return s.mutate(ctx, clientID, func(d *models.BookingDraft) error {
		d.ServiceID = serviceID
		return nil
	})
}

// SetBarber records the chosen barber. The selected time and the cached
// slot-status set are invalidated; the epoch bump makes any in-flight slot
// fetch for the old pair stale.
func (s *DefaultFlowService) SetBarber(ctx context.Context, clientID, barberID string) (*models.BookingDraft, error) {
	return s.mutate(ctx, clientID, func(d *models.BookingDraft) error {
		if d.BarberID == barberID {
			return nil
		}
		d.BarberID = barberID
		d.Time = ""
		d.SlotSet = nil
		d.SlotEpoch++
		return nil
	})
}

// SetDate records the chosen date, with the same invalidation as SetBarber.
func (s *DefaultFlowService) SetDate(ctx context.Context, clientID, date string) (*models.BookingDraft, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q", date))
	}
	return s.mutate(ctx, clientID, func(d *models.BookingDraft) error {
		if d.Date == date {
			return nil
		}
		d.Date = date
		d.Time = ""
		d.SlotSet = nil
		d.SlotEpoch++
		return nil
	})
}

// SetTime accepts the candidate only when the current slot-status set lists
// it as available, or when no set has loaded yet.
func (s *DefaultFlowService) SetTime(ctx context.Context, clientID, timeValue string) (*models.BookingDraft, error) {
	if _, err := time.Parse("15:04", timeValue); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid time %q", timeValue))
	}
	return s.mutate(ctx, clientID, func(d *models.BookingDraft) error {
		if len(d.SlotSet) > 0 {
			slot, ok := d.SlotFor(timeValue)
			if !ok || !slot.IsAvailable || slot.IsPast {
				return NewSlotError(fmt.Sprintf("time %s is not available", timeValue))
			}
		}
		d.Time = timeValue
		return nil
	})
}

// SetContact records the contact fields.
func (s *DefaultFlowService) SetContact(ctx context.Context, clientID string, contact ContactInfo) (*models.BookingDraft, error) {
	return s.mutate(ctx, clientID, func(d *models.BookingDraft) error {
		d.Name = contact.Name
		d.Email = contact.Email
		d.Phone = contact.Phone
		d.Notes = contact.Notes
		return nil
	})
}

// AcceptPolicy records the policy acknowledgement.
func (s *DefaultFlowService) AcceptPolicy(ctx context.Context, clientID string, accepted bool) (*models.BookingDraft, error) {
	return s.mutate(ctx, clientID, func(d *models.BookingDraft) error {
		d.PolicyOK = accepted
		return nil
	})
}

// FetchSlots resolves the slot-status set for the draft's current pair and
// stores it. The set replaces the previous one whole; a result whose epoch
// no longer matches the draft (barber or date changed mid-flight) is
// discarded in favor of the draft's current set.
func (s *DefaultFlowService) FetchSlots(ctx context.Context, clientID string) ([]models.TimeSlotStatus, error) {
	draft, err := s.Draft(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if draft.BarberID == "" || draft.Date == "" {
		return nil, NewValidationError("select a barber and a date first")
	}
	epoch := draft.SlotEpoch

	slots, err := s.Resolver.Resolve(ctx, draft.BarberID, draft.Date)
	if err != nil {
		if errors.Is(err, backend.ErrUnreachable) {
			s.Logger.Warn("slot fetch failed, serving fallback schedule",
				zap.String("barberId", draft.BarberID), zap.String("date", draft.Date), zap.Error(err))
			slots = s.Resolver.Fallback(draft.Date)
		} else {
			return nil, err
		}
	}

	// Reload before applying: the pair may have changed while resolving.
	draft, err = s.Draft(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if draft.SlotEpoch != epoch {
		s.Logger.Debug("discarding stale slot fetch",
			zap.Int64("fetchEpoch", epoch), zap.Int64("draftEpoch", draft.SlotEpoch))
		return draft.SlotSet, nil
	}

	draft.SlotSet = slots
	if draft.Time != "" {
		if slot, ok := draft.SlotFor(draft.Time); !ok || !slot.IsAvailable || slot.IsPast {
			draft.Time = ""
		}
	}
	if err := s.saveDraft(ctx, clientID, draft); err != nil {
		return nil, err
	}
	return slots, nil
}

// Submit validates and forwards the draft; see FlowService.
func (s *DefaultFlowService) Submit(ctx context.Context, clientID string) (*models.PendingConfirmation, error) {
	draft, err := s.Draft(ctx, clientID)
	if err != nil {
		return nil, err
	}

	switch {
	case draft.ServiceID == "":
		return nil, NewValidationError("select a service")
	case draft.BarberID == "":
		return nil, NewValidationError("select a barber")
	case draft.Date == "":
		return nil, NewValidationError("select a date")
	case draft.Time == "":
		return nil, NewValidationError("select a time")
	case draft.Name == "" || draft.Email == "" || draft.Phone == "":
		return nil, NewValidationError("name, email and phone are required")
	case !draft.PolicyOK:
		return nil, NewValidationError("the booking policy must be accepted")
	}
	if len(draft.SlotSet) > 0 {
		if slot, ok := draft.SlotFor(draft.Time); !ok || !slot.IsAvailable || slot.IsPast {
			return nil, NewSlotError(fmt.Sprintf("time %s is no longer available", draft.Time))
		}
	}

	// For a specific barber, ask the backend whether the slot is still free;
	// the cached slot set may be minutes old. "Any barber" assignment happens
	// backend-side on creation.
	if draft.BarberID != models.AnyBarberID {
		available, err := s.API.CheckAvailability(ctx, draft.BarberID, draft.Date, draft.Time)
		switch {
		case errors.Is(err, backend.ErrUnreachable):
			// Creation will surface the transport failure itself.
		case err != nil:
			return nil, err
		case !available:
			return nil, NewSlotError(fmt.Sprintf("time %s was just booked", draft.Time))
		}
	}

	// The backend's contract takes the service display name, not the id.
	serviceName, err := s.Catalog.ServiceName(ctx, draft.ServiceID)
	if err != nil {
		return nil, err
	}

	// Guests always submit a null user id, regardless of any stale value
	// left on the draft.
	var userID *string
	if sess := s.Sessions.Current(ctx, clientID); sess != nil {
		id := sess.User.ID
		userID = &id
	}

	draft.State = models.DraftStateSubmitting
	if err := s.saveDraft(ctx, clientID, draft); err != nil {
		return nil, err
	}

	bookingID, err := s.API.CreateBooking(ctx, models.BookingRequest{
		Service: serviceName,
		Barber:  draft.BarberID,
		Date:    draft.Date,
		Time:    draft.Time,
		Name:    draft.Name,
		Email:   draft.Email,
		Phone:   draft.Phone,
		Notes:   draft.Notes,
		UserID:  userID,
	})
	if err != nil {
		draft.State = models.DraftStateError
		_ = s.saveDraft(ctx, clientID, draft)
		return nil, err
	}

	pending := &models.PendingConfirmation{
		BookingID:   bookingID,
		ServiceName: serviceName,
		Date:        draft.Date,
		Time:        draft.Time,
		Email:       draft.Email,
		CreatedAt:   time.Now(),
	}
	data, err := json.Marshal(pending)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pending confirmation: %w", err)
	}
	// A newer submission supersedes any previous pending record.
	if err := s.Store.Set(ctx, pendingKey(clientID), string(data), utils.PendingTTL); err != nil {
		return nil, fmt.Errorf("failed to store pending confirmation: %w", err)
	}
	_ = s.Store.SAdd(ctx, pendingIndexKey, clientID)

	// The submitted draft is spent; the next form starts empty.
	fresh := s.newDraft(ctx, clientID)
	if err := s.saveDraft(ctx, clientID, fresh); err != nil {
		return nil, err
	}

	s.Logger.Info("booking submitted, awaiting email confirmation",
		zap.String("bookingId", bookingID), zap.String("date", pending.Date), zap.String("time", pending.Time))
	return pending, nil
}

// RevalidateDraft clears a selected time whose slot has become disabled,
// e.g. because the lead-time window passed while the form sat open.
func (s *DefaultFlowService) RevalidateDraft(ctx context.Context, clientID string) error {
	draft, err := s.loadDraft(ctx, clientID)
	if err != nil || draft == nil || draft.Time == "" {
		return err
	}

	now := s.Resolver.now()
	cleared := false

	if draft.Date == now.Format("2006-01-02") {
		cutoff := now.Add(s.Resolver.Lead())
		start, err := time.ParseInLocation("2006-01-02 15:04", draft.Date+" "+draft.Time, now.Location())
		if err == nil && !start.After(cutoff) {
			cleared = true
			// Refresh the cached statuses so the UI disables the stale slots too.
			for i := range draft.SlotSet {
				slotStart, err := time.ParseInLocation("2006-01-02 15:04", draft.Date+" "+draft.SlotSet[i].Time, now.Location())
				if err == nil && !slotStart.After(cutoff) {
					draft.SlotSet[i].IsPast = true
					draft.SlotSet[i].IsAvailable = false
				}
			}
		}
	}
	if slot, ok := draft.SlotFor(draft.Time); ok && (!slot.IsAvailable || slot.IsPast) {
		cleared = true
	}

	if !cleared {
		return nil
	}
	draft.Time = ""
	return s.saveDraft(ctx, clientID, draft)
}

// ActiveDrafts lists clients due for revalidation.
func (s *DefaultFlowService) ActiveDrafts(ctx context.Context) ([]string, error) {
	return s.Store.Members(ctx, activeDraftsKey)
}

// ExpirePendingConfirmations drops pending confirmations past their TTL and
// prunes the index. The store expires the records themselves; this sweep
// keeps the index from accumulating dead entries.
func (s *DefaultFlowService) ExpirePendingConfirmations(ctx context.Context) error {
	clients, err := s.Store.Members(ctx, pendingIndexKey)
	if err != nil {
		return fmt.Errorf("failed to list pending confirmations: %w", err)
	}
	for _, clientID := range clients {
		pending, err := s.Pending(ctx, clientID)
		if err != nil {
			continue
		}
		if pending == nil || time.Since(pending.CreatedAt) >= utils.PendingTTL {
			_ = s.Store.Del(ctx, pendingKey(clientID))
			_ = s.Store.SRem(ctx, pendingIndexKey, clientID)
		}
	}
	return nil
}
