// File: barberbook/services/booking/confirmation.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"barberbook/backend"
	"barberbook/models"
	"barberbook/store"

	"go.uber.org/zap"
)

// genericRedeemError is shown when the backend gives no reason.
const genericRedeemError = "This confirmation link is invalid or has expired."

// Redeem exchanges the emailed token with the backend. On success the
// pending confirmation is cleared; on failure it stays in place so the
// customer can still see what they were confirming.
func (s *DefaultFlowService) Redeem(ctx context.Context, clientID, token string) (*models.ConfirmedBooking, error) {
	if token == "" {
		return nil, NewValidationError("confirmation token is required")
	}

	confirmed, err := s.API.ConfirmBooking(ctx, token)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, NewConfirmationError(apiErr.Message)
		}
		if errors.Is(err, backend.ErrUnreachable) {
			return nil, err
		}
		return nil, NewConfirmationError(genericRedeemError)
	}

	if err := s.Store.Del(ctx, pendingKey(clientID)); err != nil {
		s.Logger.Warn("failed to clear pending confirmation", zap.Error(err))
	}
	_ = s.Store.SRem(ctx, pendingIndexKey, clientID)
	s.Logger.Info("booking confirmed",
		zap.String("date", confirmed.Date), zap.String("time", confirmed.Time))
	return confirmed, nil
}

// Pending returns the client's pending confirmation, nil when none exists.
func (s *DefaultFlowService) Pending(ctx context.Context, clientID string) (*models.PendingConfirmation, error) {
	data, err := s.Store.Get(ctx, pendingKey(clientID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending confirmation: %w", err)
	}
	var pending models.PendingConfirmation
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		_ = s.Store.Del(ctx, pendingKey(clientID))
		return nil, nil
	}
	return &pending, nil
}
