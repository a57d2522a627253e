// File: barberbook/utils/constants.go
package utils

import "time"

// SessionKeyPrefix is the prefix for Redis auth session keys.
const SessionKeyPrefix = "session:"

// CartKeyPrefix is the prefix for Redis cart keys.
const CartKeyPrefix = "cart:"

// DraftKeyPrefix is the prefix for Redis booking draft keys.
const DraftKeyPrefix = "draft:"

// PendingKeyPrefix is the prefix for Redis pending confirmation keys.
const PendingKeyPrefix = "pendingBooking:"

// SessionTTL is the time-to-live for auth session entries.
const SessionTTL = 24 * time.Hour

// CartTTL is the time-to-live for cart entries.
const CartTTL = 7 * 24 * time.Hour

// DraftTTL is the time-to-live for booking drafts.
const DraftTTL = time.Hour

// PendingTTL is the time-to-live for pending confirmations.
const PendingTTL = 24 * time.Hour
