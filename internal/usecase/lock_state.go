package usecase

import "time"

// IsLeadLockedByOtherBroker reports whether a lead carries an active claim
// belonging to someone other than currentBrokerID. A nil expiry means the
// claim is not a valid reservation and the lead counts as unlocked. Expiry at
// exactly now counts as expired.
//
// This is the informational precondition only. The acquiring statements in the
// database layer re-affirm the same condition atomically.
func IsLeadLockedByOtherBroker(lockedByBrokerID *string, currentBrokerID string, lockExpiresAt *time.Time, now time.Time) bool {
	if lockedByBrokerID == nil {
		return false
	}
	if *lockedByBrokerID == currentBrokerID {
		return false
	}
	if lockExpiresAt == nil {
		return false
	}
	return lockExpiresAt.After(now)
}
