package delta

import "github.com/subplan/notification-dispatch/internal/domain"

// ResolveAction is the three-state send/skip/clear decision.
//
//   - no current matches: clear stored state if any exists, otherwise there
//     is nothing to clear and nothing to send
//   - unchanged fingerprint: skip
//   - first occurrence or changed fingerprint: send
func ResolveAction(previous *domain.NotificationState, currentFingerprint string, currentMatchCount int) domain.DeltaAction {
	if currentMatchCount == 0 {
		if previous != nil {
			return domain.DeltaClear
		}
		return domain.DeltaSkip
	}

	if previous != nil && previous.Fingerprint == currentFingerprint {
		return domain.DeltaSkip
	}

	return domain.DeltaSend
}
