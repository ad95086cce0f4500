// Package delta turns a day's matches into a canonical fingerprint and
// decides whether a notification has to go out. Everything here is pure:
// persistence of the resulting state is the orchestrator's job.
package delta

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/subplan/notification-dispatch/internal/domain"
)

// CanonicalizeMatchKeys builds one key per match from the underlying row
// fields and returns the lexicographically sorted list. Sorting makes the
// result independent of feed row order, so re-fetching the same logical day
// in a different order yields an identical fingerprint.
func CanonicalizeMatchKeys(matches []domain.MatchResult) []string {
	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, fmt.Sprintf("%s|%s|%s|%s", m.Row.Hours, m.Row.Subject, m.Row.Teacher, m.Row.Type))
	}
	sort.Strings(keys)
	return keys
}

// BuildFingerprint digests the identity "this exact set of relevant matches
// for this user on this date". SHA-256 keeps it stable across processes and
// restarts; collision resistance against an adversary is not a requirement
// here, determinism is.
func BuildFingerprint(userID, dateKey string, sortedKeys []string) string {
	h := sha256.New()
	h.Write([]byte(userID))
	h.Write([]byte{':'})
	h.Write([]byte(dateKey))
	h.Write([]byte{':'})
	h.Write([]byte(strings.Join(sortedKeys, "|")))
	return hex.EncodeToString(h.Sum(nil))
}
