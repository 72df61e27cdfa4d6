package platform

import (
	"time"

	"github.com/google/uuid"
)

// Record ID prefixes used across the schema.
const (
	CustomerPrefix     = "CID"
	VendorPrefix       = "VID"
	SubscriptionPrefix = "SID"
	TaxPrefix          = "TID"
)

// now is swapped out in tests.
var now = time.Now

// RecordID returns a human-readable identifier of the form
// prefix + YYMMDDHHMMSS from the current wall clock. Two calls within the
// same second for the same prefix produce the same ID.
func RecordID(prefix string) string {
	return prefix + now().Format("060102150405")
}

// NewID returns an opaque UUID, used where readability does not matter
// (upload temp names, request correlation).
func NewID() string {
	return uuid.New().String()
}
