package listing

import (
	"errors"
	"strings"
	"time"

	"foodshare/internal/pkg/ptr"
)

var ErrInvalidExpireDate = errors.New("invalid expireDate")

// Keys the server owns. They never reach the stored attribute bag.
var reservedKeys = map[string]struct{}{
	"_id":         {},
	"id":          {},
	"donator":     {},
	"donor":       {},
	"food_status": {},
	"createdAt":   {},
	"updatedAt":   {},
	"expireDate":  {},
}

// Attributes holds the free-form food fields supplied by the donor
// (foodName, foodImage, foodQuantity, pickupLocation, notes and so on).
type Attributes map[string]any

// SanitizeAttributes copies raw and drops server-owned keys.
func SanitizeAttributes(raw map[string]any) Attributes {
	out := make(Attributes, len(raw))
	for k, v := range raw {
		if IsReservedKey(k) {
			continue
		}
		out[k] = v
	}
	return out
}

func IsReservedKey(k string) bool {
	_, ok := reservedKeys[k]
	return ok
}

func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

var expireDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseExpireDate returns nil for an empty value.
// Zone-less layouts are read as UTC.
func ParseExpireDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range expireDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return ptr.To(t.UTC()), nil
		}
	}
	return nil, ErrInvalidExpireDate
}
