package request

import "errors"

var ErrExpireDateType = errors.New("expireDate must be a string")

// ListingBody is the free-form listing document posted by clients.
type ListingBody map[string]any

// Split lifts expireDate out of the body. Everything else is descriptive.
func (b ListingBody) Split() (attrs map[string]any, expireDate string, err error) {
	attrs = make(map[string]any, len(b))
	for k, v := range b {
		if k == "expireDate" {
			continue
		}
		attrs[k] = v
	}

	switch v := b["expireDate"].(type) {
	case nil:
	case string:
		expireDate = v
	default:
		return nil, "", ErrExpireDateType
	}
	return attrs, expireDate, nil
}
