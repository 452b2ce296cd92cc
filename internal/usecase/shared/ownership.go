package shared

import (
	"foodshare/internal/domain/identity"
	"foodshare/internal/pkg/errs"
)

// Owned is anything whose owner is identified by email.
type Owned interface {
	OwnerEmail() string
}

// RequireOwner is the single ownership check for every protected listing operation.
func RequireOwner[T Owned](entity T, actor identity.Identity) error {
	if actor.IsZero() || entity.OwnerEmail() != actor.Email {
		return errs.ErrForbidden
	}
	return nil
}
