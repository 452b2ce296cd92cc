package listing

import (
	"errors"
	"time"

	"foodshare/internal/domain/identity"
	"foodshare/internal/pkg/patch"
	"foodshare/internal/pkg/ptr"

	"github.com/google/uuid"
)

var ErrDonorRequired = errors.New("listing requires a donor email")

type Listing struct {
	id         uuid.UUID
	donor      identity.Identity
	status     Status
	expireDate *time.Time
	attributes Attributes
	createdAt  time.Time
	updatedAt  *time.Time
}

// NewListing starts every listing as Available with the donor snapshot taken now.
func NewListing(donor identity.Identity, raw map[string]any, expireDate *time.Time, now time.Time) (*Listing, error) {
	if donor.IsZero() {
		return nil, ErrDonorRequired
	}

	return &Listing{
		id:         uuid.New(),
		donor:      donor,
		status:     StatusAvailable,
		expireDate: expireDate,
		attributes: SanitizeAttributes(raw),
		createdAt:  now,
	}, nil
}

// Reconstruct rebuilds a listing from stored state.
func Reconstruct(id uuid.UUID, donor identity.Identity, status Status, expireDate *time.Time, attrs Attributes, createdAt time.Time, updatedAt *time.Time) *Listing {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Listing{
		id:         id,
		donor:      donor,
		status:     status,
		expireDate: expireDate,
		attributes: attrs,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) Donor() identity.Identity { return l.donor }
func (l *Listing) Status() Status           { return l.status }
func (l *Listing) ExpireDate() *time.Time   { return l.expireDate }
func (l *Listing) Attributes() Attributes   { return l.attributes }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() *time.Time    { return l.updatedAt }
func (l *Listing) OwnerEmail() string       { return l.donor.Email }
func (l *Listing) IsAvailable() bool        { return l.status == StatusAvailable }

// OwnedBy compares emails exactly, case included.
func (l *Listing) OwnedBy(actor identity.Identity) bool {
	return !actor.IsZero() && l.donor.Email == actor.Email
}

// Apply merges p into the listing. The donor, status and creation time never change here.
func (l *Listing) Apply(p Patch, now time.Time) {
	l.attributes = patch.Merge(l.attributes, p.Attributes)
	l.expireDate = patch.CoalescePtr(p.ExpireDate, l.expireDate)
	l.updatedAt = ptr.To(now)
}

// MarkDonated is the only status transition and is driven by accepting a request.
func (l *Listing) MarkDonated() {
	l.status = StatusDonated
}

func (l *Listing) Clone() *Listing {
	c := *l
	c.attributes = l.attributes.Clone()
	if l.expireDate != nil {
		t := *l.expireDate
		c.expireDate = &t
	}
	if l.updatedAt != nil {
		t := *l.updatedAt
		c.updatedAt = &t
	}
	return &c
}

// Patch is a partial update. ExpireDate nil keeps the stored value.
type Patch struct {
	Attributes Attributes
	ExpireDate *time.Time
}

func NewPatch(raw map[string]any, expireDate *time.Time) Patch {
	return Patch{
		Attributes: SanitizeAttributes(raw),
		ExpireDate: expireDate,
	}
}
