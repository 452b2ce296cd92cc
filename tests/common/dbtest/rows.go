//go:build unit || e2e

package dbtest

import (
	"fmt"
	"reflect"

	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Row is a pgx.Row that scans Values or fails with Err.
type Row struct {
	Values []any
	Err    error
}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(dest, r.Values)
}

// Rows is a pgx.Rows over fixed value slices. Only the iteration methods
// used by the read stores are implemented.
type Rows struct {
	pgx.Rows
	data    [][]any
	pos     int
	closed  bool
	ScanErr error
	IterErr error
}

func NewRows(data ...[]any) *Rows {
	return &Rows{data: data}
}

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.ScanErr != nil {
		return r.ScanErr
	}
	return assign(dest, r.data[r.pos-1])
}

func (r *Rows) Err() error                    { return r.IterErr }
func (r *Rows) Close()                        { r.closed = true }
func (r *Rows) Closed() bool                  { return r.closed }
func (r *Rows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }

// Tag builds the command tag Exec returns, e.g. Tag("UPDATE", 0).
func Tag(verb string, rows int64) pgconn.CommandTag {
	if verb == "INSERT" {
		return pgconn.NewCommandTag(fmt.Sprintf("INSERT 0 %d", rows))
	}
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", verb, rows))
}

// ListingValues lays a view out in foods column order. A nil view is an
// all-NULL row, the shape of an unmatched LEFT JOIN.
func ListingValues(v *queries.ListingView) []any {
	if v == nil {
		return make([]any, 10)
	}
	return []any{
		pgconv.UUIDToPgtype(v.ID),
		pgconv.StringToPgtype(v.Donor.Email),
		pgconv.StringToPgtype(v.Donor.Name),
		pgconv.StringToPgtype(v.Donor.PhotoURL),
		pgconv.StringToPgtype(v.Donor.UID),
		pgconv.StringToPgtype(v.FoodStatus),
		pgconv.TimePtrToPgtype(v.ExpireDate),
		v.Attributes,
		pgconv.TimeToPgtype(v.CreatedAt),
		pgconv.TimePtrToPgtype(v.UpdatedAt),
	}
}

// RequestValues lays a view out in food_requests column order.
func RequestValues(v *queries.RequestView) []any {
	return []any{
		pgconv.UUIDToPgtype(v.ID),
		pgconv.UUIDToPgtype(v.FoodID),
		pgconv.StringToPgtype(v.Requester.Email),
		pgconv.StringToPgtype(v.Requester.Name),
		pgconv.StringToPgtype(v.Requester.PhotoURL),
		pgconv.StringToPgtype(v.Requester.UID),
		pgconv.StringToPgtype(v.Location),
		pgconv.StringToPgtype(v.Reason),
		pgconv.StringToPgtype(v.Contact),
		pgconv.StringToPgtype(v.Status),
		pgconv.TimeToPgtype(v.CreatedAt),
	}
}

// assign copies values into scan destinations; nil leaves the destination zero.
func assign(dest, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(target.Elem().Type()) {
			return fmt.Errorf("scan: cannot assign %s to %s at %d", val.Type(), target.Elem().Type(), i)
		}
		target.Elem().Set(val)
	}
	return nil
}
