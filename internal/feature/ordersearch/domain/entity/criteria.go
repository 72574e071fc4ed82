package entity

import (
	"fmt"
	"time"

	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/platform/dateutil"
)

// Period values accepted by the search form. The empty value means "Select All".
const (
	PeriodTransmission = "transmission"
	PeriodStart        = "start"
)

// Status values accepted by the search form. The empty value means "Select All".
const (
	StatusWaiting   = "waiting"
	StatusCompleted = "completed"
)

// Field names one field of the search form.
type Field string

const (
	FieldPeriod Field = "period"
	FieldStatus Field = "status"
	FieldFrom   Field = "from"
	FieldTo     Field = "to"
)

// ParseField converts a wire name into a Field.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldPeriod, FieldStatus, FieldFrom, FieldTo:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
}

// SearchCriteria is the state of the search form.
// Values are passed through as entered; from <= to is not enforced.
type SearchCriteria struct {
	Period string
	Status string
	From   string // yyyy-MM-dd
	To     string // yyyy-MM-dd
}

// NewDefaultCriteria returns the form state shown when a page is mounted:
// transmission / waiting over the whole month containing now.
func NewDefaultCriteria(now time.Time) SearchCriteria {
	from, to := dateutil.MonthBounds(now)
	return SearchCriteria{
		Period: PeriodTransmission,
		Status: StatusWaiting,
		From:   from,
		To:     to,
	}
}

// SetField returns a copy of c with exactly one field replaced.
func (c SearchCriteria) SetField(field Field, value string) (SearchCriteria, error) {
	switch field {
	case FieldPeriod:
		c.Period = value
	case FieldStatus:
		c.Status = value
	case FieldFrom:
		c.From = value
	case FieldTo:
		c.To = value
	default:
		return c, fmt.Errorf("%w: %q", domain.ErrUnknownField, string(field))
	}
	return c, nil
}
