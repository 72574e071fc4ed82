// Package format provides locale-aware display formatting for numeric values.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is rendered in place of values that are not numbers.
const Placeholder = "-"

type options struct {
	min  int
	max  int
	lang language.Tag
}

// Option customizes Decimal.
type Option func(*options)

// FractionDigits sets the minimum and maximum number of fraction digits.
func FractionDigits(min, max int) Option {
	return func(o *options) {
		o.min = min
		o.max = max
	}
}

// Locale sets the language used for grouping and the decimal separator.
func Locale(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// Decimal coerces value to a number and renders it with 2..2 fraction digits
// and thousands grouping by default. Blank strings count as 0 and booleans as
// 1 or 0. Anything else that is not a finite number renders as Placeholder.
func Decimal(value any, opts ...Option) string {
	o := options{min: 2, max: 2, lang: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	if o.max < o.min {
		o.max = o.min
	}

	d, ok := toDecimal(value)
	if !ok {
		return Placeholder
	}

	// half away from zero, the same way browsers round toLocaleString
	f := d.Round(int32(o.max)).InexactFloat64()
	p := message.NewPrinter(o.lang)
	return p.Sprint(number.Decimal(f,
		number.MinFractionDigits(o.min),
		number.MaxFractionDigits(o.max),
	))
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return decimal.Decimal{}, false
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	case decimal.NullDecimal:
		return v.Decimal, v.Valid
	case bool:
		if v {
			return decimal.NewFromInt(1), true
		}
		return decimal.Zero, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return decimal.NewFromUint64(uint64(v)), true
	case uint8:
		return decimal.NewFromUint64(uint64(v)), true
	case uint16:
		return decimal.NewFromUint64(uint64(v)), true
	case uint32:
		return decimal.NewFromUint64(uint64(v)), true
	case uint64:
		return decimal.NewFromUint64(v), true
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			// 空文字は数値の0として扱う
			return decimal.Zero, true
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}
