package usecase

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/platform/format"
	"order_search/internal/platform/viewport"
)

// SortOrder is the direction of a client-side sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps the wire value to a SortOrder; anything but "desc" sorts ascending.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortDesc) {
		return SortDesc
	}
	return SortAsc
}

// SortSpec selects the column the table is sorted by. A zero SortSpec keeps search order.
type SortSpec struct {
	Key   string
	Order SortOrder
}

// Column describes one column of the order table.
type Column struct {
	Key      string
	Label    string
	Sortable bool
	Center   bool
	MinWidth string
	// Hideable columns are omitted on narrow viewports.
	Hideable bool

	compare func(a, b entity.OrderRecord) int
	cell    func(r entity.OrderRecord) string
}

// Omit reports whether the column is hidden at the given viewport width.
func (c Column) Omit(width int) bool {
	return c.Hideable && viewport.IsNarrow(width)
}

// Cell renders the display value of r for this column.
func (c Column) Cell(r entity.OrderRecord) string {
	return c.cell(r)
}

func byString(get func(entity.OrderRecord) string) func(a, b entity.OrderRecord) int {
	return func(a, b entity.OrderRecord) int { return cmp.Compare(get(a), get(b)) }
}

func byInt(get func(entity.OrderRecord) int) func(a, b entity.OrderRecord) int {
	return func(a, b entity.OrderRecord) int { return cmp.Compare(get(a), get(b)) }
}

func textColumn(key, label, minWidth string, hideable bool, get func(entity.OrderRecord) string) Column {
	return Column{
		Key: key, Label: label, Sortable: true, Center: true, MinWidth: minWidth, Hideable: hideable,
		compare: byString(get),
		cell:    get,
	}
}

func intColumn(key, label, minWidth string, get func(entity.OrderRecord) int) Column {
	return Column{
		Key: key, Label: label, Sortable: true, Center: true, MinWidth: minWidth, Hideable: true,
		compare: byInt(get),
		cell:    func(r entity.OrderRecord) string { return strconv.Itoa(get(r)) },
	}
}

// Columns is the fixed column model of the order table, in display order.
var Columns = []Column{
	textColumn("accountNo", "Account", "80px", false, func(r entity.OrderRecord) string { return r.AccountNo }),
	textColumn("operation", "Operation", "100px", false, func(r entity.OrderRecord) string { return r.Operation }),
	textColumn("symbol", "Symbol", "80px", false, func(r entity.OrderRecord) string { return r.Symbol }),
	{
		Key: "description", Label: "Description", Sortable: true, MinWidth: "200px", Hideable: true,
		compare: byString(func(r entity.OrderRecord) string { return r.Description }),
		cell:    func(r entity.OrderRecord) string { return r.Description },
	},
	intColumn("qty", "Qty.", "60px", func(r entity.OrderRecord) int { return r.Qty }),
	intColumn("filledQty", "Filled Qty", "100px", func(r entity.OrderRecord) int { return r.FilledQty }),
	{
		Key: "price", Label: "Price", Sortable: true, Center: true, MinWidth: "100px", Hideable: true,
		compare: func(a, b entity.OrderRecord) int { return a.Price.Cmp(b.Price) },
		cell:    func(r entity.OrderRecord) string { return format.Decimal(r.Price) },
	},
	textColumn("status", "Status", "80px", false, func(r entity.OrderRecord) string { return r.Status }),
	textColumn("date", "Date", "130px", true, func(r entity.OrderRecord) string { return r.Date }),
	textColumn("expiration", "Expiration", "140px", true, func(r entity.OrderRecord) string { return r.Expiration }),
	textColumn("noRef", "No. Ref.", "100px", true, func(r entity.OrderRecord) string { return r.NoRef }),
	textColumn("extRef", "Ext. Ref.", "140px", true, func(r entity.OrderRecord) string { return r.ExtRef }),
}

// VisibleColumns returns the columns not omitted at width, in display order.
func VisibleColumns(width int) []Column {
	out := make([]Column, 0, len(Columns))
	for _, c := range Columns {
		if !c.Omit(width) {
			out = append(out, c)
		}
	}
	return out
}

// ColumnByKey looks up a column of the model.
func ColumnByKey(key string) (Column, bool) {
	for _, c := range Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// SortedIndexes returns the indexes of records in display order for spec.
// The sort is stable and works only on the records passed in.
func SortedIndexes(records []entity.OrderRecord, spec SortSpec) ([]int, error) {
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	if spec.Key == "" {
		return idx, nil
	}
	col, ok := ColumnByKey(spec.Key)
	if !ok || !col.Sortable {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownColumn, spec.Key)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		c := col.compare(records[a], records[b])
		if spec.Order == SortDesc {
			return -c
		}
		return c
	})
	return idx, nil
}
