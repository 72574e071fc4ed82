package entity

// DropdownOption is one entry of a select box.
type DropdownOption struct {
	Value string
	Label string
}

// SelectAll is the leading option of every filter select; its empty value disables the filter.
var SelectAll = DropdownOption{Value: "", Label: "Select All"}

// PeriodOptions lists the selectable periods.
var PeriodOptions = []DropdownOption{
	{Value: PeriodTransmission, Label: "Transmission"},
	{Value: PeriodStart, Label: "Start"},
}

// StatusOptions lists the selectable order statuses.
var StatusOptions = []DropdownOption{
	{Value: StatusWaiting, Label: "Waiting"},
	{Value: StatusCompleted, Label: "Completed"},
}

// WithSelectAll returns a new slice with SelectAll prepended to opts.
func WithSelectAll(opts []DropdownOption) []DropdownOption {
	out := make([]DropdownOption, 0, len(opts)+1)
	out = append(out, SelectAll)
	return append(out, opts...)
}
