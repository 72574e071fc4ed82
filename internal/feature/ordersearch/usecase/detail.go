package usecase

import (
	"fmt"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/platform/viewport"
)

// Action alignment values for the expanded row.
const (
	AlignStart = "start"
	AlignEnd   = "end"
)

// Warnings are shown for every expanded order.
var Warnings = []string{
	"To trade this security in this account, a currency conversion will be made at the current rate.",
	"A similar order has already been submitted.",
	"Your transaction will be processed the following business day.",
	"It is not possible to calculate the buying power of this order.",
	"A cancellation will not be possible during business hours on market orders.",
	"For the above-mentioned reason(s), your order will be processed by one of our representatives",
}

// LabeledField is one "Label: value" pair of the detail panel.
type LabeledField struct {
	Label string
	Value string
}

// Action is a button of the detail panel. Inert actions have no handler.
type Action struct {
	Label   string
	Variant string
	Inert   bool
}

// DetailView is the expanded panel of one order row.
type DetailView struct {
	Title           string
	FullReviewLabel string
	Actions         []Action
	ActionAlign     string
	Fields          []LabeledField
	WarningsTitle   string
	Warnings        []string
}

// RenderDetail builds the detail panel of r for a viewport of the given width.
func RenderDetail(r entity.OrderRecord, width int) DetailView {
	d := r.Detail
	align := AlignEnd
	if viewport.IsNarrow(width) {
		align = AlignStart
	}
	warnings := make([]string, len(Warnings))
	copy(warnings, Warnings)

	return DetailView{
		Title:           fmt.Sprintf("%s %s (%s - %s)", d.FirstName, d.LastName, d.AccountNo, d.Margin),
		FullReviewLabel: "Full review details",
		// TODO: wire ACCEPT/Reject once the order approval endpoint exists.
		Actions: []Action{
			{Label: "ACCEPT", Variant: "primary", Inert: true},
			{Label: "Reject", Variant: "outline-danger", Inert: true},
		},
		ActionAlign: align,
		Fields: []LabeledField{
			{Label: "Net Amount", Value: d.NetAmount},
			{Label: "Price", Value: d.Price.String()},
			{Label: "Exchange Rate", Value: d.ExchangeRate.String()},
			{Label: "O/S Limit", Value: d.OSLimit.String()},
			{Label: "Reference Number", Value: d.ReferenceNo},
			{Label: "Date / Time", Value: d.DateTime},
			{Label: "Telephone", Value: d.Telephone},
			{Label: "User ID", Value: d.UserID},
		},
		WarningsTitle: "Warning(s)",
		Warnings:      warnings,
	}
}
