// Package entity defines the domain models for the ordersearch feature.
package entity

import "github.com/shopspring/decimal"

// DateTimeLayout is the fixed display format of order timestamps (yyyy/MM/dd HH:mm:ss).
const DateTimeLayout = "2006/01/02 15:04:05"

// OrderRecord is one brokerage order returned by a search.
// Records are immutable once returned; FilledQty <= Qty is guaranteed by the source, not checked here.
type OrderRecord struct {
	AccountNo   string
	Operation   string // "Buy" / "Sell"
	Symbol      string
	Description string
	Qty         int
	FilledQty   int
	Price       decimal.Decimal
	Status      string // "Waiting" / "Completed"
	Date        string // DateTimeLayout
	Expiration  string // DateTimeLayout
	NoRef       string
	ExtRef      string
	Detail      OrderDetail
}

// OrderDetail holds the counterparty and account information shown in the expanded row.
type OrderDetail struct {
	FirstName    string
	LastName     string
	AccountNo    string
	Margin       string
	NetAmount    string
	Price        decimal.Decimal
	ExchangeRate decimal.Decimal
	OSLimit      decimal.Decimal
	ReferenceNo  string
	DateTime     string
	Telephone    string
	UserID       string
}
