// Package dto defines data transfer objects for the order search API responses.
package dto

// SearchResponse represents the JSON response from the /orders/search endpoint.
type SearchResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Orders  []Order `json:"orders"`
}

// Order is one order row. Money values are decimal strings.
type Order struct {
	AccountNo   string `json:"account_no"`
	Operation   string `json:"operation"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Qty         int    `json:"qty"`
	FilledQty   int    `json:"filled_qty"`
	Price       string `json:"price"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Expiration  string `json:"expiration"`
	NoRef       string `json:"no_ref"`
	ExtRef      string `json:"ext_ref"`
	Detail      Detail `json:"detail"`
}

// Detail is the expanded information for an order.
type Detail struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AccountNo    string `json:"account_no"`
	Margin       string `json:"margin"`
	NetAmount    string `json:"net_amount"`
	Price        string `json:"price"`
	ExchangeRate string `json:"exchange_rate"`
	OSLimit      string `json:"os_limit"`
	ReferenceNo  string `json:"reference_no"`
	DateTime     string `json:"date_time"`
	Telephone    string `json:"telephone"`
	UserID       string `json:"user_id"`
}
