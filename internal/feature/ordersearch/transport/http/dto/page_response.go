package dto

// ErrorResponse はエラー時のレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// CriteriaResponse は検索フォームの状態です。
type CriteriaResponse struct {
	Period string `json:"period"`
	Status string `json:"status"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// OptionResponse はドロップダウンの選択肢です。
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DropdownsResponse は GET /dropdowns のレスポンスです。
type DropdownsResponse struct {
	PeriodOptions []OptionResponse `json:"period_options"`
	StatusOptions []OptionResponse `json:"status_options"`
}

// ColumnResponse は表示中の列の定義です。
type ColumnResponse struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
	Center   bool   `json:"center"`
	MinWidth string `json:"min_width"`
}

// OrderResponse は注文の生データです。
type OrderResponse struct {
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
}

// RowResponse はテーブルの1行です。index は詳細取得に使う検索順の位置です。
type RowResponse struct {
	Index  int               `json:"index"`
	Record OrderResponse     `json:"record"`
	Cells  map[string]string `json:"cells"`
}

// SortResponse は適用中の並び順です。
type SortResponse struct {
	Key   string `json:"key"`
	Order string `json:"order"`
}

// PageResponse はページのビューです。
type PageResponse struct {
	ID            string           `json:"id"`
	Criteria      CriteriaResponse `json:"criteria"`
	PeriodOptions []OptionResponse `json:"period_options"`
	StatusOptions []OptionResponse `json:"status_options"`
	Width         int              `json:"width"`
	Narrow        bool             `json:"narrow"`
	Ready         bool             `json:"ready"`
	ResultCount   string           `json:"result_count"`
	Sort          *SortResponse    `json:"sort,omitempty"`
	Columns       []ColumnResponse `json:"columns"`
	Rows          []RowResponse    `json:"rows"`
	LastError     string           `json:"last_error,omitempty"`
}

// FieldResponse は詳細パネルの「ラベル: 値」の組です。
type FieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ActionResponse は詳細パネルのボタンです。inert のボタンには動作がありません。
type ActionResponse struct {
	Label   string `json:"label"`
	Variant string `json:"variant"`
	Inert   bool   `json:"inert"`
}

// DetailResponse は GET /pages/:id/rows/:row/detail のレスポンスです。
type DetailResponse struct {
	Row             int              `json:"row"`
	Title           string           `json:"title"`
	FullReviewLabel string           `json:"full_review_label"`
	Actions         []ActionResponse `json:"actions"`
	ActionAlign     string           `json:"action_align"`
	Fields          []FieldResponse  `json:"fields"`
	WarningsTitle   string           `json:"warnings_title"`
	Warnings        []string         `json:"warnings"`
}
