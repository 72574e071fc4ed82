package handler

import (
	"fmt"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/transport/http/dto"
	"order_search/internal/feature/ordersearch/usecase"
	"order_search/internal/platform/viewport"
)

// ResultCount は結果件数の表示文字列です。
func ResultCount(n int) string {
	return fmt.Sprintf("Search results: %d", n)
}

func toCriteriaResponse(c entity.SearchCriteria) dto.CriteriaResponse {
	return dto.CriteriaResponse{Period: c.Period, Status: c.Status, From: c.From, To: c.To}
}

func toOptionResponses(opts []entity.DropdownOption) []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.OptionResponse{Value: o.Value, Label: o.Label})
	}
	return out
}

func toOrderResponse(r entity.OrderRecord) dto.OrderResponse {
	return dto.OrderResponse{
		AccountNo:   r.AccountNo,
		Operation:   r.Operation,
		Symbol:      r.Symbol,
		Description: r.Description,
		Qty:         r.Qty,
		FilledQty:   r.FilledQty,
		Price:       r.Price.StringFixed(2),
		Status:      r.Status,
		Date:        r.Date,
		Expiration:  r.Expiration,
		NoRef:       r.NoRef,
		ExtRef:      r.ExtRef,
	}
}

func toPageResponse(v usecase.PageView) dto.PageResponse {
	res := dto.PageResponse{
		ID:            v.ID,
		Criteria:      toCriteriaResponse(v.Criteria),
		PeriodOptions: toOptionResponses(v.PeriodOptions),
		StatusOptions: toOptionResponses(v.StatusOptions),
		Width:         v.Width,
		Narrow:        viewport.IsNarrow(v.Width),
		Ready:         v.Ready,
		ResultCount:   ResultCount(len(v.Rows)),
		Columns:       make([]dto.ColumnResponse, 0, len(v.Columns)),
		Rows:          make([]dto.RowResponse, 0, len(v.Rows)),
		LastError:     v.LastError,
	}
	if v.Sort.Key != "" {
		res.Sort = &dto.SortResponse{Key: v.Sort.Key, Order: string(v.Sort.Order)}
	}
	for _, c := range v.Columns {
		res.Columns = append(res.Columns, dto.ColumnResponse{
			Key:      c.Key,
			Label:    c.Label,
			Sortable: c.Sortable,
			Center:   c.Center,
			MinWidth: c.MinWidth,
		})
	}
	for _, row := range v.Rows {
		cells := make(map[string]string, len(v.Columns))
		for i, c := range v.Columns {
			cells[c.Key] = row.Cells[i]
		}
		res.Rows = append(res.Rows, dto.RowResponse{
			Index:  row.Index,
			Record: toOrderResponse(row.Record),
			Cells:  cells,
		})
	}
	return res
}

func toDetailResponse(row int, d usecase.DetailView) dto.DetailResponse {
	res := dto.DetailResponse{
		Row:             row,
		Title:           d.Title,
		FullReviewLabel: d.FullReviewLabel,
		Actions:         make([]dto.ActionResponse, 0, len(d.Actions)),
		ActionAlign:     d.ActionAlign,
		Fields:          make([]dto.FieldResponse, 0, len(d.Fields)),
		WarningsTitle:   d.WarningsTitle,
		Warnings:        d.Warnings,
	}
	for _, a := range d.Actions {
		res.Actions = append(res.Actions, dto.ActionResponse{Label: a.Label, Variant: a.Variant, Inert: a.Inert})
	}
	for _, f := range d.Fields {
		res.Fields = append(res.Fields, dto.FieldResponse{Label: f.Label, Value: f.Value})
	}
	return res
}
