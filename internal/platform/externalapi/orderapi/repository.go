package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/usecase"
	"order_search/internal/platform/externalapi/orderapi/dto"
	"order_search/internal/shared/ratelimiter"
)

// OrderAPI はリモートの注文検索APIから注文を取得するOrderSearchService実装です。
type OrderAPI struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.Limiter
}

// OrderAPIがOrderSearchServiceを実装していることをコンパイル時に検証します。
var _ usecase.OrderSearchService = (*OrderAPI)(nil)

// NewOrderAPI は指定された設定とHTTPクライアントでOrderAPIの新しいインスタンスを生成します。
// limiter が nil の場合は呼び出し頻度を制限しません。
func NewOrderAPI(cfg Config, client *http.Client, limiter ratelimiter.Limiter) *OrderAPI {
	return &OrderAPI{cfg: cfg, client: client, limiter: limiter}
}

// Search は検索条件をクエリパラメータとして送り、結果をドメインエンティティに変換して返します。
func (a *OrderAPI) Search(ctx context.Context, c entity.SearchCriteria) ([]entity.OrderRecord, error) {
	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	q := url.Values{}
	// 空の条件は送らない（Select All）
	for k, v := range map[string]string{
		"period": c.Period,
		"status": c.Status,
		"from":   c.From,
		"to":     c.To,
	} {
		if v != "" {
			q.Set(k, v)
		}
	}

	u := fmt.Sprintf("%s/orders/search?%s", a.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if a.cfg.APIKey != "" {
		req.Header.Set("X-API-Key", a.cfg.APIKey)
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("orderapi http %d", res.StatusCode)
	}

	var body dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		return nil, fmt.Errorf("orderapi: %s", body.Message)
	}

	out := make([]entity.OrderRecord, 0, len(body.Orders))
	for _, o := range body.Orders {
		r, err := toEntity(o)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.AccountNo, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func toEntity(o dto.Order) (entity.OrderRecord, error) {
	price, err := parseDecimal("price", o.Price)
	if err != nil {
		return entity.OrderRecord{}, err
	}
	dPrice, err := parseDecimal("detail price", o.Detail.Price)
	if err != nil {
		return entity.OrderRecord{}, err
	}
	rate, err := parseDecimal("exchange rate", o.Detail.ExchangeRate)
	if err != nil {
		return entity.OrderRecord{}, err
	}
	limit, err := parseDecimal("os limit", o.Detail.OSLimit)
	if err != nil {
		return entity.OrderRecord{}, err
	}

	return entity.OrderRecord{
		AccountNo:   o.AccountNo,
		Operation:   o.Operation,
		Symbol:      o.Symbol,
		Description: o.Description,
		Qty:         o.Qty,
		FilledQty:   o.FilledQty,
		Price:       price,
		Status:      o.Status,
		Date:        o.Date,
		Expiration:  o.Expiration,
		NoRef:       o.NoRef,
		ExtRef:      o.ExtRef,
		Detail: entity.OrderDetail{
			FirstName:    o.Detail.FirstName,
			LastName:     o.Detail.LastName,
			AccountNo:    o.Detail.AccountNo,
			Margin:       o.Detail.Margin,
			NetAmount:    o.Detail.NetAmount,
			Price:        dPrice,
			ExchangeRate: rate,
			OSLimit:      limit,
			ReferenceNo:  o.Detail.ReferenceNo,
			DateTime:     o.Detail.DateTime,
			Telephone:    o.Detail.Telephone,
			UserID:       o.Detail.UserID,
		},
	}, nil
}

// parseDecimal は空文字列をゼロとして扱います。
func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", field, s, err)
	}
	return d, nil
}
