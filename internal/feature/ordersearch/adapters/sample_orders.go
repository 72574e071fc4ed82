// Package adapters はordersearchフィーチャーの注文検索ソース実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/usecase"
)

// sampleOrders は検索条件を無視して固定の注文一覧を返すOrderSearchService実装です。
// 実際の注文検索APIが用意されるまでの既定のソースです。
type sampleOrders struct{}

var _ usecase.OrderSearchService = (*sampleOrders)(nil)

// NewSampleOrders はsampleOrdersの新しいインスタンスを生成します。
func NewSampleOrders() *sampleOrders {
	return &sampleOrders{}
}

// sampleRow はサンプル注文ごとに異なる値です。
type sampleRow struct {
	accountNo string
	qty       int
	filledQty int
	price     string
	date      string
	noRef     string
}

var sampleRows = []sampleRow{
	{accountNo: "10000000", qty: 11, filledQty: 1, price: "135.00", date: "2022/12/22 03:02:14", noRef: "95749207"},
	{accountNo: "00000001", qty: 5, price: "526.00", date: "2022/12/08 05:12:36", noRef: "13830581"},
	{accountNo: "00000002", qty: 90, price: "744.00", date: "2022/12/15 23:30:32", noRef: "13830581"},
	{accountNo: "00000003", qty: 15, price: "612.00", date: "2022/12/16 10:20:00", noRef: "13830583"},
	{accountNo: "00000004", qty: 20, price: "500.00", date: "2022/12/17 08:15:22", noRef: "13830584"},
	{accountNo: "00000005", qty: 40, price: "680.00", date: "2022/12/18 14:50:11", noRef: "13830585"},
	{accountNo: "00000006", qty: 10, price: "720.00", date: "2022/12/19 09:40:59", noRef: "13830586"},
	{accountNo: "00000007", qty: 7, price: "560.00", date: "2022/12/20 11:22:44", noRef: "13830587"},
	{accountNo: "00000008", qty: 12, price: "590.00", date: "2022/12/21 15:35:19", noRef: "13830588"},
	{accountNo: "00000009", qty: 35, price: "725.00", date: "2022/12/22 17:05:10", noRef: "13830589"},
	{accountNo: "00000010", qty: 50, price: "710.00", date: "2022/12/23 19:45:00", noRef: "13830590"},
	{accountNo: "00000011", qty: 30, price: "675.00", date: "2022/12/24 13:30:44", noRef: "13830591"},
	{accountNo: "00000012", qty: 60, price: "730.00", date: "2022/12/25 21:10:15", noRef: "13830592"},
	{accountNo: "00000013", qty: 8, price: "495.00", date: "2022/12/26 12:45:33", noRef: "13830593"},
	{accountNo: "00000014", qty: 22, price: "565.00", date: "2022/12/27 16:30:21", noRef: "13830594"},
}

// Search は毎回新しいスライスで固定の15件を返します。criteriaは使用しません。
func (s *sampleOrders) Search(ctx context.Context, _ entity.SearchCriteria) ([]entity.OrderRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.OrderRecord, 0, len(sampleRows))
	for i, r := range sampleRows {
		out = append(out, entity.OrderRecord{
			AccountNo:   r.accountNo,
			Operation:   "Buy",
			Symbol:      "NA",
			Description: "NATIONAL BANK OF CDA",
			Qty:         r.qty,
			FilledQty:   r.filledQty,
			Price:       decimal.RequireFromString(r.price),
			Status:      "Waiting",
			Date:        r.date,
			Expiration:  r.date,
			NoRef:       r.noRef,
			ExtRef:      fmt.Sprintf("2-XXXXXXX1-%d", i),
			Detail:      sampleDetail(),
		})
	}
	return out, nil
}

func sampleDetail() entity.OrderDetail {
	return entity.OrderDetail{
		FirstName:    "FIRST-NAME",
		LastName:     "LAST-NAME",
		AccountNo:    "10103ZA",
		Margin:       "US Margin",
		NetAmount:    "1,152.95 USD",
		Price:        decimal.RequireFromString("135.00"),
		ExchangeRate: decimal.RequireFromString("1.3357"),
		OSLimit:      decimal.RequireFromString("140.0"),
		ReferenceNo:  "1234567890",
		DateTime:     "2023/01/04 03:05:43",
		Telephone:    "000-000-0000",
		UserID:       "12344321",
	}
}
