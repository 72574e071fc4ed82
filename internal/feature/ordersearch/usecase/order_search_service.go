// Package usecase はordersearchフィーチャーのページ状態とビジネスロジックを実装します。
package usecase

import (
	"context"

	"order_search/internal/feature/ordersearch/domain/entity"
)

// OrderSearchService は注文検索の呼び出し先を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type OrderSearchService interface {
	// Search は条件に一致する注文を順序付きで返します。
	// 返されるスライスは呼び出し元が所有します。
	Search(ctx context.Context, criteria entity.SearchCriteria) ([]entity.OrderRecord, error)
}
