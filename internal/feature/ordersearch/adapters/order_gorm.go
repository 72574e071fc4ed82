package adapters

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/usecase"
	"order_search/internal/platform/dateutil"
)

// orderGorm はordersテーブルを検索するOrderSearchService実装です。
type orderGorm struct {
	db *gorm.DB
}

var _ usecase.OrderSearchService = (*orderGorm)(nil)

// NewOrderRepository は指定されたDB接続でorderGormの新しいインスタンスを生成します。
func NewOrderRepository(db *gorm.DB) *orderGorm {
	return &orderGorm{db: db}
}

// OrderDetailModel はordersテーブルに埋め込まれる詳細カラムです。
type OrderDetailModel struct {
	FirstName    string          `gorm:"size:100"`
	LastName     string          `gorm:"size:100"`
	AccountNo    string          `gorm:"size:32"`
	Margin       string          `gorm:"size:64"`
	NetAmount    string          `gorm:"size:64"`
	Price        decimal.Decimal `gorm:"type:numeric(18,4)"`
	ExchangeRate decimal.Decimal `gorm:"type:numeric(18,6)"`
	OSLimit      decimal.Decimal `gorm:"type:numeric(18,4)"`
	ReferenceNo  string          `gorm:"size:32"`
	DateTime     string          `gorm:"size:19"`
	Telephone    string          `gorm:"size:32"`
	UserID       string          `gorm:"size:32"`
}

// OrderModel はordersテーブルのGORMモデルです。
// 日時は表示形式（yyyy/MM/dd HH:mm:ss）の文字列で保存し、辞書順で範囲検索します。
type OrderModel struct {
	ID          uint            `gorm:"primaryKey"`
	AccountNo   string          `gorm:"size:32;not null;index"`
	Operation   string          `gorm:"size:8;not null"`
	Symbol      string          `gorm:"size:20;not null"`
	Description string          `gorm:"size:255"`
	Qty         int             `gorm:"not null"`
	FilledQty   int             `gorm:"not null;default:0"`
	Price       decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Status      string          `gorm:"size:16;not null;index"`
	Date        string          `gorm:"size:19;not null;index"`
	Expiration  string          `gorm:"size:19"`
	NoRef       string          `gorm:"size:32"`
	ExtRef      string          `gorm:"size:32"`

	Detail OrderDetailModel `gorm:"embedded;embeddedPrefix:detail_"`
}

func (OrderModel) TableName() string {
	return "orders"
}

func toOrderModel(e entity.OrderRecord) OrderModel {
	d := e.Detail
	return OrderModel{
		AccountNo:   e.AccountNo,
		Operation:   e.Operation,
		Symbol:      e.Symbol,
		Description: e.Description,
		Qty:         e.Qty,
		FilledQty:   e.FilledQty,
		Price:       e.Price,
		Status:      e.Status,
		Date:        e.Date,
		Expiration:  e.Expiration,
		NoRef:       e.NoRef,
		ExtRef:      e.ExtRef,
		Detail: OrderDetailModel{
			FirstName:    d.FirstName,
			LastName:     d.LastName,
			AccountNo:    d.AccountNo,
			Margin:       d.Margin,
			NetAmount:    d.NetAmount,
			Price:        d.Price,
			ExchangeRate: d.ExchangeRate,
			OSLimit:      d.OSLimit,
			ReferenceNo:  d.ReferenceNo,
			DateTime:     d.DateTime,
			Telephone:    d.Telephone,
			UserID:       d.UserID,
		},
	}
}

func (m OrderModel) toEntity() entity.OrderRecord {
	d := m.Detail
	return entity.OrderRecord{
		AccountNo:   m.AccountNo,
		Operation:   m.Operation,
		Symbol:      m.Symbol,
		Description: m.Description,
		Qty:         m.Qty,
		FilledQty:   m.FilledQty,
		Price:       m.Price,
		Status:      m.Status,
		Date:        m.Date,
		Expiration:  m.Expiration,
		NoRef:       m.NoRef,
		ExtRef:      m.ExtRef,
		Detail: entity.OrderDetail{
			FirstName:    d.FirstName,
			LastName:     d.LastName,
			AccountNo:    d.AccountNo,
			Margin:       d.Margin,
			NetAmount:    d.NetAmount,
			Price:        d.Price,
			ExchangeRate: d.ExchangeRate,
			OSLimit:      d.OSLimit,
			ReferenceNo:  d.ReferenceNo,
			DateTime:     d.DateTime,
			Telephone:    d.Telephone,
			UserID:       d.UserID,
		},
	}
}

// InsertBatch は注文をまとめて保存します。
func (r *orderGorm) InsertBatch(ctx context.Context, records []entity.OrderRecord) error {
	if len(records) == 0 {
		return nil
	}
	ms := make([]OrderModel, 0, len(records))
	for _, e := range records {
		ms = append(ms, toOrderModel(e))
	}
	return r.db.WithContext(ctx).Create(&ms).Error
}

// Search はステータスと日付範囲で注文を絞り込み、登録順に返します。
// 空のステータスは全件、解釈できない日付はその境界を無視します。
func (r *orderGorm) Search(ctx context.Context, c entity.SearchCriteria) ([]entity.OrderRecord, error) {
	q := r.db.WithContext(ctx).Model(&OrderModel{})
	if c.Status != "" {
		q = q.Where("LOWER(status) = ?", strings.ToLower(c.Status))
	}
	if from, ok := rangeBound(c.From, "00:00:00"); ok {
		q = q.Where("date >= ?", from)
	}
	if to, ok := rangeBound(c.To, "23:59:59"); ok {
		q = q.Where("date <= ?", to)
	}

	var rows []OrderModel
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.OrderRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}

// rangeBound は yyyy-MM-dd の日付を注文日時の表示形式に変換します。
func rangeBound(date, clock string) (string, bool) {
	t, err := time.Parse(dateutil.DateLayout, date)
	if err != nil {
		return "", false
	}
	return t.Format("2006/01/02") + " " + clock, true
}
