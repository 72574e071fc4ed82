package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"order_search/internal/feature/ordersearch/domain/entity"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&OrderModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedSampleOrders はサンプルの15件と完了済みの1件を保存します。
func seedSampleOrders(t *testing.T, repo *orderGorm) {
	t.Helper()

	records, err := NewSampleOrders().Search(context.Background(), entity.SearchCriteria{})
	require.NoError(t, err)
	completed := records[0]
	completed.AccountNo = "20000000"
	completed.Status = "Completed"
	completed.Date = "2023/01/10 09:00:00"
	records = append(records, completed)

	require.NoError(t, repo.InsertBatch(context.Background(), records))
}

func TestNewOrderRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.db)
}

// TestOrderGorm_Search は検索条件による絞り込みをテーブル駆動テストで検証します。
func TestOrderGorm_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		criteria      entity.SearchCriteria
		expectedCount int
		firstAccount  string
	}{
		{
			name:          "select all",
			criteria:      entity.SearchCriteria{},
			expectedCount: 16,
			firstAccount:  "10000000",
		},
		{
			name:          "status is case insensitive",
			criteria:      entity.SearchCriteria{Status: "waiting"},
			expectedCount: 15,
			firstAccount:  "10000000",
		},
		{
			name:          "completed only",
			criteria:      entity.SearchCriteria{Status: "completed"},
			expectedCount: 1,
			firstAccount:  "20000000",
		},
		{
			name:          "date range is inclusive",
			criteria:      entity.SearchCriteria{From: "2022-12-20", To: "2022-12-22"},
			expectedCount: 4,
			firstAccount:  "10000000",
		},
		{
			name:          "malformed bound is ignored",
			criteria:      entity.SearchCriteria{From: "2023-01-01", To: "tomorrow"},
			expectedCount: 1,
			firstAccount:  "20000000",
		},
		{
			name:          "from after to yields nothing",
			criteria:      entity.SearchCriteria{From: "2023-01-31", To: "2022-12-01"},
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewOrderRepository(setupTestDB(t))
			seedSampleOrders(t, repo)

			got, err := repo.Search(context.Background(), tt.criteria)

			require.NoError(t, err)
			assert.Len(t, got, tt.expectedCount)
			if tt.firstAccount != "" && len(got) > 0 {
				assert.Equal(t, tt.firstAccount, got[0].AccountNo)
			}
		})
	}
}

func TestOrderGorm_Search_FieldValues(t *testing.T) {
	t.Parallel()

	repo := NewOrderRepository(setupTestDB(t))
	seedSampleOrders(t, repo)

	got, err := repo.Search(context.Background(), entity.SearchCriteria{})
	require.NoError(t, err)
	require.NotEmpty(t, got)

	first := got[0]
	assert.Equal(t, "NATIONAL BANK OF CDA", first.Description)
	assert.Equal(t, 11, first.Qty)
	assert.Equal(t, 1, first.FilledQty)
	assert.Equal(t, "135", first.Price.String())
	assert.Equal(t, "2-XXXXXXX1-0", first.ExtRef)
	assert.Equal(t, "LAST-NAME", first.Detail.LastName)
	assert.Equal(t, "1.3357", first.Detail.ExchangeRate.String())
	assert.Equal(t, "12344321", first.Detail.UserID)
}

func TestOrderGorm_InsertBatch_Empty(t *testing.T) {
	t.Parallel()

	repo := NewOrderRepository(setupTestDB(t))
	assert.NoError(t, repo.InsertBatch(context.Background(), nil))
}

func TestOrderGorm_ContextCancellation(t *testing.T) {
	t.Parallel()

	repo := NewOrderRepository(setupTestDB(t))
	seedSampleOrders(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// インメモリSQLiteはキャンセルされたコンテキストで常にエラーを返すとは限りません
	_, err := repo.Search(ctx, entity.SearchCriteria{})
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
