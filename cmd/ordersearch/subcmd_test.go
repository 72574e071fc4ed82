package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"order_search/internal/feature/ordersearch/adapters"
	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/usecase"
)

func TestLoadPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		edits       []formEdit
		sort        usecase.SortSpec
		expectedErr error
		mounted     int
	}{
		{
			name:    "no edits",
			mounted: 1,
		},
		{
			name:    "edits search again",
			edits:   []formEdit{{field: entity.FieldStatus, value: "completed"}},
			sort:    usecase.SortSpec{Key: "price", Order: usecase.SortDesc},
			mounted: 1,
		},
		{
			name:        "unknown field unmounts",
			edits:       []formEdit{{field: entity.FieldStatus, value: "waiting"}, {field: entity.Field("account"), value: "1"}},
			expectedErr: domain.ErrUnknownField,
		},
		{
			name:        "unknown sort column unmounts",
			sort:        usecase.SortSpec{Key: "nope"},
			expectedErr: domain.ErrUnknownColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewPageUsecase(adapters.NewSampleOrders())
			_, v, err := loadPage(context.Background(), uc, 1024, tt.edits, tt.sort)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, v.Rows, 15)
			}
			assert.Equal(t, tt.mounted, uc.Count())
		})
	}
}

func TestCloseDB(t *testing.T) {
	t.Parallel()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	closeDB(gdb)

	assert.Error(t, sqlDB.Ping())
}
