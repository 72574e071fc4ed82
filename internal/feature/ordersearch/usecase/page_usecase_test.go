package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_search/internal/feature/ordersearch/adapters"
	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/usecase"
)

// stubSource はSearchFuncに処理を委譲するOrderSearchServiceです。
type stubSource struct {
	SearchFunc func(ctx context.Context, c entity.SearchCriteria) ([]entity.OrderRecord, error)
}

func (s *stubSource) Search(ctx context.Context, c entity.SearchCriteria) ([]entity.OrderRecord, error) {
	return s.SearchFunc(ctx, c)
}

func newUsecase(opts ...usecase.PageOption) *usecase.PageUsecase {
	opts = append([]usecase.PageOption{usecase.WithClock(func() time.Time {
		return time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	})}, opts...)
	return usecase.NewPageUsecase(adapters.NewSampleOrders(), opts...)
}

func mustParse(t *testing.T, id string) uuid.UUID {
	t.Helper()
	u, err := uuid.Parse(id)
	require.NoError(t, err)
	return u
}

// TestPageUsecase_Mount はマウント直後に15件の検索結果が準備完了になっていることを検証します。
func TestPageUsecase_Mount(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 1024)

	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.True(t, v.Ready)
	assert.Equal(t, "2026-10-01", v.Criteria.From)
	assert.Equal(t, "2026-10-31", v.Criteria.To)
	require.Len(t, v.Rows, 15)
	assert.Len(t, v.Columns, 12)
	assert.Equal(t, []string{"10000000", "Buy", "NA", "NATIONAL BANK OF CDA", "11", "1", "135.00", "Waiting",
		"2022/12/22 03:02:14", "2022/12/22 03:02:14", "95749207", "2-XXXXXXX1-0"}, v.Rows[0].Cells)
	assert.Equal(t, 1, uc.Count())
}

func TestPageUsecase_MountDefaultsWidth(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 1024, v.Width)
}

func TestPageUsecase_MountWithDefaultWidthOption(t *testing.T) {
	t.Parallel()

	uc := newUsecase(usecase.WithDefaultWidth(600))
	v, err := uc.Mount(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 600, v.Width)
	assert.Len(t, v.Columns, 4)
}

func TestPageUsecase_MountNarrow(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 500)

	require.NoError(t, err)
	require.Len(t, v.Columns, 4)
	assert.Equal(t, []string{"10000000", "Buy", "NA", "Waiting"}, v.Rows[0].Cells)
}

func TestPageUsecase_MountKeepsPageWhenFirstSearchFails(t *testing.T) {
	t.Parallel()

	uc := usecase.NewPageUsecase(&stubSource{SearchFunc: func(ctx context.Context, c entity.SearchCriteria) ([]entity.OrderRecord, error) {
		return nil, errors.New("timeout")
	}})

	v, err := uc.Mount(context.Background(), 1024)

	require.NoError(t, err)
	assert.False(t, v.Ready)
	assert.Equal(t, "timeout", v.LastError)
	assert.Nil(t, v.Columns)
	assert.Equal(t, 1, uc.Count())
}

// TestPageUsecase_SetFieldThenSearch はフィールド編集では検索されず、明示的な検索で15件が返ることを検証します。
func TestPageUsecase_SetFieldThenSearch(t *testing.T) {
	t.Parallel()

	calls := 0
	src := adapters.NewSampleOrders()
	uc := usecase.NewPageUsecase(&stubSource{SearchFunc: func(ctx context.Context, c entity.SearchCriteria) ([]entity.OrderRecord, error) {
		calls++
		return src.Search(ctx, c)
	}})
	v, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)
	id := mustParse(t, v.ID)

	c, err := uc.SetField(id, entity.FieldStatus, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", c.Status)
	assert.Equal(t, "transmission", c.Period)
	assert.Equal(t, 1, calls)

	v, err = uc.Search(context.Background(), id, usecase.SortSpec{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, v.Rows, 15, "the sample source ignores the filters")
	assert.Equal(t, "completed", v.Criteria.Status)
}

func TestPageUsecase_ViewSorted(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)

	v, err = uc.View(mustParse(t, v.ID), usecase.SortSpec{Key: "price", Order: usecase.SortDesc})
	require.NoError(t, err)

	assert.Equal(t, "744.00", v.Rows[0].Cells[6])
	assert.Equal(t, 2, v.Rows[0].Index)
	assert.Equal(t, "135.00", v.Rows[14].Cells[6])
	assert.Equal(t, 0, v.Rows[14].Index)
}

func TestPageUsecase_ViewUnknownSortColumn(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)

	_, err = uc.View(mustParse(t, v.ID), usecase.SortSpec{Key: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)
}

func TestPageUsecase_Resize(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)
	id := mustParse(t, v.ID)

	v, err = uc.Resize(id, 500, usecase.SortSpec{})
	require.NoError(t, err)
	assert.Len(t, v.Columns, 4)
	assert.Equal(t, 1, v.Renders)

	d, err := uc.Detail(id, 0)
	require.NoError(t, err)
	assert.Equal(t, usecase.AlignStart, d.ActionAlign)

	_, err = uc.Resize(id, 1280, usecase.SortSpec{})
	require.NoError(t, err)
	d, err = uc.Detail(id, 0)
	require.NoError(t, err)
	assert.Equal(t, usecase.AlignEnd, d.ActionAlign)
}

func TestPageUsecase_Detail(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)
	id := mustParse(t, v.ID)

	for row := 0; row < 15; row++ {
		d, err := uc.Detail(id, row)
		require.NoError(t, err)
		assert.Len(t, d.Fields, 8)
		assert.Len(t, d.Warnings, 6)
	}

	_, err = uc.Detail(id, 15)
	assert.ErrorIs(t, err, domain.ErrRowNotFound)
}

func TestPageUsecase_Unmount(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	v, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)
	id := mustParse(t, v.ID)

	require.NoError(t, uc.Unmount(id))
	assert.Equal(t, 0, uc.Count())

	assert.ErrorIs(t, uc.Unmount(id), domain.ErrPageNotFound)
	_, err = uc.View(id, usecase.SortSpec{})
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
	_, err = uc.SetField(id, entity.FieldTo, "2026-10-30")
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}

// TestPageUsecase_EvictIdle はidleTTLを過ぎたページだけが破棄されることを検証します。
func TestPageUsecase_EvictIdle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	uc := usecase.NewPageUsecase(adapters.NewSampleOrders(),
		usecase.WithClock(func() time.Time { return now }),
		usecase.WithIdleTTL(time.Minute),
	)

	old, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	fresh, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)

	assert.Equal(t, 1, uc.EvictIdle())
	assert.Equal(t, 1, uc.Count())

	_, err = uc.View(mustParse(t, old.ID), usecase.SortSpec{})
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
	_, err = uc.View(mustParse(t, fresh.ID), usecase.SortSpec{})
	assert.NoError(t, err)
}

// TestPageUsecase_MountEvictsLeastRecentlyUsedAtLimit は上限到達時に最も長く操作のないページだけが破棄されることを検証します。
func TestPageUsecase_MountEvictsLeastRecentlyUsedAtLimit(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	uc := usecase.NewPageUsecase(adapters.NewSampleOrders(),
		usecase.WithClock(func() time.Time { return now }),
		usecase.WithMaxPages(2),
	)

	first, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)
	now = now.Add(time.Minute)
	second, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)

	// firstを操作してsecondを最古にする
	now = now.Add(time.Minute)
	_, err = uc.View(mustParse(t, first.ID), usecase.SortSpec{})
	require.NoError(t, err)

	now = now.Add(time.Minute)
	third, err := uc.Mount(context.Background(), 1024)
	require.NoError(t, err)

	assert.Equal(t, 2, uc.Count())
	_, err = uc.View(mustParse(t, second.ID), usecase.SortSpec{})
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
	_, err = uc.View(mustParse(t, first.ID), usecase.SortSpec{})
	assert.NoError(t, err)
	_, err = uc.View(mustParse(t, third.ID), usecase.SortSpec{})
	assert.NoError(t, err)
}

func TestPageUsecase_RunJanitorStopsOnCancel(t *testing.T) {
	t.Parallel()

	uc := newUsecase()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		uc.RunJanitor(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
