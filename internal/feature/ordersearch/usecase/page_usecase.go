package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/platform/viewport"
)

// DefaultPageIdleTTL は操作のないページを破棄するまでの既定の時間です。
const DefaultPageIdleTTL = 30 * time.Minute

// DefaultMaxPages は同時にマウントできるページ数の既定の上限です。
const DefaultMaxPages = 1000

// TableRow はテーブルの1行です。Indexは検索結果内の位置で、行の展開に使います。
type TableRow struct {
	Index  int
	Record entity.OrderRecord
	Cells  []string
}

// PageView はページ状態に、表示中の列と並べ替え済みの行を加えたものです。
// テーブルが準備完了でない間はColumnsとRowsは空です。
type PageView struct {
	PageState
	Sort    SortSpec
	Columns []Column
	Rows    []TableRow
}

// BuildView は状態から表示用のテーブルを組み立てます。
func BuildView(st PageState, sort SortSpec) (PageView, error) {
	v := PageView{PageState: st, Sort: sort}
	if !st.Ready {
		return v, nil
	}
	order, err := SortedIndexes(st.Records, sort)
	if err != nil {
		return PageView{}, err
	}
	v.Columns = VisibleColumns(st.Width)
	v.Rows = make([]TableRow, 0, len(order))
	for _, i := range order {
		r := st.Records[i]
		cells := make([]string, 0, len(v.Columns))
		for _, c := range v.Columns {
			cells = append(cells, c.Cell(r))
		}
		v.Rows = append(v.Rows, TableRow{Index: i, Record: r, Cells: cells})
	}
	return v, nil
}

// PageOption はPageUsecaseの設定を変更します。
type PageOption func(*PageUsecase)

// WithClock はページの既定日付と最終操作時刻に使う時計を差し替えます。
func WithClock(now func() time.Time) PageOption {
	return func(u *PageUsecase) { u.now = now }
}

// WithIdleTTL は操作のないページを破棄するまでの時間を設定します。
func WithIdleTTL(ttl time.Duration) PageOption {
	return func(u *PageUsecase) {
		if ttl > 0 {
			u.idleTTL = ttl
		}
	}
}

// WithDefaultWidth は幅未指定でマウントしたページのビューポート幅を設定します。
func WithDefaultWidth(width int) PageOption {
	return func(u *PageUsecase) {
		if width > 0 {
			u.defaultWidth = width
		}
	}
}

// WithMaxPages は同時にマウントできるページ数の上限を設定します。
// 上限に達した状態でマウントすると、最も長く操作のないページを破棄します。
func WithMaxPages(n int) PageOption {
	return func(u *PageUsecase) {
		if n > 0 {
			u.maxPages = n
		}
	}
}

// PageUsecase はマウント済みページをIDで管理します。HTTPハンドラーから並行に呼ばれます。
type PageUsecase struct {
	source       OrderSearchService
	now          func() time.Time
	idleTTL      time.Duration
	defaultWidth int
	maxPages     int

	mu    sync.RWMutex
	pages map[uuid.UUID]*Page
}

// NewPageUsecase はPageUsecaseの新しいインスタンスを生成します。
func NewPageUsecase(source OrderSearchService, opts ...PageOption) *PageUsecase {
	u := &PageUsecase{
		source:       source,
		now:          time.Now,
		idleTTL:      DefaultPageIdleTTL,
		defaultWidth: viewport.DefaultWidth,
		maxPages:     DefaultMaxPages,
		pages:        make(map[uuid.UUID]*Page),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Mount は新しいページをマウントし、最初の検索まで済ませたビューを返します。
// 最初の検索が失敗してもページはマウントされたままで、LastErrorに理由が入ります。
func (u *PageUsecase) Mount(ctx context.Context, width int) (PageView, error) {
	if width <= 0 {
		width = u.defaultWidth
	}
	id := uuid.New()
	page := NewPage(id.String(), u.source, viewport.NewObserver(width), u.now)

	u.mu.Lock()
	evicted := u.evictOldestLocked()
	u.pages[id] = page
	u.mu.Unlock()

	if evicted != nil {
		evicted.Unmount()
		slog.Info("order search page limit reached; evicted least recently used page", "page_id", evicted.id, "max_pages", u.maxPages)
	}

	if err := page.Mount(ctx); err != nil {
		slog.Warn("initial order search failed", "page_id", id.String(), "error", err)
	}
	slog.Info("order search page mounted", "page_id", id.String(), "width", width)
	return BuildView(page.State(), SortSpec{})
}

// evictOldestLocked は上限に達していれば最も長く操作のないページを取り除いて返します。u.mu を保持して呼ぶこと。
func (u *PageUsecase) evictOldestLocked() *Page {
	if u.maxPages <= 0 || len(u.pages) < u.maxPages {
		return nil
	}
	var (
		oldestID uuid.UUID
		oldest   *Page
		since    time.Time
	)
	for id, page := range u.pages {
		t := page.idleSince()
		if oldest == nil || t.Before(since) {
			oldestID, oldest, since = id, page, t
		}
	}
	delete(u.pages, oldestID)
	return oldest
}

func (u *PageUsecase) get(id uuid.UUID) (*Page, error) {
	u.mu.RLock()
	page, ok := u.pages[id]
	u.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPageNotFound, id)
	}
	return page, nil
}

// View は現在のページを指定の並び順で返します。
func (u *PageUsecase) View(id uuid.UUID, sort SortSpec) (PageView, error) {
	page, err := u.get(id)
	if err != nil {
		return PageView{}, err
	}
	page.touch()
	return BuildView(page.State(), sort)
}

// SetField はフォームの1フィールドを更新します。検索は実行しません。
func (u *PageUsecase) SetField(id uuid.UUID, field entity.Field, value string) (entity.SearchCriteria, error) {
	page, err := u.get(id)
	if err != nil {
		return entity.SearchCriteria{}, err
	}
	return page.SetField(field, value)
}

// Search は現在のフォーム状態で検索をやり直します。
func (u *PageUsecase) Search(ctx context.Context, id uuid.UUID, sort SortSpec) (PageView, error) {
	page, err := u.get(id)
	if err != nil {
		return PageView{}, err
	}
	if err := page.Search(ctx); err != nil {
		return PageView{}, err
	}
	return BuildView(page.State(), sort)
}

// Resize はページにリサイズイベントを送ります。
func (u *PageUsecase) Resize(id uuid.UUID, width int, sort SortSpec) (PageView, error) {
	page, err := u.get(id)
	if err != nil {
		return PageView{}, err
	}
	page.Resize(width)
	return BuildView(page.State(), sort)
}

// Detail は検索順で row 番目の注文の詳細パネルを返します。
func (u *PageUsecase) Detail(id uuid.UUID, row int) (DetailView, error) {
	page, err := u.get(id)
	if err != nil {
		return DetailView{}, err
	}
	return page.Detail(row)
}

// Unmount はページのリサイズ購読を解除して破棄します。
func (u *PageUsecase) Unmount(id uuid.UUID) error {
	u.mu.Lock()
	page, ok := u.pages[id]
	delete(u.pages, id)
	u.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrPageNotFound, id)
	}
	page.Unmount()
	slog.Info("order search page unmounted", "page_id", id.String())
	return nil
}

// Count はマウント中のページ数を返します。
func (u *PageUsecase) Count() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.pages)
}

// EvictIdle はidleTTLより長く操作のないページをアンマウントし、その数を返します。
func (u *PageUsecase) EvictIdle() int {
	cutoff := u.now().Add(-u.idleTTL)

	u.mu.Lock()
	var idle []*Page
	for id, page := range u.pages {
		if page.idleSince().Before(cutoff) {
			idle = append(idle, page)
			delete(u.pages, id)
		}
	}
	u.mu.Unlock()

	for _, page := range idle {
		page.Unmount()
	}
	if len(idle) > 0 {
		slog.Info("evicted idle order search pages", "count", len(idle))
	}
	return len(idle)
}

// RunJanitor は ctx が終わるまで interval ごとにEvictIdleを実行します。
func (u *PageUsecase) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.EvictIdle()
		}
	}
}
