package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/platform/viewport"
)

// Page は1つのマウント済み注文検索ページの状態を保持します。
// フォーム、検索結果、テーブルの準備完了フラグ、ビューポート幅を所有します。
type Page struct {
	id       string
	source   OrderSearchService
	observer *viewport.Observer
	now      func() time.Time

	mu            sync.RWMutex
	unsubscribe   func()
	mounted       bool
	width         int
	renders       int
	criteria      entity.SearchCriteria
	periodOptions []entity.DropdownOption
	statusOptions []entity.DropdownOption
	results       []entity.OrderRecord
	ready         bool
	lastErr       error
	generation    uint64
	lastActive    time.Time
}

// PageState はPageのある時点のコピーです。
type PageState struct {
	ID            string
	Criteria      entity.SearchCriteria
	PeriodOptions []entity.DropdownOption
	StatusOptions []entity.DropdownOption
	Width         int
	Renders       int
	Ready         bool
	Records       []entity.OrderRecord
	LastError     string
}

// NewPage はまだマウントされていないPageを生成します。
// 最終操作時刻は生成時刻から数えるため、マウント中のページがアイドルとして破棄されることはありません。
func NewPage(id string, source OrderSearchService, observer *viewport.Observer, now func() time.Time) *Page {
	if now == nil {
		now = time.Now
	}
	return &Page{
		id:         id,
		source:     source,
		observer:   observer,
		now:        now,
		width:      observer.Width(),
		lastActive: now(),
	}
}

// Mount はリサイズ購読を開始し、フォームの既定値とドロップダウンを設定して最初の検索を実行します。
// 二度目以降の呼び出しは何もしません。
func (p *Page) Mount(ctx context.Context) error {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return nil
	}
	p.mounted = true
	p.unsubscribe = p.observer.Subscribe(p.onResize)
	p.width = p.observer.Width()
	p.criteria = entity.NewDefaultCriteria(p.now())
	p.periodOptions = entity.WithSelectAll(entity.PeriodOptions)
	p.statusOptions = entity.WithSelectAll(entity.StatusOptions)
	p.lastActive = p.now()
	p.mu.Unlock()

	return p.Search(ctx)
}

// Unmount はリサイズ購読を一度だけ解除します。
func (p *Page) Unmount() {
	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mounted = false
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (p *Page) onResize(width int) {
	p.mu.Lock()
	p.width = width
	p.renders++
	p.lastActive = p.now()
	p.mu.Unlock()
}

// Resize はこのページのビューポートにリサイズイベントを送ります。
func (p *Page) Resize(width int) {
	p.observer.Resize(width)
}

// SetField はフォームの1フィールドを置き換えます。検索は実行しません。
func (p *Page) SetField(field entity.Field, value string) (entity.SearchCriteria, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := p.criteria.SetField(field, value)
	if err != nil {
		return p.criteria, err
	}
	p.criteria = next
	p.lastActive = p.now()
	return next, nil
}

// Search は現在のテーブルを破棄してから検索結果で丸ごと置き換えます。
// 結果が揃うまでreadyはfalseのままで、部分的な結果が見えることはありません。
// 実行中に新しい検索が始まった場合、古い検索の結果は捨てられます。
func (p *Page) Search(ctx context.Context) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	criteria := p.criteria
	p.results = nil
	p.ready = false
	p.lastErr = nil
	p.lastActive = p.now()
	p.mu.Unlock()

	records, err := p.source.Search(ctx, criteria)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		slog.Debug("discarding superseded search", "page_id", p.id, "generation", gen)
		return nil
	}
	if err != nil {
		p.lastErr = err
		return fmt.Errorf("search orders: %w", err)
	}
	p.results = records
	p.ready = true
	slog.Info("order search completed", "page_id", p.id, "results", len(records),
		"period", criteria.Period, "status", criteria.Status, "from", criteria.From, "to", criteria.To)
	return nil
}

// State はページ状態のコピーを返します。
func (p *Page) State() PageState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st := PageState{
		ID:            p.id,
		Criteria:      p.criteria,
		PeriodOptions: slices.Clone(p.periodOptions),
		StatusOptions: slices.Clone(p.statusOptions),
		Width:         p.width,
		Renders:       p.renders,
		Ready:         p.ready,
		Records:       slices.Clone(p.results),
	}
	if p.lastErr != nil {
		st.LastError = p.lastErr.Error()
	}
	return st
}

// Detail は row 番目（検索順）の注文の詳細パネルを返します。
func (p *Page) Detail(row int) (DetailView, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return DetailView{}, domain.ErrPageNotReady
	}
	if row < 0 || row >= len(p.results) {
		return DetailView{}, fmt.Errorf("%w: %d", domain.ErrRowNotFound, row)
	}
	p.lastActive = p.now()
	return RenderDetail(p.results[row], p.width), nil
}

// idleSince はページが最後に操作された時刻を返します。
func (p *Page) idleSince() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastActive
}

func (p *Page) touch() {
	p.mu.Lock()
	p.lastActive = p.now()
	p.mu.Unlock()
}
