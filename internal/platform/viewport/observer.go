// Package viewport はページごとのビューポート幅を監視可能な値として提供します。
package viewport

import "sync"

const (
	// Breakpoint はレスポンシブ表示を切り替える幅（px）です。
	Breakpoint = 768
	// DefaultWidth はクライアントが幅を送らなかった場合に使う幅です。
	DefaultWidth = 1024
)

// IsNarrow は幅がブレークポイント未満かどうかを返します。
func IsNarrow(width int) bool {
	return width < Breakpoint
}

// Observer は現在のビューポート幅を保持し、リサイズのたびに購読者へ通知します。
// デバウンスは行いません。
type Observer struct {
	mu        sync.RWMutex
	width     int
	nextID    int
	listeners map[int]func(width int)
}

// NewObserver は初期幅を持つObserverを生成します。
func NewObserver(width int) *Observer {
	return &Observer{
		width:     width,
		listeners: make(map[int]func(int)),
	}
}

// Width は現在の幅を返します。
func (o *Observer) Width() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.width
}

// Resize は幅を更新し、すべての購読者に同期的に通知します。
func (o *Observer) Resize(width int) {
	o.mu.Lock()
	o.width = width
	fns := make([]func(int), 0, len(o.listeners))
	for _, fn := range o.listeners {
		fns = append(fns, fn)
	}
	o.mu.Unlock()

	// ロック外で呼び出す（購読者がWidthを読めるように）
	for _, fn := range fns {
		fn(width)
	}
}

// Subscribe はリスナーを登録し、登録解除関数を返します。
// 返される関数は何度呼んでも一度だけ解除します。
func (o *Observer) Subscribe(fn func(width int)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.listeners, id)
			o.mu.Unlock()
		})
	}
}

// Listeners は登録中のリスナー数を返します。
func (o *Observer) Listeners() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.listeners)
}
