// Package http は外部API呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent は外部APIへ送るUser-Agentの既定値です。
const DefaultUserAgent = "order-search/1.0"

// ClientOption はNewHTTPClientの設定を変更します。
type ClientOption func(*clientConfig)

type clientConfig struct {
	userAgent      string
	maxIdlePerHost  int
	base           http.RoundTripper
}

// WithUserAgent はリクエストに付与するUser-Agentを指定します。空文字は付与しません。
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) { c.userAgent = ua }
}

// WithMaxIdleConnsPerHost はホスト単位のアイドル接続上限を指定します。
func WithMaxIdleConnsPerHost(n int) ClientOption {
	return func(c *clientConfig) {
		if n > 0 {
			c.maxIdlePerHost = n
		}
	}
}

// WithTransport は下位のRoundTripperを差し替えます（テスト用）。
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *clientConfig) { c.base = rt }
}

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 注文APIは同一ホストへ短い間隔で問い合わせるため、ホスト単位のアイドル接続を多めに保持します。
// http.DefaultClientにはタイムアウトがないため使用しないこと。
func NewHTTPClient(timeout time.Duration, opts ...ClientOption) *http.Client {
	cfg := clientConfig{userAgent: DefaultUserAgent, maxIdlePerHost: 10}
	for _, o := range opts {
		o(&cfg)
	}

	base := cfg.base
	if base == nil {
		base = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: cfg.maxIdlePerHost,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 5 * time.Second,
		}
	}

	var rt http.RoundTripper = base
	if cfg.userAgent != "" {
		rt = &userAgentTransport{base: base, ua: cfg.userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

// userAgentTransport は呼び出し元がUser-Agentを設定していない場合に既定値を付与します。
type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTripperはリクエストを変更してはならない
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.ua)
	return t.base.RoundTrip(r)
}
