// Package web は注文検索ページのHTMLテンプレートを埋め込みで提供します。
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// PageTemplate はGinのHTMLレンダラーに登録するテンプレート名です。
const PageTemplate = "order_search.html"

// Templates は埋め込みテンプレートを解析して返します。
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files, "templates/*.html")
}
