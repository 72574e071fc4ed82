// Package dto はordersearchフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreatePageRequest は POST /pages のリクエストボディです。width省略時は既定幅でマウントします。
type CreatePageRequest struct {
	Width int `json:"width" binding:"omitempty,min=1"`
}

// ResizeRequest は PUT /pages/:id/viewport のリクエストボディです。
type ResizeRequest struct {
	Width int `json:"width" binding:"required,min=1"`
}

// SetFieldRequest は PATCH /pages/:id/form のリクエストボディです。
// value は検証せずそのまま保存します（空文字列は Select All）。
type SetFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}
