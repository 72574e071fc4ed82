// Package handler はordersearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"order_search/internal/feature/ordersearch/domain"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/transport/http/dto"
	"order_search/internal/feature/ordersearch/usecase"
)

// PageUsecase は注文検索ページ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PageUsecase interface {
	Mount(ctx context.Context, width int) (usecase.PageView, error)
	View(id uuid.UUID, sort usecase.SortSpec) (usecase.PageView, error)
	SetField(id uuid.UUID, field entity.Field, value string) (entity.SearchCriteria, error)
	Search(ctx context.Context, id uuid.UUID, sort usecase.SortSpec) (usecase.PageView, error)
	Resize(id uuid.UUID, width int, sort usecase.SortSpec) (usecase.PageView, error)
	Detail(id uuid.UUID, row int) (usecase.DetailView, error)
	Unmount(id uuid.UUID) error
}

// OrderSearchHandler は注文検索ページのJSON APIを処理します。
type OrderSearchHandler struct {
	uc PageUsecase
}

// NewOrderSearchHandler は指定されたusecaseでOrderSearchHandlerの新しいインスタンスを生成します。
func NewOrderSearchHandler(uc PageUsecase) *OrderSearchHandler {
	return &OrderSearchHandler{uc: uc}
}

// statusFor はドメインエラーをHTTPステータスに対応付けます。該当しない場合は fallback です。
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrPageNotFound), errors.Is(err, domain.ErrRowNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownField), errors.Is(err, domain.ErrUnknownColumn):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPageNotReady):
		return http.StatusConflict
	default:
		return fallback
	}
}

func writeError(c *gin.Context, err error, fallback int) {
	status := statusFor(err, fallback)
	if status >= http.StatusInternalServerError {
		slog.Error("order search request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// CreatePage は新しいページをマウントし、最初の検索結果を含むビューを返します。
//
// POST /api/order-search/pages
func (h *OrderSearchHandler) CreatePage(c *gin.Context) {
	var req dto.CreatePageRequest
	// 空ボディは既定幅
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	v, err := h.uc.Mount(c.Request.Context(), req.Width)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toPageResponse(v))
}

// GetPage は現在のビューを返します。
//
// GET /api/order-search/pages/:id?sort=price&order=desc
func (h *OrderSearchHandler) GetPage(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	v, err := h.uc.View(id, sortSpec(c))
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(v))
}

// SetField はフォームの1フィールドを更新し、更新後のフォーム状態を返します。検索は行いません。
//
// PATCH /api/order-search/pages/:id/form
func (h *OrderSearchHandler) SetField(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	var req dto.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	field, err := entity.ParseField(req.Field)
	if err != nil {
		writeError(c, err, http.StatusBadRequest)
		return
	}
	criteria, err := h.uc.SetField(id, field, req.Value)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toCriteriaResponse(criteria))
}

// Search は現在のフォーム状態で検索し直したビューを返します。
// 検索ソースの失敗は502です。
//
// POST /api/order-search/pages/:id/search
func (h *OrderSearchHandler) Search(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	v, err := h.uc.Search(c.Request.Context(), id, sortSpec(c))
	if err != nil {
		writeError(c, err, http.StatusBadGateway)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(v))
}

// Resize はページにリサイズイベントを送り、再描画後のビューを返します。
//
// PUT /api/order-search/pages/:id/viewport
func (h *OrderSearchHandler) Resize(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	var req dto.ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	v, err := h.uc.Resize(id, req.Width, sortSpec(c))
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toPageResponse(v))
}

// Detail は検索順で :row 番目の注文の詳細パネルを返します。
//
// GET /api/order-search/pages/:id/rows/:row/detail
func (h *OrderSearchHandler) Detail(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	row, ok := rowIndex(c)
	if !ok {
		return
	}
	d, err := h.uc.Detail(id, row)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toDetailResponse(row, d))
}

// DeletePage はページをアンマウントします。
//
// DELETE /api/order-search/pages/:id
func (h *OrderSearchHandler) DeletePage(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}
	if err := h.uc.Unmount(id); err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// Dropdowns はSelect Allを先頭に含む期間・ステータスの選択肢を返します。
//
// GET /api/order-search/dropdowns
func (h *OrderSearchHandler) Dropdowns(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DropdownsResponse{
		PeriodOptions: toOptionResponses(entity.WithSelectAll(entity.PeriodOptions)),
		StatusOptions: toOptionResponses(entity.WithSelectAll(entity.StatusOptions)),
	})
}
