package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/transport/http/dto"
	"order_search/internal/feature/ordersearch/transport/web"
	"order_search/internal/feature/ordersearch/usecase"
)

// formFields はHTMLフォームから受け付けるフィールドの順序です。
var formFields = []entity.Field{entity.FieldPeriod, entity.FieldStatus, entity.FieldFrom, entity.FieldTo}

// headerLink は並べ替えリンク付きの列見出しです。
type headerLink struct {
	Label    string
	URL      string
	Center   bool
	MinWidth string
	Active   bool
	Order    string
}

// htmlRow は展開リンク付きのテーブル行です。
type htmlRow struct {
	Cells     []string
	ExpandURL string
	Expanded  bool
}

// pageTemplateData はページテンプレートに渡す値です。
type pageTemplateData struct {
	Action  string
	Page    dto.PageResponse
	Headers []headerLink
	Rows    []htmlRow
	Detail  *dto.DetailResponse
}

// PageHTMLHandler は注文検索ページをサーバー側で描画します。
type PageHTMLHandler struct {
	uc PageUsecase
}

// NewPageHTMLHandler はPageHTMLHandlerの新しいインスタンスを生成します。
func NewPageHTMLHandler(uc PageUsecase) *PageHTMLHandler {
	return &PageHTMLHandler{uc: uc}
}

// Render はページを描画します。page が既存ページを指す場合はそれを再利用し、
// それ以外は width で新しいページをマウントします。
//
// GET /orders/search?page=<id>&width=1024&sort=price&order=desc&expand=2
// GET /orders/search?page=<id>&action=search&period=&status=waiting&from=...&to=...
func (h *PageHTMLHandler) Render(c *gin.Context) {
	ctx := c.Request.Context()
	sort := sortSpec(c)
	width, _ := strconv.Atoi(c.Query("width"))

	id, existing := h.existingPage(c)
	if existing && width > 0 {
		if _, err := h.uc.Resize(id, width, usecase.SortSpec{}); err != nil {
			h.fail(c, err, http.StatusInternalServerError)
			return
		}
	}
	if !existing {
		v, err := h.uc.Mount(ctx, width)
		if err != nil {
			h.fail(c, err, http.StatusInternalServerError)
			return
		}
		id = uuid.MustParse(v.ID)
	}

	if c.Query("action") == "search" {
		for _, f := range formFields {
			value, ok := c.GetQuery(string(f))
			if !ok {
				continue
			}
			if _, err := h.uc.SetField(id, f, value); err != nil {
				h.fail(c, err, http.StatusInternalServerError)
				return
			}
		}
		// 検索失敗はビューの LastError として表示する
		if _, err := h.uc.Search(ctx, id, usecase.SortSpec{}); err != nil {
			slog.Warn("order search from html form failed", "page_id", id.String(), "error", err)
		}
	}

	v, err := h.uc.View(id, sort)
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError)
		return
	}

	expand := -1
	var detail *dto.DetailResponse
	if s := c.Query("expand"); s != "" {
		row, err := strconv.Atoi(s)
		if err != nil {
			h.fail(c, errors.New("invalid expand row"), http.StatusBadRequest)
			return
		}
		d, err := h.uc.Detail(id, row)
		if err != nil {
			h.fail(c, err, http.StatusInternalServerError)
			return
		}
		res := toDetailResponse(row, d)
		detail, expand = &res, row
	}

	c.HTML(http.StatusOK, web.PageTemplate, buildTemplateData(c.Request.URL.Path, v, sort, expand, detail))
}

// existingPage は ?page= が既存ページを指していればそのIDを返します。
func (h *PageHTMLHandler) existingPage(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("page"))
	if err != nil {
		return uuid.Nil, false
	}
	if _, err := h.uc.View(id, usecase.SortSpec{}); err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *PageHTMLHandler) fail(c *gin.Context, err error, fallback int) {
	status := statusFor(err, fallback)
	if status >= http.StatusInternalServerError {
		slog.Error("order search page render failed", "error", err)
	}
	c.String(status, err.Error())
}

// buildTemplateData は並べ替え・展開リンクを組み立てます。
func buildTemplateData(path string, v usecase.PageView, sort usecase.SortSpec, expand int, detail *dto.DetailResponse) pageTemplateData {
	link := func(extra url.Values) string {
		q := url.Values{}
		q.Set("page", v.ID)
		if sort.Key != "" {
			q.Set("sort", sort.Key)
			q.Set("order", string(sort.Order))
		}
		for k, vs := range extra {
			q[k] = vs
		}
		return path + "?" + q.Encode()
	}

	data := pageTemplateData{
		Action: path,
		Page:   toPageResponse(v),
		Detail: detail,
	}
	for _, col := range v.Columns {
		active := col.Key == sort.Key
		next := usecase.SortAsc
		if active && sort.Order == usecase.SortAsc {
			next = usecase.SortDesc
		}
		data.Headers = append(data.Headers, headerLink{
			Label:    col.Label,
			URL:      link(url.Values{"sort": {col.Key}, "order": {string(next)}}),
			Center:   col.Center,
			MinWidth: col.MinWidth,
			Active:   active,
			Order:    string(sort.Order),
		})
	}
	for _, row := range v.Rows {
		expanded := row.Index == expand
		target := url.Values{"expand": {strconv.Itoa(row.Index)}}
		if expanded {
			// 展開中の行をもう一度押すと閉じる
			target = url.Values{}
		}
		data.Rows = append(data.Rows, htmlRow{
			Cells:     row.Cells,
			ExpandURL: link(target),
			Expanded:  expanded,
		})
	}
	return data
}
