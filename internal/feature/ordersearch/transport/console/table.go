// Package console は注文検索ページを端末向けに描画します。
package console

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"order_search/internal/feature/ordersearch/usecase"
)

// newTableWriter は既定スタイルのtable.Writerを生成します。
func newTableWriter(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// RenderTable は表示中の列だけで結果テーブルを描画します。
// テーブルが準備完了でない場合は件数行とエラーのみ出力します。
func RenderTable(w io.Writer, v usecase.PageView) error {
	c := v.Criteria
	if _, err := fmt.Fprintf(w, "Period: %s  Status: %s  From: %s  To: %s\n",
		orAll(c.Period), orAll(c.Status), c.From, c.To); err != nil {
		return err
	}
	if v.LastError != "" {
		if _, err := fmt.Fprintf(w, "Error: %s\n", v.LastError); err != nil {
			return err
		}
	}
	if !v.Ready {
		_, err := fmt.Fprintln(w, "Search results: 0")
		return err
	}
	if _, err := fmt.Fprintf(w, "Search results: %d\n", len(v.Rows)); err != nil {
		return err
	}

	t := newTableWriter(w)
	header := make(table.Row, 0, len(v.Columns)+1)
	header = append(header, "#")
	configs := make([]table.ColumnConfig, 0, len(v.Columns))
	for i, col := range v.Columns {
		label := col.Label
		if col.Key == v.Sort.Key {
			label += sortMark(v.Sort.Order)
		}
		header = append(header, label)
		align := text.AlignLeft
		if col.Center {
			align = text.AlignCenter
		}
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: align, AlignHeader: align})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for _, row := range v.Rows {
		r := make(table.Row, 0, len(row.Cells)+1)
		r = append(r, row.Index)
		for _, cell := range row.Cells {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}
	t.Render()
	return nil
}

// RenderDetail は展開行の詳細パネルを描画します。
func RenderDetail(w io.Writer, d usecase.DetailView) error {
	if _, err := fmt.Fprintf(w, "%s  [%s]\n", d.Title, d.FullReviewLabel); err != nil {
		return err
	}

	t := newTableWriter(w)
	for _, f := range d.Fields {
		t.AppendRow(table.Row{f.Label, f.Value})
	}
	t.Render()

	actions := ""
	for i, a := range d.Actions {
		if i > 0 {
			actions += " "
		}
		actions += "[" + a.Label + "]"
	}
	if _, err := fmt.Fprintf(w, "Actions (%s): %s\n", d.ActionAlign, actions); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, d.WarningsTitle); err != nil {
		return err
	}
	for _, warn := range d.Warnings {
		if _, err := fmt.Fprintf(w, "  - %s\n", warn); err != nil {
			return err
		}
	}
	return nil
}

func orAll(v string) string {
	if v == "" {
		return "Select All"
	}
	return v
}

func sortMark(o usecase.SortOrder) string {
	if o == usecase.SortDesc {
		return " ↓"
	}
	return " ↑"
}
