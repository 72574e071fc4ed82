package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"order_search/internal/app/config"
	"order_search/internal/app/di"
	"order_search/internal/feature/ordersearch/adapters"
	"order_search/internal/feature/ordersearch/domain/entity"
	"order_search/internal/feature/ordersearch/transport/console"
	"order_search/internal/feature/ordersearch/usecase"
	"order_search/internal/platform/cache"
	infradb "order_search/internal/platform/db"
	jwtmw "order_search/internal/platform/jwt"
	infraredis "order_search/internal/platform/redis"
)

var (
	tableCommand = &cli.Command{
		Name:   "table",
		Usage:  "run a search and print the result table",
		Flags:  append([]cli.Flag{SortFlag, OrderFlag}, searchFlags...),
		Action: table,
	}
	detailCommand = &cli.Command{
		Name:   "detail",
		Usage:  "run a search and print the expanded detail of one row",
		Flags:  append([]cli.Flag{RowFlag}, searchFlags...),
		Action: detail,
	}
	tokenCommand = &cli.Command{
		Name:   "token",
		Usage:  "mint a bearer token for the JSON API (uses JWT_SECRET)",
		Flags:  []cli.Flag{SubjectFlag, EmailFlag, TTLFlag},
		Action: token,
	}
	seedCommand = &cli.Command{
		Name:   "seed",
		Usage:  "insert the sample orders into the database and drop cached searches",
		Action: seed,
	}
)

// formEdit はフラグで指定されたフォーム入力1件です。
type formEdit struct {
	field entity.Field
	value string
}

// formEdits は指定されたフォームフラグだけを返します。
func formEdits(ctx *cli.Context) []formEdit {
	var edits []formEdit
	for _, f := range []struct {
		flag  string
		field entity.Field
	}{
		{PeriodFlag.Name, entity.FieldPeriod},
		{StatusFlag.Name, entity.FieldStatus},
		{FromFlag.Name, entity.FieldFrom},
		{ToFlag.Name, entity.FieldTo},
	} {
		if ctx.IsSet(f.flag) {
			edits = append(edits, formEdit{field: f.field, value: ctx.String(f.flag)})
		}
	}
	return edits
}

// pageSession はコマンド1回分のマウント済みページと、終了時に閉じる接続です。
type pageSession struct {
	uc      *usecase.PageUsecase
	id      uuid.UUID
	view    usecase.PageView
	release func()
}

// Close はページをアンマウントし、開いた接続を閉じます。
func (s *pageSession) Close() {
	_ = s.uc.Unmount(s.id)
	s.release()
}

// openSession は設定されたソースでページをマウントし、フラグのフォーム値で検索し直します。
func openSession(ctx *cli.Context) (*pageSession, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var gdb *gorm.DB
	release := func() {}
	if cfg.OrderSource == config.SourceDatabase {
		if gdb, err = infradb.OpenDB(cfg.DB); err != nil {
			return nil, err
		}
		release = func() { closeDB(gdb) }
	}
	source, err := di.NewOrderSource(cfg, gdb, nil)
	if err != nil {
		release()
		return nil, err
	}

	uc := usecase.NewPageUsecase(source)
	sort := usecase.SortSpec{Key: ctx.String(SortFlag.Name), Order: usecase.ParseSortOrder(ctx.String(OrderFlag.Name))}
	id, v, err := loadPage(ctx.Context, uc, ctx.Int(WidthFlag.Name), formEdits(ctx), sort)
	if err != nil {
		release()
		return nil, err
	}
	return &pageSession{uc: uc, id: id, view: v, release: release}, nil
}

// loadPage はページをマウントしてフォーム入力を反映します。入力があれば検索し直します。
// 途中で失敗した場合はマウントしたページをアンマウントしてから返ります。
func loadPage(ctx context.Context, uc *usecase.PageUsecase, width int, edits []formEdit, sort usecase.SortSpec) (uuid.UUID, usecase.PageView, error) {
	v, err := uc.Mount(ctx, width)
	if err != nil {
		return uuid.Nil, usecase.PageView{}, err
	}
	id, err := uuid.Parse(v.ID)
	if err != nil {
		return uuid.Nil, usecase.PageView{}, err
	}

	fail := func(err error) (uuid.UUID, usecase.PageView, error) {
		_ = uc.Unmount(id)
		return uuid.Nil, usecase.PageView{}, err
	}
	for _, e := range edits {
		if _, err := uc.SetField(id, e.field, e.value); err != nil {
			return fail(err)
		}
	}

	if len(edits) > 0 {
		v, err = uc.Search(ctx, id, sort)
	} else {
		v, err = uc.View(id, sort)
	}
	if err != nil {
		return fail(err)
	}
	return id, v, nil
}

// closeDB はGORMの下にあるコネクションプールを閉じます。
func closeDB(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		slog.Warn("failed to close database", "error", err)
	}
}

func table(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	return console.RenderTable(ctx.App.Writer, s.view)
}

func detail(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.uc.Detail(s.id, ctx.Int(RowFlag.Name))
	if err != nil {
		return err
	}
	return console.RenderDetail(ctx.App.Writer, d)
}

func token(ctx *cli.Context) error {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	tok, err := jwtmw.NewGenerator(secret, ctx.Duration(TTLFlag.Name)).
		GenerateToken(ctx.String(SubjectFlag.Name), ctx.String(EmailFlag.Name))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, tok)
	return err
}

func seed(ctx *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gdb, err := infradb.OpenDB(cfg.DB)
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	records, err := adapters.NewSampleOrders().Search(ctx.Context, entity.SearchCriteria{})
	if err != nil {
		return err
	}
	if err := adapters.NewOrderRepository(gdb).InsertBatch(ctx.Context, records); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	_, _ = fmt.Fprintf(ctx.App.Writer, "inserted %d orders\n", len(records))

	if !cfg.Redis.Enabled() {
		return nil
	}
	rdb, err := infraredis.NewRedisClient(ctx.Context, cfg.Redis)
	if err != nil {
		_, _ = fmt.Fprintln(ctx.App.ErrWriter, "redis unavailable, cache not invalidated:", err)
		return nil
	}
	defer func() { _ = rdb.Close() }()

	c := cache.NewCachingOrderSource(rdb, cfg.CacheTTL, adapters.NewOrderRepository(gdb), "orders")
	return c.Invalidate(context.WithoutCancel(ctx.Context))
}
