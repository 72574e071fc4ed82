package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"order_search/internal/platform/viewport"
)

var (
	WidthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "viewport width in px (narrow layout below 768)",
		Value: viewport.DefaultWidth,
	}
	SortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "column key to sort by (e.g. price, accountNo)",
	}
	OrderFlag = &cli.StringFlag{
		Name:  "order",
		Usage: "sort order: asc or desc",
		Value: "asc",
	}
	PeriodFlag = &cli.StringFlag{
		Name:  "period",
		Usage: "transmission, start or empty for all",
	}
	StatusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "waiting, completed or empty for all",
	}
	FromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "first date (yyyy-MM-dd); defaults to the first day of this month",
	}
	ToFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "last date (yyyy-MM-dd); defaults to the last day of this month",
	}
	RowFlag = &cli.IntFlag{
		Name:     "row",
		Usage:    "row index to expand (0-based, in result order)",
		Required: true,
	}
	SubjectFlag = &cli.StringFlag{
		Name:     "subject",
		Usage:    "token subject (user id)",
		Required: true,
	}
	EmailFlag = &cli.StringFlag{
		Name:  "email",
		Usage: "email claim",
	}
	TTLFlag = &cli.DurationFlag{
		Name:  "ttl",
		Usage: "token lifetime",
		Value: time.Hour,
	}
)

// searchFlags はtableとdetailで共有するフォーム入力です。
var searchFlags = []cli.Flag{WidthFlag, PeriodFlag, StatusFlag, FromFlag, ToFlag}
