package project

import (
	"errors"
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"

	gctx "github.com/yeisme/docflow/pkg/context"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/style"
	"github.com/yeisme/docflow/pkg/utils/search"
)

// SearchOptions search 命令选项
type SearchOptions struct {
	ScanOptions

	Interactive bool
	Limit       int
	Format      string // 为空时打印对齐列表，可选 json/yaml
}

// ExecuteSearchCommand 分析目录后按限定名模糊查找函数
func ExecuteSearchCommand(dctx *gctx.DocflowContext, opts SearchOptions, query string, args []string, w io.Writer) error {
	cfg := dctx.Config
	dir := resolveDir(args, opts.ScanOptions, cfg)

	r, err := newGenerator(cfg, opts.ScanOptions).Analyze(dctx, dir)
	if err != nil {
		return err
	}
	entries := search.Index(r)

	if opts.Interactive {
		sel, err := search.Select(entries, query)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, search.Preview(*sel))
		return err
	}

	matches := search.Find(query, entries, opts.Limit)
	if opts.Format != "" {
		format, err := configs.ParseOutputFormat(opts.Format)
		if err != nil {
			return err
		}
		return configs.OutputData(matches, format, w, false)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no function matches %q", query)
	}

	rows := make([]style.Row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, style.Row{
			Name:   m.Name,
			Detail: fmt.Sprintf("%s  %s", m.Path, m.Kind),
			Accent: m.Distance == 0,
		})
	}
	return style.PrintRows(w, rows)
}
