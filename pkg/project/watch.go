package project

import (
	"io"
	"time"

	gctx "github.com/yeisme/docflow/pkg/context"

	"github.com/yeisme/docflow/pkg/utils/hotload"
	"github.com/yeisme/docflow/pkg/utils/log"
)

// WatchOptions watch 命令选项
type WatchOptions struct {
	AnalyzeOptions

	// Debounce 防抖时长，0 时使用配置 watch.debounce
	Debounce time.Duration
}

// ExecuteWatchCommand 先完整生成一次报告，然后在扫描目录内相关文件变化时重新生成
func ExecuteWatchCommand(dctx *gctx.DocflowContext, opts WatchOptions, args []string, w io.Writer) error {
	cfg := dctx.Config
	dir := resolveDir(args, opts.ScanOptions, cfg)
	// 每次重新生成都使用同一个目录
	opts.Dir = dir
	runArgs := []string{dir}

	run := func() {
		if err := ExecuteAnalyzeCommand(dctx, opts.AnalyzeOptions, runArgs, w); err != nil {
			log.Error().Err(err).Msg("regeneration failed")
		}
	}
	run()

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = time.Duration(cfg.Watch.Debounce) * time.Millisecond
	}
	scanner := newScanner(cfg, opts.ScanOptions)
	return hotload.Watch(dctx, hotload.Options{
		Dir:      dir,
		Debounce: debounce,
		Filter:   func(name string) bool { return scanner.Retain(name, false) },
	}, run)
}
