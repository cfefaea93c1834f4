package project

import (
	"fmt"
	"io"

	gctx "github.com/yeisme/docflow/pkg/context"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/models"
	"github.com/yeisme/docflow/pkg/style"
	"github.com/yeisme/docflow/pkg/utils/report"
)

// FunctionsFormats 返回 functions 支持的格式
func FunctionsFormats() []string {
	return []string{FormatJSON, FormatYAML, FormatTOML}
}

// FunctionsOptions functions 命令选项
type FunctionsOptions struct {
	ScanOptions

	Format string
	Color  bool // JSON 高亮输出
}

// ExecuteFunctionsCommand 运行行模式提取，将完整文档写到 w
func ExecuteFunctionsCommand(dctx *gctx.DocflowContext, opts FunctionsOptions, args []string, w io.Writer) error {
	cfg := dctx.Config
	dir := resolveDir(args, opts.ScanOptions, cfg)

	r, err := newGenerator(cfg, opts.ScanOptions).Functions(dctx, dir)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", FormatJSON:
		if opts.Color {
			b, err := report.Marshal(r)
			if err != nil {
				return err
			}
			return style.PrintJSON(w, b)
		}
		return report.Encode(w, r)
	case FormatYAML, FormatTOML:
		return configs.OutputData(r, configs.OutputFormat(opts.Format), w, false)
	default:
		return fmt.Errorf("%w: unsupported format %q", models.ErrSerialization, opts.Format)
	}
}
