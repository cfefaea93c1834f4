package doc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yeisme/docflow/pkg/models"
)

// md 共享的 goldmark 实例：GFM 表格与自动标题 id
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithXHTML()),
)

// Render 按 opts.Style 将报告写入 out
func Render(out io.Writer, r *models.Report, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	src := Markdown(r, opts)
	switch opts.Style {
	case StyleHTML:
		body, err := ToHTML(src)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, body)
		return err
	default:
		_, err := io.WriteString(out, src)
		return err
	}
}

// ToHTML 使用 goldmark 将 Markdown 转换为 HTML 片段
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("doc: render html: %w", err)
	}
	return buf.String(), nil
}
