package doc

import (
	"fmt"
)

// Style 定义文档渲染的样式
type Style string

const (
	// StyleMarkdown 表示 Markdown 风格
	StyleMarkdown Style = "markdown"
	// StyleHTML 表示 HTML 风格
	StyleHTML Style = "html"
)

// Options 用于配置文档渲染选项
type Options struct {
	// Style 渲染风格（markdown, html）
	Style Style `mapstructure:"style"`

	// Title 文档标题，为空时使用 DefaultTitle
	Title string `mapstructure:"title"`

	// TOC 是否生成模块目录
	TOC bool `mapstructure:"toc"`
}

// DefaultTitle 默认文档标题
const DefaultTitle = "Module Reference"

// Validate 检查 Options 的基本有效性
func (o Options) Validate() error {
	if !o.Style.IsValid() {
		return fmt.Errorf("doc: invalid style: %s", o.Style)
	}
	return nil
}

// IsValid 返回 Style 是否是已知值
func (s Style) IsValid() bool {
	switch s {
	case StyleMarkdown, StyleHTML:
		return true
	}
	return false
}
