// Package doc 将分析报告渲染为 Markdown 或 HTML 文档
package doc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yeisme/docflow/pkg/models"
)

// Markdown 生成报告的 Markdown 文档，模块按名称排序
func Markdown(r *models.Report, opts Options) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	names := make([]string, 0, len(r.Modules))
	for name := range r.Modules {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "%d modules, %d classes, %d functions.\n\n", r.TotalModules, r.TotalClasses, r.TotalFunctions)

	if opts.TOC && len(names) > 0 {
		b.WriteString("## Contents\n\n")
		for _, name := range names {
			fmt.Fprintf(&b, "- [%s](#%s)\n", name, anchor(name))
		}
		b.WriteString("\n")
	}

	for _, name := range names {
		writeModule(&b, name, r.Modules[name])
	}
	return b.String()
}

func writeModule(b *strings.Builder, name string, m *models.ModuleRecord) {
	fmt.Fprintf(b, "## %s\n\n", name)
	fmt.Fprintf(b, "File: `%s`\n\n", m.Path)

	if len(m.Classes) > 0 {
		fmt.Fprintf(b, "**Classes:** %s\n\n", codeList(m.Classes))
	}
	if len(m.Exports) > 0 {
		exports := make([]string, 0, len(m.Exports))
		for _, e := range m.Exports {
			exports = append(exports, e.Name)
		}
		fmt.Fprintf(b, "**Exports:** %s\n\n", codeList(exports))
	}
	if len(m.Dependencies) > 0 {
		fmt.Fprintf(b, "**Dependencies:** %s\n\n", codeList(m.Dependencies))
	}
	if len(m.Functions) > 0 {
		b.WriteString("| Function | Kind | Owner |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, f := range m.Functions {
			fmt.Fprintf(b, "| `%s` | %s | %s |\n", f.Name, f.Type, f.Owner())
		}
		b.WriteString("\n")
	}
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "`" + s + "`"
	}
	return strings.Join(quoted, ", ")
}

// anchor 生成与 goldmark 自动标题 id 一致的锚点
func anchor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	return b.String()
}
