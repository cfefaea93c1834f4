package project

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	gctx "github.com/yeisme/docflow/pkg/context"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/models"
	"github.com/yeisme/docflow/pkg/style"
	"github.com/yeisme/docflow/pkg/utils/doc"
	"github.com/yeisme/docflow/pkg/utils/log"
	"github.com/yeisme/docflow/pkg/utils/report"
)

// 分析结果的输出格式
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTOML     = "toml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// StdoutPath 作为 --output 时表示写到标准输出
const StdoutPath = "-"

// AnalyzeFormats 返回 analyze 支持的格式
func AnalyzeFormats() []string {
	return []string{FormatJSON, FormatYAML, FormatTOML, FormatMarkdown, FormatHTML}
}

// AnalyzeOptions analyze 命令选项
type AnalyzeOptions struct {
	ScanOptions

	// Output 输出路径；为空时 json 使用配置 analyze.output，其它格式写到 stdout
	Output string
	Format string
	Table  bool // 额外打印模块汇总表
	Tree   bool // 额外打印模块树
	TOC    bool // markdown/html 是否生成目录
}

// ExecuteAnalyzeCommand 运行结构分析并按格式输出
//
// json 格式写入报告文件并打印一行摘要；其它格式默认写到 w
func ExecuteAnalyzeCommand(dctx *gctx.DocflowContext, opts AnalyzeOptions, args []string, w io.Writer) error {
	cfg := dctx.Config
	dir := resolveDir(args, opts.ScanOptions, cfg)

	r, err := newGenerator(cfg, opts.ScanOptions).Analyze(dctx, dir)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Int("modules", r.TotalModules).Msg("analysis finished")

	if err := writeAnalysis(r, opts, cfg, w); err != nil {
		return err
	}
	if opts.Table {
		if err := PrintModuleTable(w, r); err != nil {
			return err
		}
	}
	if opts.Tree {
		if err := PrintModuleTree(w, dir, r); err != nil {
			return err
		}
	}
	return nil
}

func writeAnalysis(r *models.Report, opts AnalyzeOptions, cfg *configs.Config, w io.Writer) error {
	format := opts.Format
	if format == "" {
		format = FormatJSON
	}

	switch format {
	case FormatJSON:
		out := opts.Output
		if out == "" {
			out = cfg.Analyze.Output
		}
		if out == StdoutPath {
			return report.Encode(w, r)
		}
		if err := report.WriteReport(out, r); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, report.Summary(r, out))
		return err

	case FormatYAML, FormatTOML:
		b, err := configs.Marshal(r, configs.OutputFormat(format))
		if err != nil {
			return fmt.Errorf("%w: %w", models.ErrSerialization, err)
		}
		return writeTo(opts.Output, b, w)

	case FormatMarkdown, FormatHTML:
		docOpts := doc.Options{Style: doc.StyleMarkdown, TOC: opts.TOC}
		if format == FormatHTML {
			docOpts.Style = doc.StyleHTML
		}
		// 终端上直接渲染 markdown
		if format == FormatMarkdown && (opts.Output == "" || opts.Output == StdoutPath) && style.IsTerminal(w) {
			return style.RenderMarkdown(w, doc.Markdown(r, docOpts), 0, "")
		}
		if opts.Output == "" || opts.Output == StdoutPath {
			return doc.Render(w, r, docOpts)
		}
		var buf bytes.Buffer
		if err := doc.Render(&buf, r, docOpts); err != nil {
			return err
		}
		return report.WriteFile(opts.Output, buf.Bytes())

	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// writeTo 写入文件；path 为空或 "-" 时写到 w
func writeTo(path string, b []byte, w io.Writer) error {
	if path == "" || path == StdoutPath {
		_, err := w.Write(b)
		return err
	}
	return report.WriteFile(path, b)
}

// sortedModules 返回按名称排序的模块名
func sortedModules[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModuleTable 构建模块汇总表数据（含 TOTAL 行）
func ModuleTable(r *models.Report) ([]string, [][]string) {
	headers := []string{"module", "file", "classes", "exports", "functions", "dependencies"}
	rows := make([][]string, 0, len(r.Modules)+1)
	totalExports := 0
	for _, name := range sortedModules(r.Modules) {
		m := r.Modules[name]
		totalExports += len(m.Exports)
		rows = append(rows, []string{
			name,
			m.File,
			strconv.Itoa(len(m.Classes)),
			strconv.Itoa(len(m.Exports)),
			strconv.Itoa(len(m.Functions)),
			strconv.Itoa(len(m.Dependencies)),
		})
	}
	if len(rows) > 0 {
		rows = append(rows, []string{
			"TOTAL",
			"",
			strconv.Itoa(r.TotalClasses),
			strconv.Itoa(totalExports),
			strconv.Itoa(r.TotalFunctions),
			"",
		})
	}
	return headers, rows
}

// PrintModuleTable 打印模块汇总表
func PrintModuleTable(w io.Writer, r *models.Report) error {
	headers, rows := ModuleTable(r)
	if len(rows) == 0 {
		return nil
	}
	return style.PrintTable(w, headers, rows, 0)
}

// ModuleTree 构建 目录 -> 模块 -> 类/对象 -> 方法 的树
func ModuleTree(root string, r *models.Report) style.TreeNode {
	tree := style.TreeNode{Text: root}
	for _, name := range sortedModules(r.Modules) {
		m := r.Modules[name]
		node := style.TreeNode{Text: name}

		owners := make(map[string][]style.TreeNode)
		var order []string
		for _, f := range m.Functions {
			owner := f.Owner()
			if _, ok := owners[owner]; !ok {
				order = append(order, owner)
			}
			color := style.ColorObjectMethod
			if f.Class != "" {
				color = style.ColorClassMethod
			}
			owners[owner] = append(owners[owner], style.TreeNode{Text: f.Name, Color: color})
		}
		for _, owner := range order {
			node.Children = append(node.Children, style.TreeNode{Text: owner, Children: owners[owner]})
		}
		tree.Children = append(tree.Children, node)
	}
	return tree
}

// PrintModuleTree 打印模块树
func PrintModuleTree(w io.Writer, root string, r *models.Report) error {
	return style.PrintTree(w, ModuleTree(root, r))
}
