// Package project 连接命令行与分析流程：解析选项、运行生成器并按格式输出结果
package project

import (
	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/utils/extract"
	"github.com/yeisme/docflow/pkg/utils/report"
	"github.com/yeisme/docflow/pkg/utils/scan"
)

// ScanOptions 命令行对扫描范围的覆盖
type ScanOptions struct {
	Dir          string   // 扫描目录，为空时使用配置 scan.dir
	Exclude      []string // 追加的精确排除文件名
	Dependencies []string // 非空时替换配置中的依赖白名单
	KeepGoing    bool
}

// resolveDir 位置参数优先，其次是选项，最后是配置
func resolveDir(args []string, opts ScanOptions, cfg *configs.Config) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if opts.Dir != "" {
		return opts.Dir
	}
	return cfg.Scan.Dir
}

// newScanner 根据配置与命令行覆盖创建扫描器
func newScanner(cfg *configs.Config, opts ScanOptions) *scan.Scanner {
	exclude := append([]string{}, cfg.Scan.Exclude...)
	exclude = append(exclude, opts.Exclude...)
	return scan.NewScanner(&scan.Options{
		Suffix:          cfg.Scan.Suffix,
		Exclude:         exclude,
		ExcludePatterns: cfg.Scan.ExcludePatterns,
	})
}

// newGenerator 组装报告生成器
func newGenerator(cfg *configs.Config, opts ScanOptions) *report.Generator {
	deps := cfg.Analyze.Dependencies
	if len(opts.Dependencies) > 0 {
		deps = opts.Dependencies
	}
	return &report.Generator{
		Scanner:   newScanner(cfg, opts),
		Structure: extract.NewStructureExtractor(deps),
		Lines:     extract.NewLineExtractor(),
		KeepGoing: opts.KeepGoing,
	}
}
