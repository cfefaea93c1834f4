// Package report 汇总逐文件的提取结果并生成报告
package report

import (
	"context"
	"errors"

	"github.com/yeisme/docflow/pkg/models"
	"github.com/yeisme/docflow/pkg/utils/extract"
	"github.com/yeisme/docflow/pkg/utils/log"
	"github.com/yeisme/docflow/pkg/utils/scan"
)

// Lister 列出待分析文件的接口，scan.Scanner 是其默认实现
type Lister interface {
	List(ctx context.Context, dir string) ([]scan.Candidate, error)
}

// Generator 组合扫描器与两种提取器
//
// 文件严格按扫描顺序逐个处理：读入、提取、关闭后再处理下一个
type Generator struct {
	Scanner   Lister            // 目录扫描
	Structure extract.Structure // 结构提取（analyze）
	Lines     extract.Lines     // 行模式提取（functions）
	KeepGoing bool              // 为 true 时跳过读取失败的文件而不是中止
}

// ensureDefaults 为未设置的组件分配默认实现
func ensureDefaults(g *Generator) *Generator {
	if g == nil {
		g = &Generator{}
	}
	if g.Scanner == nil {
		g.Scanner = scan.NewScanner(nil)
	}
	if g.Structure == nil {
		g.Structure = extract.NewStructureExtractor(nil)
	}
	if g.Lines == nil {
		g.Lines = extract.NewLineExtractor()
	}
	return g
}

// Analyze 对 dir 下的每个文件执行结构提取并汇总
func (g *Generator) Analyze(ctx context.Context, dir string) (*models.Report, error) {
	g = ensureDefaults(g)
	candidates, err := g.Scanner.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	report := &models.Report{Modules: make(map[string]*models.ModuleRecord, len(candidates))}
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := g.Structure.ExtractFile(ctx, c.Path)
		if err != nil {
			if g.skip(c, err) {
				continue
			}
			return nil, err
		}
		rec.File = c.File
		rec.Path = c.Path
		report.Modules[c.Module] = rec

		log.Debug().Str("module", c.Module).
			Int("classes", len(rec.Classes)).
			Int("functions", len(rec.Functions)).
			Msg("module analyzed")
	}
	Totals(report)
	return report, nil
}

// Functions 对 dir 下的每个文件执行行模式提取并汇总
func (g *Generator) Functions(ctx context.Context, dir string) (*models.FunctionsReport, error) {
	g = ensureDefaults(g)
	candidates, err := g.Scanner.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	report := &models.FunctionsReport{Modules: make(map[string]*models.FunctionsModule, len(candidates))}
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fns, err := g.Lines.ExtractFile(ctx, c.Path)
		if err != nil {
			if g.skip(c, err) {
				continue
			}
			return nil, err
		}
		report.Modules[c.Module] = &models.FunctionsModule{
			File:          c.File,
			Path:          c.Path,
			Functions:     fns,
			FunctionCount: len(fns),
		}
	}
	report.TotalModules = len(report.Modules)
	for _, m := range report.Modules {
		report.TotalFunctions += m.FunctionCount
	}
	return report, nil
}

// skip 判断是否跳过出错的文件，只有 KeepGoing 且为读取错误时才跳过
func (g *Generator) skip(c scan.Candidate, err error) bool {
	if !g.KeepGoing || !errors.Is(err, models.ErrIO) {
		return false
	}
	log.Warn().Err(err).Str("file", c.Path).Msg("skipping unreadable file")
	return true
}

// Totals 根据 Modules 重新计算报告的汇总字段
func Totals(r *models.Report) {
	r.TotalModules = len(r.Modules)
	r.TotalClasses = 0
	r.TotalFunctions = 0
	for _, m := range r.Modules {
		r.TotalClasses += len(m.Classes)
		r.TotalFunctions += len(m.Functions)
	}
}
