// Package search 在分析报告中按限定名模糊查找函数
package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/yeisme/docflow/pkg/models"
)

// ErrNoEntries 没有可供选择的条目
var ErrNoEntries = errors.New("no entries to select")

// Entry 一个可搜索的函数条目
type Entry struct {
	Name   string              `json:"name" yaml:"name"` // 限定名，例如 TaskManager.addTask
	Kind   models.FunctionKind `json:"type" yaml:"type"`
	Module string              `json:"module" yaml:"module"`
	File   string              `json:"file" yaml:"file"`
	Path   string              `json:"path" yaml:"path"`
}

// Match 一条命中结果，Distance 越小越接近
type Match struct {
	Entry
	Distance int `json:"distance" yaml:"distance"`
}

// Index 将报告展开为按名称排序的条目列表
func Index(r *models.Report) []Entry {
	var out []Entry
	for module, m := range r.Modules {
		for _, f := range m.Functions {
			out = append(out, Entry{
				Name:   f.Name,
				Kind:   f.Type,
				Module: module,
				File:   m.File,
				Path:   m.Path,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Module < out[j].Module
	})
	return out
}

// Find 对条目执行不区分大小写的模糊匹配，按距离升序返回至多 limit 条（limit<=0 不限制）
func Find(query string, entries []Entry, limit int) []Match {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(q, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]Match, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, Match{Entry: entries[r.OriginalIndex], Distance: r.Distance})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Select 打开交互式模糊查找器，返回选中的条目
func Select(entries []Entry, query string) (*Entry, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	idx, err := fuzzyfinder.Find(entries,
		func(i int) string { return entries[i].Name },
		fuzzyfinder.WithQuery(query),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return Preview(entries[i])
		}),
	)
	if err != nil {
		return nil, err
	}
	sel := entries[idx]
	return &sel, nil
}

// Preview 查找器右侧预览窗口的文本
func Preview(e Entry) string {
	return fmt.Sprintf("%s\n\nmodule: %s\nfile:   %s\npath:   %s\nkind:   %s", e.Name, e.Module, e.File, e.Path, e.Kind)
}
