// Package scan 列出待分析的源文件
//
// 只扫描给定目录的第一层，不递归；目录条目、后缀不符以及被排除的文件都会被跳过
package scan

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"

	"github.com/yeisme/docflow/pkg/models"
)

// 默认扫描参数
const (
	DefaultDir      = "scripts"
	DefaultSuffix   = ".js"
	DefaultExcluded = "qrcode.min.js"
)

// Candidate 一个待分析的源文件
type Candidate struct {
	Module string // 去掉后缀的文件名，作为模块 id
	File   string // 文件名
	Path   string // 目录与文件名拼接后的路径
}

// Options 控制扫描范围，零值字段使用默认值
type Options struct {
	Suffix          string   // 文件名后缀（包含 '.'）
	Exclude         []string // 精确匹配的文件名排除集
	ExcludePatterns []string // 作用于文件名的 glob，支持 ** 语法
}

// Scanner 目录扫描器
type Scanner struct {
	Options Options
}

// NewScanner 创建扫描器；传入 nil 时使用默认的后缀与排除集
func NewScanner(opts *Options) *Scanner {
	if opts == nil {
		return &Scanner{Options: DefaultOptions()}
	}
	return &Scanner{Options: *opts}
}

// DefaultOptions 返回默认扫描选项
func DefaultOptions() Options {
	return Options{
		Suffix:  DefaultSuffix,
		Exclude: []string{DefaultExcluded},
	}
}

// List 列出 dir 下符合条件的文件，按文件名排序
func (s *Scanner) List(ctx context.Context, dir string) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %w", models.ErrFileSystem, dir, err)
	}

	suffix := s.suffix()
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !s.Retain(name, e.IsDir()) {
			continue
		}
		out = append(out, Candidate{
			Module: strings.TrimSuffix(name, suffix),
			File:   name,
			Path:   joinPath(dir, name),
		})
	}
	// os.ReadDir 已按文件名排序，这里再次排序以不依赖该行为
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out, nil
}

// Retain 判断一个目录条目是否会被保留，watch 也用它过滤事件
func (s *Scanner) Retain(name string, isDir bool) bool {
	if isDir || !strings.HasSuffix(name, s.suffix()) {
		return false
	}
	for _, ex := range s.Options.Exclude {
		if name == ex {
			return false
		}
	}
	return !excludeMatches(name, s.Options.ExcludePatterns)
}

func (s *Scanner) suffix() string {
	if s.Options.Suffix == "" {
		return DefaultSuffix
	}
	return s.Options.Suffix
}

// excludeMatches 文件名是否匹配任意一个 glob；非法模式被忽略
func excludeMatches(name string, patterns []string) bool {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// joinPath 按 "目录/文件名" 拼接，目录末尾已有分隔符时不重复添加
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
