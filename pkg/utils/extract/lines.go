package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/yeisme/docflow/pkg/models"
)

// LineMatcher 行模式下的一个具名匹配器
type LineMatcher struct {
	Kind    models.FunctionKind
	Pattern *regexp.Regexp
}

// Match 返回匹配到的函数名；名称为控制流关键字时视为不匹配
func (m LineMatcher) Match(line string) (string, bool) {
	sub := m.Pattern.FindStringSubmatch(line)
	if sub == nil || IsControlKeyword(sub[1]) {
		return "", false
	}
	return sub[1], true
}

// DefaultLineMatchers 按优先级排列的匹配器：类方法 > function 属性 > 箭头函数属性 > 普通方法
func DefaultLineMatchers() []LineMatcher {
	return []LineMatcher{
		{Kind: models.KindClassMethod, Pattern: regexp.MustCompile(`^\s{2,}(\w+)\s*\([^)]*\)\s*\{`)},
		{Kind: models.KindObjectMethod, Pattern: regexp.MustCompile(`^\s*(\w+):\s*function\s*\([^)]*\)`)},
		{Kind: models.KindArrowFunction, Pattern: regexp.MustCompile(`^\s*(\w+):\s*\([^)]*\)\s*=>`)},
		{Kind: models.KindMethod, Pattern: regexp.MustCompile(`^\s*(\w+)\([^)]*\)\s*\{`)},
	}
}

// LineExtractor 逐行尝试匹配器列表，第一个成功的匹配器决定该行的分类
type LineExtractor struct {
	Matchers []LineMatcher
}

// NewLineExtractor 使用默认匹配器创建行模式提取器
func NewLineExtractor() *LineExtractor {
	return &LineExtractor{Matchers: DefaultLineMatchers()}
}

// ExtractFile 读取文件并执行 Extract
func (l *LineExtractor) ExtractFile(ctx context.Context, filePath string) ([]models.LineFunction, error) {
	content, err := readSource(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return l.Extract(content), nil
}

// Extract 返回 (name, line, type) 列表，行号从 1 开始
func (l *LineExtractor) Extract(content string) []models.LineFunction {
	matchers := l.Matchers
	if len(matchers) == 0 {
		matchers = DefaultLineMatchers()
	}
	out := []models.LineFunction{}
	for i, line := range strings.Split(content, "\n") {
		for _, m := range matchers {
			name, ok := m.Match(line)
			if !ok {
				continue
			}
			out = append(out, models.LineFunction{Name: name, Line: i + 1, Type: m.Kind})
			break
		}
	}
	return out
}

var _ Lines = (*LineExtractor)(nil)
