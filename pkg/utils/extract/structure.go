package extract

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/yeisme/docflow/pkg/models"
)

var (
	// 类声明：忽略行首空白
	classPattern = regexp.MustCompile(`(?m)^[ \t]*class[ \t]+(\w+)`)
	// 伪模块：顶层 const 声明、首字母大写、值为对象字面量
	exportPattern = regexp.MustCompile(`(?m)^const[ \t]+([A-Z]\w*)\s*=\s*\{`)
	// 类体内至少缩进两个空格（或制表符）的方法定义
	classMethodPattern = regexp.MustCompile(`(?m)^(?: {2,}|\t+)(\w+)[ \t]*\([^)]*\)\s*\{`)

	// 对象字面量内的三种方法形状
	objectMethodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*(\w+)\s*\([^)]*\)\s*\{`),
		regexp.MustCompile(`(?m)^\s*(\w+):\s*\([^)]*\)\s*=>`),
		regexp.MustCompile(`(?m)^\s*(\w+):\s*function`),
	}
)

// nextClassMarker 标记下一个顶层（第 0 列）类声明，用于截断类体窗口
const nextClassMarker = "\nclass "

// StructureExtractor 结构提取器的基础实现
//
// Dependencies 是依赖白名单，只有形如 `Name.` 且 Name 在白名单内的引用才会被记录
type StructureExtractor struct {
	Dependencies []string

	depPattern *regexp.Regexp
	compiled   bool
}

// NewStructureExtractor 使用给定的依赖白名单创建提取器
func NewStructureExtractor(dependencies []string) *StructureExtractor {
	s := &StructureExtractor{Dependencies: dependencies}
	s.compile()
	return s
}

func (s *StructureExtractor) compile() {
	if s.compiled {
		return
	}
	s.compiled = true
	names := make([]string, 0, len(s.Dependencies))
	for _, d := range s.Dependencies {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		names = append(names, regexp.QuoteMeta(d))
	}
	if len(names) == 0 {
		s.depPattern = nil
		return
	}
	s.depPattern = regexp.MustCompile(`\b(` + strings.Join(names, "|") + `)\.`)
}

// ExtractFile 读取文件并执行 Extract
func (s *StructureExtractor) ExtractFile(ctx context.Context, filePath string) (*models.ModuleRecord, error) {
	content, err := readSource(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return s.Extract(content), nil
}

// Extract 依次执行：类检测、伪模块检测、依赖检测、类方法提取、对象方法提取
// 返回的记录中 File 与 Path 为空，由调用方填充
func (s *StructureExtractor) Extract(content string) *models.ModuleRecord {
	s.compile()
	rec := models.NewModuleRecord()

	rec.Classes = findClasses(content)
	rec.Exports = findExports(content)
	rec.Dependencies = s.findDependencies(content)

	for _, className := range rec.Classes {
		rec.Functions = append(rec.Functions, classMethods(content, className)...)
	}
	for _, exp := range rec.Exports {
		if exp.Type != models.ExportTypeObject {
			continue
		}
		rec.Functions = append(rec.Functions, objectMethods(content, exp.Name)...)
	}
	return rec
}

func findClasses(content string) []string {
	classes := []string{}
	for _, m := range classPattern.FindAllStringSubmatch(content, -1) {
		classes = append(classes, m[1])
	}
	return classes
}

func findExports(content string) []models.ExportRecord {
	exports := []models.ExportRecord{}
	for _, m := range exportPattern.FindAllStringSubmatch(content, -1) {
		exports = append(exports, models.ExportRecord{Name: m[1], Type: models.ExportTypeObject})
	}
	return exports
}

// findDependencies 返回去重并排序后的白名单引用
func (s *StructureExtractor) findDependencies(content string) []string {
	deps := []string{}
	if s.depPattern == nil {
		return deps
	}
	seen := make(map[string]struct{})
	for _, m := range s.depPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		deps = append(deps, m[1])
	}
	sort.Strings(deps)
	return deps
}

// classWindow 返回类体窗口：从类的第一次声明到下一个顶层类声明（或文件末尾）
// 窗口只按原始偏移截断，不判断下一个声明是否位于字符串或注释中
func classWindow(content, className string) (string, bool) {
	decl := regexp.MustCompile(`(?m)^[ \t]*class[ \t]+` + regexp.QuoteMeta(className) + `\b`)
	loc := decl.FindStringIndex(content)
	if loc == nil {
		return "", false
	}
	start := loc[0]
	end := len(content)
	if idx := strings.Index(content[start+1:], nextClassMarker); idx >= 0 {
		end = start + 1 + idx
	}
	return content[start:end], true
}

func classMethods(content, className string) []models.FunctionRecord {
	window, ok := classWindow(content, className)
	if !ok {
		return nil
	}
	var out []models.FunctionRecord
	for _, m := range classMethodPattern.FindAllStringSubmatch(window, -1) {
		name := m[1]
		if IsControlKeyword(name) {
			continue
		}
		out = append(out, models.FunctionRecord{
			Name:  className + "." + name,
			Type:  models.KindClassMethod,
			Class: className,
		})
	}
	return out
}

// objectBody 定位 `const Name = {` 声明并返回从声明行开始到匹配 '}' 的文本
func objectBody(content, objName string) (string, bool) {
	decl := regexp.MustCompile(`(?m)^const[ \t]+` + regexp.QuoteMeta(objName) + `\s*=\s*\{`)
	loc := decl.FindStringIndex(content)
	if loc == nil {
		return "", false
	}
	open := loc[1] - 1
	closeIdx := matchBrace(content, open)
	if closeIdx < 0 {
		return "", false
	}
	return content[loc[0] : closeIdx+1], true
}

func objectMethods(content, objName string) []models.FunctionRecord {
	body, ok := objectBody(content, objName)
	if !ok {
		return nil
	}

	type hit struct {
		name string
		pos  int
	}
	var hits []hit
	for _, re := range objectMethodPatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(body, -1) {
			name := body[idx[2]:idx[3]]
			if IsControlKeyword(name) {
				continue
			}
			hits = append(hits, hit{name: name, pos: idx[2]})
		}
	}
	// 按出现位置排序后去重，保证输出稳定
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	seen := make(map[string]struct{}, len(hits))
	var out []models.FunctionRecord
	for _, h := range hits {
		if _, dup := seen[h.name]; dup {
			continue
		}
		seen[h.name] = struct{}{}
		out = append(out, models.FunctionRecord{
			Name:   objName + "." + h.name,
			Type:   models.KindObjectMethod,
			Object: objName,
		})
	}
	return out
}

var _ Structure = (*StructureExtractor)(nil)
