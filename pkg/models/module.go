// Package models 定义文档生成过程中使用的数据结构
package models

// FunctionKind 函数/方法的分类标签
type FunctionKind string

const (
	// KindClassMethod 类中定义的方法（包括 constructor）
	KindClassMethod FunctionKind = "class_method"
	// KindObjectMethod 对象字面量中定义的方法
	KindObjectMethod FunctionKind = "object_method"
	// KindArrowFunction 对象属性形式的箭头函数
	KindArrowFunction FunctionKind = "arrow_function"
	// KindMethod 不带 function 关键字的普通方法
	KindMethod FunctionKind = "method"
)

// ExportTypeObject 是 ExportRecord 唯一的类型取值
const ExportTypeObject = "object"

// ExportRecord 表示一个首字母大写的顶层对象声明（伪模块）
type ExportRecord struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// FunctionRecord 结构提取模式下的函数记录
// Name 为限定名（如 "TaskManager.addTask"），Class 与 Object 二选一标记所属者
type FunctionRecord struct {
	Name   string       `json:"name" yaml:"name" toml:"name"`
	Type   FunctionKind `json:"type" yaml:"type" toml:"type"`
	Class  string       `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	Object string       `json:"object,omitempty" yaml:"object,omitempty" toml:"object,omitempty"`
}

// Owner 返回函数所属的类名或对象名
func (f FunctionRecord) Owner() string {
	if f.Class != "" {
		return f.Class
	}
	return f.Object
}

// ModuleRecord 存储单个源文件的结构提取结果
// 字段顺序即 JSON 输出顺序，不要随意调整
type ModuleRecord struct {
	Classes      []string         `json:"classes" yaml:"classes" toml:"classes"`
	Functions    []FunctionRecord `json:"functions" yaml:"functions" toml:"functions"`
	Exports      []ExportRecord   `json:"exports" yaml:"exports" toml:"exports"`
	Dependencies []string         `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	File         string           `json:"file" yaml:"file" toml:"file"`
	Path         string           `json:"path" yaml:"path" toml:"path"`
}

// NewModuleRecord 返回所有列表均已初始化的记录，保证序列化为 [] 而不是 null
func NewModuleRecord() *ModuleRecord {
	return &ModuleRecord{
		Classes:      []string{},
		Functions:    []FunctionRecord{},
		Exports:      []ExportRecord{},
		Dependencies: []string{},
	}
}

// Report 是 analyze 命令输出的顶层结构
type Report struct {
	TotalModules   int                      `json:"total_modules" yaml:"total_modules" toml:"total_modules"`
	TotalClasses   int                      `json:"total_classes" yaml:"total_classes" toml:"total_classes"`
	TotalFunctions int                      `json:"total_functions" yaml:"total_functions" toml:"total_functions"`
	Modules        map[string]*ModuleRecord `json:"modules" yaml:"modules" toml:"modules"`
}

// LineFunction 行模式下提取的函数（不含所属信息）
type LineFunction struct {
	Name string       `json:"name" yaml:"name" toml:"name"`
	Line int          `json:"line" yaml:"line" toml:"line"`
	Type FunctionKind `json:"type" yaml:"type" toml:"type"`
}

// FunctionsModule 行模式下单个文件的结果
type FunctionsModule struct {
	File          string         `json:"file" yaml:"file" toml:"file"`
	Path          string         `json:"path" yaml:"path" toml:"path"`
	Functions     []LineFunction `json:"functions" yaml:"functions" toml:"functions"`
	FunctionCount int            `json:"function_count" yaml:"function_count" toml:"function_count"`
}

// FunctionsReport 是 functions 命令输出的顶层结构
type FunctionsReport struct {
	TotalModules   int                         `json:"total_modules" yaml:"total_modules" toml:"total_modules"`
	TotalFunctions int                         `json:"total_functions" yaml:"total_functions" toml:"total_functions"`
	Modules        map[string]*FunctionsModule `json:"modules" yaml:"modules" toml:"modules"`
}
