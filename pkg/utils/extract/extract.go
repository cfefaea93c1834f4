// Package extract 提供基于正则的 JavaScript 源文件结构提取
//
// 这是一个尽力而为的模式匹配器，而不是语法分析器：
// 它按行匹配类声明、首字母大写的对象字面量、白名单内的全局引用以及方法定义，
// 结果用于生成近似的开发文档
package extract

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/yeisme/docflow/pkg/models"
)

// Structure 结构提取接口（类、对象、依赖、方法）
type Structure interface {
	// Extract 对已读入内存的文件内容执行提取
	Extract(content string) *models.ModuleRecord
	// ExtractFile 读取并提取单个文件
	ExtractFile(ctx context.Context, filePath string) (*models.ModuleRecord, error)
}

// Lines 行模式函数提取接口
type Lines interface {
	Extract(content string) []models.LineFunction
	ExtractFile(ctx context.Context, filePath string) ([]models.LineFunction, error)
}

// controlKeywords 与方法定义形状相同的控制流关键字，永远不会被记录为函数
var controlKeywords = map[string]struct{}{
	"if":     {},
	"for":    {},
	"while":  {},
	"switch": {},
	"catch":  {},
	"else":   {},
}

// IsControlKeyword 判断名称是否属于控制流关键字排除集
func IsControlKeyword(name string) bool {
	_, ok := controlKeywords[name]
	return ok
}

// ControlKeywords 返回排除集的副本（按固定顺序）
func ControlKeywords() []string {
	return []string{"if", "for", "while", "switch", "catch", "else"}
}

// readSource 一次性读取整个文件并统一换行符
// 文件句柄在所有返回路径上都会被关闭
func readSource(ctx context.Context, filePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", models.ErrIO, filePath, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", models.ErrIO, filePath, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: decode %s: invalid UTF-8", models.ErrIO, filePath)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
