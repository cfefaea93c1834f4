// Package style 提供终端输出的样式化功能：高亮 JSON、表格、树与对齐列表
package style

import "github.com/charmbracelet/lipgloss"

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色，用于表头、标题等
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 强调文本色，用于在强调背景上显示的文本
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 主要文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 次要文本，例如文件路径、行号
	ColorMuted = lipgloss.Color("#9CA3AF")

	// 边框颜色
	ColorBorder = lipgloss.Color("#444444")

	// 各类函数的标记色
	ColorClassMethod  = lipgloss.Color("#22C55E")
	ColorObjectMethod = lipgloss.Color("#F59E0B")

	// JSON 高亮颜色
	ColorJSONKey    = lipgloss.Color("#55bcf4ff") // 键名
	ColorJSONValue  = ColorAccentText             // 字符串值
	ColorJSONNumber = lipgloss.Color("#d4ec19ff") // 数字
	ColorJSONBool   = lipgloss.Color("#dfab49ff") // 布尔
	ColorJSONNull   = lipgloss.Color("#6272A4")   // null
	ColorJSONPunct  = lipgloss.Color("#6B7280")   // 标点
)
