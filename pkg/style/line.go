package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Row 对齐列表中的一行
type Row struct {
	Name   string // 左列，按显示宽度对齐
	Detail string // 右列说明
	Accent bool   // 是否使用强调色渲染左列
}

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	style := lipgloss.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, style.Render(strings.ToUpper(title)))
	return err
}

// PrintRows 以左列对齐的方式打印行；宽度按终端显示宽度计算，CJK 字符占两列
func PrintRows(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	maxName := 0
	for _, r := range rows {
		if l := runewidth.StringWidth(r.Name); l > maxName {
			maxName = l
		}
	}

	accent := lipgloss.NewStyle().Foreground(ColorAccentPrimary).Bold(true)
	plain := lipgloss.NewStyle().Foreground(ColorText)
	detail := lipgloss.NewStyle().Foreground(ColorMuted)

	for _, r := range rows {
		name := plain.Render(r.Name)
		if r.Accent {
			name = accent.Render(r.Name)
		}
		padding := strings.Repeat(" ", maxName-runewidth.StringWidth(r.Name))
		line := fmt.Sprintf("  %s%s  %s", name, padding, detail.Render(r.Detail))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Truncate 按显示宽度截断字符串，超出部分以 "…" 结尾
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
