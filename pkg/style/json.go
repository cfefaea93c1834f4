package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将 JSON 以缩进并带高亮的方式输出到 writer
//
// string / []byte 视为原始 JSON 文本，其它值先编码（不转义 HTML 字符）
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON 返回两空格缩进、以换行结尾的 JSON 文本
func FormatJSON(v any) (string, error) {
	var raw []byte
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		raw = []byte(x)
	case []byte:
		raw = x
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		raw = buf.Bytes()
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return "", err
	}
	out.WriteByte('\n')
	return out.String(), nil
}

type jsonPalette struct {
	key, str, num, lit, null, punct lipgloss.Style
}

func newJSONPalette() jsonPalette {
	return jsonPalette{
		key:   lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true),
		str:   lipgloss.NewStyle().Foreground(ColorJSONValue),
		num:   lipgloss.NewStyle().Foreground(ColorJSONNumber),
		lit:   lipgloss.NewStyle().Foreground(ColorJSONBool),
		null:  lipgloss.NewStyle().Foreground(ColorJSONNull),
		punct: lipgloss.NewStyle().Foreground(ColorJSONPunct),
	}
}

// colorizeJSON 对已缩进的合法 JSON 文本着色，空白原样保留
func colorizeJSON(s string) string {
	p := newJSONPalette()
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '"':
			end := stringEnd(s, i)
			token := s[i:end]
			if isKeyAt(s, end) {
				b.WriteString(p.key.Render(token))
			} else {
				b.WriteString(p.str.Render(token))
			}
			i = end
		case strings.IndexByte("{}[]:,", ch) >= 0:
			b.WriteString(p.punct.Render(string(ch)))
			i++
		case ch == '-' || (ch >= '0' && ch <= '9'):
			j := i + 1
			for j < len(s) && strings.IndexByte("0123456789.eE+-", s[j]) >= 0 {
				j++
			}
			b.WriteString(p.num.Render(s[i:j]))
			i = j
		case strings.HasPrefix(s[i:], "true"):
			b.WriteString(p.lit.Render("true"))
			i += 4
		case strings.HasPrefix(s[i:], "false"):
			b.WriteString(p.lit.Render("false"))
			i += 5
		case strings.HasPrefix(s[i:], "null"):
			b.WriteString(p.null.Render("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

// stringEnd 返回从 start 处的引号开始的字符串 token 的结束位置（半开区间）
func stringEnd(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return len(s)
}

// isKeyAt 判断 pos 之后第一个非空白字符是否为 ':'
func isKeyAt(s string, pos int) bool {
	rest := strings.TrimLeft(s[pos:], " \t\r\n")
	return strings.HasPrefix(rest, ":")
}
