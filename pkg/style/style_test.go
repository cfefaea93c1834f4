package style

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m.Run()
}

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON(map[string]any{"name": "A.x<y>", "n": 2})
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	want := "{\n  \"n\": 2,\n  \"name\": \"A.x<y>\"\n}\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if _, err := FormatJSON("{bad"); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
	if got, _ := FormatJSON(nil); got != "null\n" {
		t.Fatalf("nil: %q", got)
	}
}

func TestPrintJSON_PlainProfileKeepsText(t *testing.T) {
	src := `{"a":[1,-2.5e3,true,false,null],"k\"q":"v: \"x\""}`
	want, err := FormatJSON(src)
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	var buf bytes.Buffer
	if err := PrintJSON(&buf, src); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}

func Test_isKeyAt(t *testing.T) {
	s := `"k" : "v"`
	if !isKeyAt(s, stringEnd(s, 0)) {
		t.Fatalf("expected key")
	}
	if isKeyAt(s, stringEnd(s, 6)) {
		t.Fatalf("value treated as key")
	}
}

func TestPrintRows_AlignsByDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	err := PrintRows(&buf, []Row{
		{Name: "任务.add", Detail: "app"},
		{Name: "Utils.trim", Detail: "utils", Accent: true},
	})
	if err != nil {
		t.Fatalf("PrintRows: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: %q", lines)
	}
	// "任务.add" 显示宽度为 8，"Utils.trim" 为 10
	if lines[0] != "  任务.add    app" || lines[1] != "  Utils.trim  utils" {
		t.Fatalf("unexpected alignment: %q", lines)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("TaskManager.addTask", 8); got != "TaskMan…" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("abc", 0); got != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	err := PrintTree(&buf, TreeNode{Text: "scripts", Children: []TreeNode{
		{Text: "app", Children: []TreeNode{{Text: "App.start"}}},
	}})
	if err != nil {
		t.Fatalf("PrintTree: %v", err)
	}
	for _, s := range []string{"scripts", "app", "App.start"} {
		if !strings.Contains(buf.String(), s) {
			t.Fatalf("missing %q in %q", s, buf.String())
		}
	}
}
