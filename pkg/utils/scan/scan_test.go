package scan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/docflow/pkg/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func modules(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Module)
	}
	return out
}

func TestScanner_List_DefaultExclusion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.js", "class App {}")
	writeFile(t, dir, "qrcode.min.js", "var q;")
	writeFile(t, dir, "storage.js", "")
	writeFile(t, dir, "README.md", "# x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.js"), 0o755))
	writeFile(t, filepath.Join(dir, "nested.js"), "inner.js", "")

	got, err := NewScanner(nil).List(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"app", "storage"}, modules(got))
	assert.Equal(t, "app.js", got[0].File)
	assert.Equal(t, filepath.Join(dir, "app.js"), got[0].Path)
	for _, c := range got {
		assert.NotEqual(t, "qrcode.min.js", c.File)
	}
}

func TestScanner_List_Patterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "vendor.min.js", "")
	writeFile(t, dir, "b.test.js", "")
	writeFile(t, dir, "c.mjs", "")

	s := NewScanner(&Options{
		Suffix:          ".js",
		ExcludePatterns: []string{"*.min.js", " ", "*.test.js", "[bad"},
	})
	got, err := s.List(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, modules(got))

	mjs, err := NewScanner(&Options{Suffix: ".mjs"}).List(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, modules(mjs))
}

func TestScanner_List_Errors(t *testing.T) {
	_, err := NewScanner(nil).List(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, models.ErrFileSystem)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewScanner(nil).List(ctx, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_Retain(t *testing.T) {
	s := NewScanner(nil)
	assert.True(t, s.Retain("app.js", false))
	assert.False(t, s.Retain("app.js", true))
	assert.False(t, s.Retain("qrcode.min.js", false))
	assert.False(t, s.Retain("app.ts", false))
	assert.True(t, (&Scanner{}).Retain("x.js", false))
}

func Test_joinPath(t *testing.T) {
	sep := string(os.PathSeparator)
	if got := joinPath("scripts", "a.js"); got != "scripts"+sep+"a.js" {
		t.Fatalf("got %q", got)
	}
	if got := joinPath("scripts/", "a.js"); got != "scripts/a.js" {
		t.Fatalf("got %q", got)
	}
}
