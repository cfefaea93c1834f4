package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeisme/docflow/pkg/models"
)

func TestLineMatchers_Priority(t *testing.T) {
	cases := []struct {
		line string
		want models.LineFunction
		ok   bool
	}{
		{"  render(tasks) {", models.LineFunction{Name: "render", Type: models.KindClassMethod}, true},
		{"\t\tsave() {", models.LineFunction{Name: "save", Type: models.KindClassMethod}, true},
		{"  load: function (key) {", models.LineFunction{Name: "load", Type: models.KindObjectMethod}, true},
		{"load: function() {", models.LineFunction{Name: "load", Type: models.KindObjectMethod}, true},
		{"  toggle: (id) => {", models.LineFunction{Name: "toggle", Type: models.KindArrowFunction}, true},
		{"init() {", models.LineFunction{Name: "init", Type: models.KindMethod}, true},
		{" init() {", models.LineFunction{Name: "init", Type: models.KindMethod}, true},
		{"  if (x) {", models.LineFunction{}, false},
		{"while(true) {", models.LineFunction{}, false},
		{"  } else {", models.LineFunction{}, false},
		{"function plain() {", models.LineFunction{}, false},
		{"const x = 1;", models.LineFunction{}, false},
	}
	ex := NewLineExtractor()
	for _, tc := range cases {
		got := ex.Extract(tc.line)
		if !tc.ok {
			assert.Empty(t, got, "line %q", tc.line)
			continue
		}
		require.Len(t, got, 1, "line %q", tc.line)
		tc.want.Line = 1
		assert.Equal(t, tc.want, got[0], "line %q", tc.line)
	}
}

func TestLineExtractor_LineNumbers(t *testing.T) {
	src := "class App {\n  constructor() {\n    this.x = 1;\n  }\n\n  start() {\n    if (this.x) {\n    }\n  }\n}\n"
	got := NewLineExtractor().Extract(src)
	assert.Equal(t, []models.LineFunction{
		{Name: "constructor", Line: 2, Type: models.KindClassMethod},
		{Name: "start", Line: 6, Type: models.KindClassMethod},
	}, got)
}

func TestLineExtractor_CustomMatchers(t *testing.T) {
	ex := &LineExtractor{Matchers: DefaultLineMatchers()[3:]}
	got := ex.Extract("  render() {\nrender() {")
	require.Len(t, got, 2)
	assert.Equal(t, models.KindMethod, got[0].Type)
	assert.Equal(t, 2, got[1].Line)

	empty := (&LineExtractor{}).Extract("")
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestLineExtractor_ExtractFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "utils.js")
	require.NoError(t, os.WriteFile(p, []byte("const Utils = {\r\n  trim: (s) => s.trim(),\r\n};\r\n"), 0o644))
	got, err := NewLineExtractor().ExtractFile(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []models.LineFunction{{Name: "trim", Line: 2, Type: models.KindArrowFunction}}, got)

	_, err = NewLineExtractor().ExtractFile(context.Background(), filepath.Join(t.TempDir(), "nope.js"))
	assert.ErrorIs(t, err, models.ErrIO)
}
