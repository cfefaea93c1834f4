package report

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/docflow/pkg/models"
	"github.com/yeisme/docflow/pkg/utils/extract"
	"github.com/yeisme/docflow/pkg/utils/scan"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "app.js", "class App {\n  constructor() {\n    Storage.load();\n  }\n  start() {\n    if (x) {}\n  }\n}\n")
	writeFile(t, dir, "utils.js", "const Utils = {\n  generateId: function() {},\n  generateId: () => {},\n  trim(s) { return s; }\n};\n")
	writeFile(t, dir, "qrcode.min.js", "class QR {\n  make() {\n  }\n}\n")
	writeFile(t, dir, "notes.txt", "class Nope {}")
	return dir
}

func newGenerator() *Generator {
	return &Generator{
		Scanner:   scan.NewScanner(nil),
		Structure: extract.NewStructureExtractor([]string{"Storage", "Utils"}),
		Lines:     extract.NewLineExtractor(),
	}
}

func TestGenerator_Analyze(t *testing.T) {
	dir := fixtureDir(t)
	r, err := newGenerator().Analyze(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, r.Modules, 2)
	assert.NotContains(t, r.Modules, "qrcode.min")
	assert.Equal(t, 2, r.TotalModules)
	assert.Equal(t, 1, r.TotalClasses)
	// App.constructor, App.start, Utils.generateId, Utils.trim
	assert.Equal(t, 4, r.TotalFunctions)

	app := r.Modules["app"]
	assert.Equal(t, "app.js", app.File)
	assert.Equal(t, filepath.Join(dir, "app.js"), app.Path)
	assert.Equal(t, []string{"Storage"}, app.Dependencies)

	sumC, sumF := 0, 0
	for _, m := range r.Modules {
		sumC += len(m.Classes)
		sumF += len(m.Functions)
	}
	assert.Equal(t, sumC, r.TotalClasses)
	assert.Equal(t, sumF, r.TotalFunctions)
}

func TestGenerator_EmptyDir(t *testing.T) {
	r, err := (&Generator{}).Analyze(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, r.TotalModules)
	assert.Zero(t, r.TotalClasses)
	assert.Zero(t, r.TotalFunctions)
	assert.Empty(t, r.Modules)

	b, err := Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"total_modules\": 0,\n  \"total_classes\": 0,\n  \"total_functions\": 0,\n  \"modules\": {}\n}\n", string(b))
}

func TestGenerator_Functions(t *testing.T) {
	dir := fixtureDir(t)
	r, err := newGenerator().Functions(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, r.TotalModules)
	utils := r.Modules["utils"]
	require.NotNil(t, utils)
	assert.Equal(t, []models.LineFunction{
		{Name: "generateId", Line: 2, Type: models.KindObjectMethod},
		{Name: "generateId", Line: 3, Type: models.KindArrowFunction},
		{Name: "trim", Line: 4, Type: models.KindClassMethod},
	}, utils.Functions)
	assert.Equal(t, 3, utils.FunctionCount)

	total := 0
	for _, m := range r.Modules {
		total += m.FunctionCount
		assert.Equal(t, len(m.Functions), m.FunctionCount)
	}
	assert.Equal(t, total, r.TotalFunctions)
}

func TestGenerator_Errors(t *testing.T) {
	_, err := newGenerator().Analyze(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, models.ErrFileSystem)

	dir := t.TempDir()
	writeFile(t, dir, "good.js", "class Good {\n  ok() {\n  }\n}\n")
	writeFile(t, dir, "bad.js", "const X = '\xff\xfe';\n")

	_, err = newGenerator().Analyze(context.Background(), dir)
	assert.ErrorIs(t, err, models.ErrIO)
	_, err = newGenerator().Functions(context.Background(), dir)
	assert.ErrorIs(t, err, models.ErrIO)

	g := newGenerator()
	g.KeepGoing = true
	r, err := g.Analyze(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, r.TotalModules)
	assert.Contains(t, r.Modules, "good")

	fr, err := g.Functions(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 1, fr.TotalModules)
	assert.Equal(t, 1, fr.TotalFunctions)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Analyze(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Idempotent(t *testing.T) {
	dir := fixtureDir(t)
	g := newGenerator()
	r1, err := g.Analyze(context.Background(), dir)
	require.NoError(t, err)
	r2, err := g.Analyze(context.Background(), dir)
	require.NoError(t, err)

	b1, err := Marshal(r1)
	require.NoError(t, err)
	b2, err := Marshal(r2)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))
}

func TestWriteReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "docs", "technical", "modules.json")
	r := &models.Report{Modules: map[string]*models.ModuleRecord{"a": models.NewModuleRecord()}}
	r.Modules["a"].File = "a.js"
	r.Modules["a"].Path = "scripts/a.js"
	r.Modules["a"].Functions = append(r.Modules["a"].Functions, models.FunctionRecord{Name: "A.x<y>", Type: models.KindObjectMethod, Object: "A"})
	Totals(r)

	require.NoError(t, WriteReport(out, r))
	require.NoError(t, os.WriteFile(out, []byte("stale content that is longer than nothing"), 0o644))
	require.NoError(t, WriteReport(out, r))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	s := string(b)
	assert.True(t, strings.HasPrefix(s, "{\n  \"total_modules\": 1,"))
	assert.Contains(t, s, `"A.x<y>"`)
	assert.NotContains(t, s, "stale")
	// 字段顺序
	iC := strings.Index(s, `"classes"`)
	iF := strings.Index(s, `"functions"`)
	iE := strings.Index(s, `"exports"`)
	iD := strings.Index(s, `"dependencies"`)
	iFile := strings.Index(s, `"file"`)
	iP := strings.Index(s, `"path"`)
	assert.True(t, iC < iF && iF < iE && iE < iD && iD < iFile && iFile < iP)
	assert.Contains(t, s, `"exports": []`)

	var back models.Report
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 1, back.TotalFunctions)

	blocker := filepath.Join(t.TempDir(), "file")
	writeFile(t, filepath.Dir(blocker), "file", "x")
	err = WriteReport(filepath.Join(blocker, "modules.json"), r)
	assert.ErrorIs(t, err, models.ErrSerialization)
}

func TestWriteFile(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "a", "b", "modules.md")
	require.NoError(t, WriteFile(out, []byte("# Modules\n")))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "# Modules\n", string(b))

	writeFile(t, root, "file", "x")
	err = WriteFile(filepath.Join(root, "file", "modules.md"), []byte("x"))
	assert.ErrorIs(t, err, models.ErrSerialization)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &models.FunctionsReport{Modules: map[string]*models.FunctionsModule{}}))
	assert.Equal(t, "{\n  \"total_modules\": 0,\n  \"total_functions\": 0,\n  \"modules\": {}\n}\n", buf.String())

	assert.ErrorIs(t, Encode(&buf, func() {}), models.ErrSerialization)
}

func TestSummary(t *testing.T) {
	r := &models.Report{TotalModules: 3, TotalClasses: 2, TotalFunctions: 17}
	assert.Equal(t, "Created modules.json with 3 modules, 2 classes, 17 functions",
		Summary(r, "docs/codebase-flow/technical/modules.json"))
}
