package doc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/docflow/pkg/models"
)

func sampleReport() *models.Report {
	app := models.NewModuleRecord()
	app.File, app.Path = "app.js", "scripts/app.js"
	app.Classes = []string{"App"}
	app.Functions = []models.FunctionRecord{{Name: "App.start", Type: models.KindClassMethod, Class: "App"}}
	app.Dependencies = []string{"Storage"}

	utils := models.NewModuleRecord()
	utils.File, utils.Path = "utils.js", "scripts/utils.js"
	utils.Exports = []models.ExportRecord{{Name: "Utils", Type: models.ExportTypeObject}}
	utils.Functions = []models.FunctionRecord{{Name: "Utils.trim", Type: models.KindObjectMethod, Object: "Utils"}}

	return &models.Report{
		TotalModules: 2, TotalClasses: 1, TotalFunctions: 2,
		Modules: map[string]*models.ModuleRecord{"utils": utils, "app": app},
	}
}

func TestMarkdown(t *testing.T) {
	s := Markdown(sampleReport(), Options{Style: StyleMarkdown, TOC: true})
	assert.True(t, strings.HasPrefix(s, "# Module Reference\n\n2 modules, 1 classes, 2 functions."))
	assert.Contains(t, s, "- [app](#app)")
	assert.Contains(t, s, "| `App.start` | class_method | App |")
	assert.Contains(t, s, "**Exports:** `Utils`")
	assert.Contains(t, s, "**Dependencies:** `Storage`")
	assert.Less(t, strings.Index(s, "## app"), strings.Index(s, "## utils"))

	empty := Markdown(&models.Report{Modules: map[string]*models.ModuleRecord{}}, Options{Title: "Docs", TOC: true})
	assert.Equal(t, "# Docs\n\n0 modules, 0 classes, 0 functions.\n\n", empty)
}

func TestRender_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleReport(), Options{Style: StyleHTML}))
	out := buf.String()
	assert.Contains(t, out, `<h1 id="module-reference">Module Reference</h1>`)
	assert.Contains(t, out, `<h2 id="utils">utils</h2>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<code>Utils.trim</code>")
}

func TestRender_InvalidStyle(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, sampleReport(), Options{Style: "pdf"}))
}

func Test_anchor(t *testing.T) {
	assert.Equal(t, "task_manager", anchor("Task_Manager"))
	assert.Equal(t, "qrcode-min", anchor("qrcode-min"))
}
