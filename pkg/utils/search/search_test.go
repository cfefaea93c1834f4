package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/docflow/pkg/models"
)

func report() *models.Report {
	tm := models.NewModuleRecord()
	tm.File, tm.Path = "tasks.js", "scripts/tasks.js"
	tm.Functions = []models.FunctionRecord{
		{Name: "TaskManager.addTask", Type: models.KindObjectMethod, Object: "TaskManager"},
		{Name: "TaskManager.removeTask", Type: models.KindObjectMethod, Object: "TaskManager"},
	}
	app := models.NewModuleRecord()
	app.File, app.Path = "app.js", "scripts/app.js"
	app.Functions = []models.FunctionRecord{{Name: "App.start", Type: models.KindClassMethod, Class: "App"}}
	return &models.Report{Modules: map[string]*models.ModuleRecord{"tasks": tm, "app": app}}
}

func TestIndex(t *testing.T) {
	entries := Index(report())
	require.Len(t, entries, 3)
	assert.Equal(t, "App.start", entries[0].Name)
	assert.Equal(t, "app", entries[0].Module)
	assert.Equal(t, "TaskManager.addTask", entries[1].Name)
	assert.Equal(t, "scripts/tasks.js", entries[1].Path)
}

func TestFind(t *testing.T) {
	entries := Index(report())

	got := Find("addtask", entries, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "TaskManager.addTask", got[0].Name)

	got = Find("task", entries, 0)
	require.Len(t, got, 2)
	assert.LessOrEqual(t, got[0].Distance, got[1].Distance)

	assert.Len(t, Find("task", entries, 1), 1)
	assert.Empty(t, Find("  ", entries, 0))
	assert.Empty(t, Find("zzz", entries, 0))
}

func TestSelect_Empty(t *testing.T) {
	_, err := Select(nil, "")
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestPreview(t *testing.T) {
	p := Preview(Entry{Name: "App.start", Module: "app", File: "app.js", Path: "scripts/app.js", Kind: models.KindClassMethod})
	assert.Contains(t, p, "module: app")
	assert.Contains(t, p, "kind:   class_method")
}
