// Package main provides the entry point for the docflow schema generation.
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/yeisme/docflow/pkg/utils/schema"
)

const docsDir = "../../docs"

//go:generate go run github.com/yeisme/docflow/cmd/schema
func main() {
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		panic(err)
	}

	outputs := map[string]func(io.Writer) error{
		"modules_schema.json":   schema.GenReportSchema,
		"functions_schema.json": schema.GenFunctionsSchema,
		"config_schema.json":    schema.GenConfigSchema,
	}
	for name, gen := range outputs {
		if err := writeSchema(filepath.Join(docsDir, name), gen); err != nil {
			panic(err)
		}
	}
}

func writeSchema(path string, gen func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return gen(f)
}
