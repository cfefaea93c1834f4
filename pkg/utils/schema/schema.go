// Package schema provides utilities for working with JSON schemas.
package schema

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"

	"github.com/yeisme/docflow/pkg/configs"
	"github.com/yeisme/docflow/pkg/models"
)

func write(out io.Writer, s *jsonschema.Schema) error {
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}

// GenReportSchema generates the JSON schema for modules.json and writes it to the provided writer.
func GenReportSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	return write(out, reflector.Reflect(&models.Report{}))
}

// GenFunctionsSchema generates the JSON schema for the document printed by `docflow functions`.
func GenFunctionsSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	return write(out, reflector.Reflect(&models.FunctionsReport{}))
}

// GenConfigSchema generates the JSON schema for the entire application configuration and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	return write(out, reflector.Reflect(&configs.Config{}))
}
