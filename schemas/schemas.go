// Package schemas carries the embedded JSON Schemas used to validate
// experiment and manual-answer files before they are decoded.
package schemas

import (
	_ "embed"
)

// ExperimentSchemaJSON is the JSON Schema for experiment.yaml files.
//
//go:embed experiment.schema.json
var ExperimentSchemaJSON string

// ManualSchemaJSON is the JSON Schema for manual-answer JSON files.
//
//go:embed manual.schema.json
var ManualSchemaJSON string
