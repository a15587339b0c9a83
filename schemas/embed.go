// Package schemas holds the JSON Schema documents for persisted data.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// History is the file name of the analysis history schema.
const History = "history.schema.json"
