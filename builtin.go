// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"embed"
	"fmt"
)

// builtinSchemaFS stores the starter record schema embedded into the package.
//
//go:embed schema/example.schema.json
var builtinSchemaFS embed.FS

// builtinSchemaPath is the embedded starter schema location.
const builtinSchemaPath = "schema/example.schema.json"

// ExampleSchema returns the built-in starter record schema text. It covers
// every dialect feature and generates valid artifacts as delivered.
func ExampleSchema() (string, error) {
	data, err := builtinSchemaFS.ReadFile(builtinSchemaPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinSchema, err)
	}

	return string(data), nil
}
