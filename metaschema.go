// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// dialectSchemaID identifies the published record schema dialect document.
const dialectSchemaID = "https://github.com/woozymasta/schemaliquid/schema/dialect.schema.json"

// RecordSchema is the authoring dialect for record schema documents. It
// exists for reflection into the dialect meta-schema; generation itself
// decodes documents through an order-preserving parser.
type RecordSchema struct {
	// Title names the record kind described by the schema.
	Title string `json:"title,omitempty"`
	// Type is the root type and must be object when present.
	Type string `json:"type,omitempty" jsonschema:"enum=object"`
	// Properties lists the record fields; declaration order is the output order.
	Properties map[string]FieldSchema `json:"properties,omitempty"`
}

// FieldSchema is one property node of the authoring dialect.
type FieldSchema struct {
	// Type selects scalar, object, or array rendering.
	Type string `json:"type,omitempty" jsonschema:"enum=string,enum=number,enum=integer,enum=boolean,enum=object,enum=array"`
	// Title is the visible field label.
	Title string `json:"title,omitempty"`
	// Description becomes the label tooltip.
	Description string `json:"description,omitempty"`
	// Format encodes link rendering: url, urlfragment~<baseurl>, or
	// jjresolver~<collection>~<selector>~<field>~<baseurl>.
	Format string `json:"format,omitempty"`
	// Section groups adjacent top-level fields into one container.
	Section string `json:"section,omitempty"`
	// Comment starting with jjskip excludes the field from the page skeleton.
	Comment string `json:"$comment,omitempty"`
	// Items describes array element schemas.
	Items *FieldSchema `json:"items,omitempty"`
	// Properties describes nested object fields.
	Properties map[string]FieldSchema `json:"properties,omitempty"`
}

// DialectSchema returns the JSON Schema describing the record schema
// authoring dialect, for editor validation of format, section, and
// $comment conventions.
func DialectSchema() ([]byte, error) {
	// Documents legitimately carry foreign keywords like $schema and $id;
	// the parser ignores them, so the dialect must not reject them.
	reflector := &jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := reflector.Reflect(&RecordSchema{})
	schema.ID = jsonschema.ID(dialectSchemaID)
	schema.Title = "Record schema dialect"
	schema.Description = "Describes record schema documents accepted by schemaliquid."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeMetaSchema, err)
	}

	return append(data, '\n'), nil
}
