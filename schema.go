// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	typeString = "string"
	typeObject = "object"
	typeArray  = "array"
)

// property is one ordered (name, node) pair from a properties mapping.
// Declaration order is the on-page visual order and must survive parsing.
type property struct {
	Name string
	Node *fieldNode
}

// fieldNode is one property node in the record schema tree.
type fieldNode struct {
	Type        string
	Title       string
	Description string
	Format      string
	Section     string
	Comment     string
	Items       *fieldNode
	Properties  []property

	// Resolver holds the spec decoded from Format; resolverDecoded marks
	// nodes the decode pass has already visited.
	Resolver        *resolverSpec
	resolverDecoded bool
}

// recordSchema is the parsed root of one record schema document.
type recordSchema struct {
	Title      string
	Type       string
	Properties []property
}

// fieldPath is the ordered property name chain from a top-level field down to a nested field.
type fieldPath []string

// Child returns a new path extended with one property name.
func (path fieldPath) Child(name string) fieldPath {
	out := make(fieldPath, 0, len(path)+1)
	out = append(out, path...)
	return append(out, name)
}

// String returns the dotted display form of the path.
func (path fieldPath) String() string {
	return strings.Join(path, ".")
}

// DataRef returns the Liquid data context reference for the path.
func (path fieldPath) DataRef() string {
	return dataContextName + "." + path.String()
}

// VarName returns an assign-safe Liquid variable base for the path.
func (path fieldPath) VarName() string {
	joined := strings.Join(path, "_")

	var out strings.Builder
	out.Grow(len(joined))
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}

	return out.String()
}

// ClassName returns a CSS class attribute value for the path.
func (path fieldPath) ClassName() string {
	return strings.Join(path, "-")
}

// Leaf returns the last property name of the path.
func (path fieldPath) Leaf() string {
	if len(path) == 0 {
		return ""
	}

	return path[len(path)-1]
}

// loadRecordSchema parses schema bytes and runs the resolver decode pass over top-level properties.
func loadRecordSchema(schemaBytes []byte) (*recordSchema, error) {
	schema, err := parseRecordSchema(schemaBytes)
	if err != nil {
		return nil, err
	}

	for _, prop := range schema.Properties {
		if err := decodeResolver(prop.Node, fieldPath{prop.Name}); err != nil {
			return nil, err
		}
	}

	return schema, nil
}

// parseRecordSchema decodes record schema bytes into the ordered schema tree.
func parseRecordSchema(schemaBytes []byte) (*recordSchema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(schemaBytes, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	root := documentRoot(&doc)
	if root == nil {
		return nil, fmt.Errorf("%w: empty document", ErrDecodeSchema)
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w, got %s", ErrSchemaRootType, yamlKindName(root.Kind))
	}

	schema := new(recordSchema)
	if err := schema.decodeRoot(root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSchema, err)
	}

	if schema.Type != "" && schema.Type != typeObject {
		return nil, fmt.Errorf("%w, got type %q", ErrSchemaRootType, schema.Type)
	}

	return schema, nil
}

// decodeRoot fills the record schema root from a document mapping node.
// Unknown keys ($schema, $id, required, ...) are ignored.
func (schema *recordSchema) decodeRoot(root *yaml.Node) error {
	for index := 0; index+1 < len(root.Content); index += 2 {
		key := root.Content[index].Value
		raw := root.Content[index+1]

		switch key {
		case "title":
			if err := raw.Decode(&schema.Title); err != nil {
				return fmt.Errorf("root %q: %w", key, err)
			}
		case "type":
			if err := raw.Decode(&schema.Type); err != nil {
				return fmt.Errorf("root %q: %w", key, err)
			}
		case "properties":
			properties, err := decodeOrderedProperties(raw)
			if err != nil {
				return err
			}

			schema.Properties = properties
		}
	}

	return nil
}

// UnmarshalYAML decodes one schema node while preserving property declaration order.
func (node *fieldNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("schema node must be a mapping, got %s", yamlKindName(value.Kind))
	}

	for index := 0; index+1 < len(value.Content); index += 2 {
		key := value.Content[index].Value
		raw := value.Content[index+1]

		var err error
		switch key {
		case "type":
			err = raw.Decode(&node.Type)
		case "title":
			err = raw.Decode(&node.Title)
		case "description":
			err = raw.Decode(&node.Description)
		case "format":
			err = raw.Decode(&node.Format)
		case "section":
			err = raw.Decode(&node.Section)
		case "$comment":
			err = raw.Decode(&node.Comment)
		case "items":
			node.Items = new(fieldNode)
			err = raw.Decode(node.Items)
		case "properties":
			node.Properties, err = decodeOrderedProperties(raw)
		}

		if err != nil {
			return fmt.Errorf("node %q: %w", key, err)
		}
	}

	return nil
}

// decodeOrderedProperties converts a properties mapping into ordered (name, node) pairs.
func decodeOrderedProperties(value *yaml.Node) ([]property, error) {
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("properties must be a mapping, got %s", yamlKindName(value.Kind))
	}

	out := make([]property, 0, len(value.Content)/2)
	for index := 0; index+1 < len(value.Content); index += 2 {
		name := value.Content[index].Value
		child := new(fieldNode)
		if err := value.Content[index+1].Decode(child); err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}

		out = append(out, property{Name: name, Node: child})
	}

	return out, nil
}

// documentRoot unwraps the yaml document wrapper around the parsed root node.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}

		return doc.Content[0]
	}

	if doc.Kind == 0 {
		return nil
	}

	return doc
}

// yamlKindName returns a readable name for one yaml node kind.
func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
