// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// configMapKey is the top-level key of the emitted config map document.
const configMapKey = "config_map"

// BuildConfigMap scans a Jekyll collection directory and assembles the
// config_map YAML block that resolver lookups read from site configuration.
//
// Every *.md file in the directory is visited in name order. A file without
// leading front matter is reported in skipped and contributes nothing. From
// each front matter block the requested fields are collected in the
// requested order; files carrying none of the fields are dropped silently.
// No entries at all still yields a valid empty config_map document.
func BuildConfigMap(dir string, fields []string) ([]byte, []string, error) {
	paths, err := collectionFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]*yaml.Node, 0, len(paths))
	var skipped []string
	for _, path := range paths {
		entry, hasFrontMatter, err := collectEntryFields(path, fields)
		if err != nil {
			return nil, nil, err
		}

		if !hasFrontMatter {
			skipped = append(skipped, filepath.Base(path))
			continue
		}

		if entry != nil {
			entries = append(entries, entry)
		}
	}

	data, err := encodeConfigMap(entries)
	if err != nil {
		return nil, nil, err
	}

	return data, skipped, nil
}

// collectionFiles returns the *.md paths of one collection directory in name order.
func collectionFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanCollection, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrScanCollection, dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanCollection, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// collectEntryFields reads one collection file and collects the requested
// front matter fields as a mapping node. The second result reports whether
// the file has front matter at all; a file that has it but matches no
// requested field yields a nil entry.
func collectEntryFields(path string, fields []string) (*yaml.Node, bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrScanCollection, err)
	}

	frontMatter, ok := splitFrontMatter(string(content))
	if !ok {
		return nil, false, nil
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(frontMatter), &data); err != nil {
		return nil, true, fmt.Errorf("%w: front matter of %q: %w", ErrScanCollection, filepath.Base(path), err)
	}

	entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range fields {
		value, exists := data[field]
		if !exists {
			continue
		}

		valueNode, err := yamlValueNode(value)
		if err != nil {
			return nil, true, fmt.Errorf("%w: field %q of %q: %w", ErrEncodeConfigMap, field, filepath.Base(path), err)
		}

		entry.Content = append(entry.Content, yamlScalarNode("!!str", field), valueNode)
	}

	if len(entry.Content) == 0 {
		return nil, true, nil
	}

	return entry, true, nil
}

// splitFrontMatter extracts the front matter block from page content.
// Jekyll front matter opens the file and is fenced by delimiter lines;
// anything before the first delimiter disqualifies the file.
func splitFrontMatter(content string) (string, bool) {
	parts := strings.SplitN(content, frontMatterDelimiter, 3)
	if len(parts) < 3 || strings.TrimSpace(parts[0]) != "" {
		return "", false
	}

	return parts[1], true
}

// encodeConfigMap serializes collected entries as one config_map YAML document.
func encodeConfigMap(entries []*yaml.Node) ([]byte, error) {
	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	list.Content = append(list.Content, entries...)
	if len(entries) == 0 {
		list.Style = yaml.FlowStyle
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	root.Content = append(root.Content, yamlScalarNode("!!str", configMapKey), list)

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{root},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeConfigMap, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeConfigMap, err)
	}

	return out.Bytes(), nil
}

// yamlValueNode builds a deterministic yaml.Node tree from one decoded
// front matter value. Mapping keys are emitted sorted; requested field
// order is controlled by the caller, not here.
func yamlValueNode(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil

	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil

	case string:
		return yamlScalarNode("!!str", typed), nil

	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil

	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil

	case uint64:
		return yamlScalarNode("!!int", strconv.FormatUint(typed, 10)), nil

	case float64:
		return yamlScalarNode("!!float", strconv.FormatFloat(typed, 'g', -1, 64)), nil

	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range keys {
			valueNode, err := yamlValueNode(typed[key])
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, yamlScalarNode("!!str", key), valueNode)
		}

		return node, nil

	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			itemNode, err := yamlValueNode(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, itemNode)
		}

		return node, nil

	default:
		node := new(yaml.Node)
		if err := node.Encode(typed); err != nil {
			return nil, err
		}

		return node, nil
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
