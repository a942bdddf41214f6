// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"fmt"
	"os"
	"strings"
)

const (
	// DefaultSeparator is emitted after each scalar value line.
	DefaultSeparator = "<br/>"
	// DefaultBodyPlaceholder is the page skeleton body line.
	DefaultBodyPlaceholder = "<!-- Add page content here -->"
)

// Options configures include fragment and page skeleton generation.
type Options struct {
	// Separator is the token appended after each scalar value.
	Separator string
	// BodyPlaceholder is the body line of the page skeleton.
	BodyPlaceholder string
}

// Artifacts holds both generated texts for one record schema.
type Artifacts struct {
	// Include is the Liquid include fragment.
	Include string
	// Page is the markdown page skeleton.
	Page string
}

// GenerateFile reads a record schema from file and generates both artifacts.
func GenerateFile(path string, opt Options) (Artifacts, error) {
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: %w", ErrReadSchemaFile, err)
	}

	return Generate(schemaBytes, opt)
}

// Generate converts record schema bytes into the include fragment and the
// page skeleton. Both artifacts are rendered fully in memory; any error
// means neither is produced.
func Generate(schemaBytes []byte, opt Options) (Artifacts, error) {
	opt = opt.normalize()

	schema, err := loadRecordSchema(schemaBytes)
	if err != nil {
		return Artifacts{}, err
	}

	include, err := renderInclude(schema, opt)
	if err != nil {
		return Artifacts{}, err
	}

	return Artifacts{
		Include: include,
		Page:    renderPage(schema, opt),
	}, nil
}

// Write persists both artifacts to the given paths.
func (artifacts Artifacts) Write(includePath, pagePath string) error {
	if err := os.WriteFile(includePath, []byte(artifacts.Include), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, includePath, err)
	}

	if err := os.WriteFile(pagePath, []byte(artifacts.Page), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, pagePath, err)
	}

	return nil
}

// normalize fills unset options with package defaults.
func (opt Options) normalize() Options {
	if strings.TrimSpace(opt.Separator) == "" {
		opt.Separator = DefaultSeparator
	}

	if strings.TrimSpace(opt.BodyPlaceholder) == "" {
		opt.BodyPlaceholder = DefaultBodyPlaceholder
	}

	return opt
}
