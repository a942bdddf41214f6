// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// projectSchemaJSON is the shared record schema fixture covering every
// field shape the generator dispatches on.
const projectSchemaJSON = `{
  "title": "Open source project record",
  "type": "object",
  "properties": {
    "name": {"type": "string", "title": "Project name", "section": "Basics"},
    "website": {"type": "string", "title": "Website", "format": "url"},
    "coc": {
      "type": "string",
      "title": "Code of conduct",
      "section": "Governance",
      "format": "jjresolver~cocs~identifier~commonName~/cocs/"
    },
    "licenses": {
      "type": "array",
      "title": "Licenses",
      "items": {"type": "string", "format": "jjresolver~licenses~identifier~commonName~https://spdx.org/licenses/"}
    },
    "maintainer": {
      "type": "object",
      "title": "Maintainer",
      "section": "Contacts",
      "properties": {
        "name": {"type": "string", "title": "Name"},
        "email": {"type": "string", "title": "Email"}
      }
    },
    "slug": {"type": "string", "$comment": "jjskip: derived from the record file name"}
  }
}`

func TestGenerateProducesBothArtifacts(t *testing.T) {
	t.Parallel()

	artifacts, err := Generate([]byte(projectSchemaJSON), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, artifacts.Include, `<div class="record-section" id="basics">`)
	assertContains(t, artifacts.Include, "{% assign licenses_map = site.licenses %}")
	assertContains(t, artifacts.Include, "{% if page.maintainer.email %}")

	assertContains(t, artifacts.Page, "name: # Project name")
	assertContains(t, artifacts.Page, "<!-- Add page content here -->")
	assertNotContains(t, artifacts.Page, "slug:")
}

func TestGenerateDefaultSeparator(t *testing.T) {
	t.Parallel()

	artifacts, err := Generate([]byte(projectSchemaJSON), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, artifacts.Include, "</dd><br/>")
}

func TestGenerateCustomSeparator(t *testing.T) {
	t.Parallel()

	artifacts, err := Generate([]byte(projectSchemaJSON), Options{Separator: "<hr>"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, artifacts.Include, "</dd><hr>")
	assertNotContains(t, artifacts.Include, "<br/>")
}

func TestGenerateBlankSeparatorFallsBackToDefault(t *testing.T) {
	t.Parallel()

	artifacts, err := Generate([]byte(projectSchemaJSON), Options{Separator: "   "})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	assertContains(t, artifacts.Include, "</dd><br/>")
}

func TestGenerateReturnsZeroArtifactsOnError(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"decode":       `{"type": "object", "properties": {`,
		"root-type":    `{"type": "array"}`,
		"empty-object": `{"type": "object", "properties": {"meta": {"type": "object"}}}`,
		"bare-array":   `{"type": "object", "properties": {"topics": {"type": "array"}}}`,
		"bad-resolver": `{"type": "object", "properties": {"coc": {"type": "string", "format": "jjresolver~cocs"}}}`,
	}

	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			artifacts, err := Generate([]byte(body), Options{})
			if err == nil {
				t.Fatal("expected error")
			}

			if artifacts.Include != "" || artifacts.Page != "" {
				t.Fatalf("partial artifacts on error: %+v", artifacts)
			}
		})
	}
}

func TestGenerateFileMatchesGenerate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "project.schema.json")
	if err := os.WriteFile(path, []byte(projectSchemaJSON), 0o600); err != nil {
		t.Fatalf("write schema fixture: %v", err)
	}

	fromFile, err := GenerateFile(path, Options{})
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}

	fromBytes, err := Generate([]byte(projectSchemaJSON), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if fromFile != fromBytes {
		t.Fatalf("file and in-memory artifacts diverge:\n%+v\n%+v", fromFile, fromBytes)
	}
}

func TestGenerateFileMissingInput(t *testing.T) {
	t.Parallel()

	_, err := GenerateFile(filepath.Join(t.TempDir(), "missing.json"), Options{})
	if !errors.Is(err, ErrReadSchemaFile) {
		t.Fatalf("expected ErrReadSchemaFile, got: %v", err)
	}
}

func TestArtifactsWriteCreatesBothFiles(t *testing.T) {
	t.Parallel()

	artifacts, err := Generate([]byte(projectSchemaJSON), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	dir := t.TempDir()
	includePath := filepath.Join(dir, "record.html")
	pagePath := filepath.Join(dir, "record.md")
	if err := artifacts.Write(includePath, pagePath); err != nil {
		t.Fatalf("Write: %v", err)
	}

	include, err := os.ReadFile(includePath)
	if err != nil {
		t.Fatalf("read include: %v", err)
	}

	page, err := os.ReadFile(pagePath)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}

	if string(include) != artifacts.Include || string(page) != artifacts.Page {
		t.Fatal("written artifacts do not match generated texts")
	}
}

func TestArtifactsWriteReportsFailedPath(t *testing.T) {
	t.Parallel()

	artifacts, err := Generate([]byte(projectSchemaJSON), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	dir := t.TempDir()
	badPath := filepath.Join(dir, "missing", "record.html")
	writeErr := artifacts.Write(badPath, filepath.Join(dir, "record.md"))
	if !errors.Is(writeErr, ErrWriteArtifact) {
		t.Fatalf("expected ErrWriteArtifact, got: %v", writeErr)
	}

	assertContains(t, writeErr.Error(), badPath)
}
