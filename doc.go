// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

/*
Package schemaliquid generates Jekyll site artifacts from record schema
documents.

A record schema is a JSON Schema document describing one flat data record.
From it the package renders a Liquid include fragment for _includes/ and a
markdown page skeleton with YAML front matter, both ordered by property
declaration order. A companion builder assembles the config_map block that
resolver lookups inside the fragment read from site configuration.

Generate both artifacts from schema bytes:

	schemaBytes, err := os.ReadFile("record.schema.json")
	if err != nil {
		return err
	}

	artifacts, err := schemaliquid.Generate(schemaBytes, schemaliquid.Options{
		Separator: "<br/>",
	})
	if err != nil {
		return err
	}

	fmt.Println(artifacts.Include)
	fmt.Println(artifacts.Page)

Generate directly from file and persist:

	artifacts, err := schemaliquid.GenerateFile("record.schema.json", schemaliquid.Options{})
	if err != nil {
		return err
	}

	if err := artifacts.Write("_includes/record.html", "_templates/record.md"); err != nil {
		return err
	}

Build the config map from an existing collection:

	data, skipped, err := schemaliquid.BuildConfigMap("_cocs", []string{"identifier", "commonName"})
	if err != nil {
		return err
	}

	for _, name := range skipped {
		fmt.Fprintf(os.Stderr, "warning: skipping %s: no front matter\n", name)
	}

	fmt.Print(string(data))

Print the dialect meta-schema for editor validation:

	dialect, err := schemaliquid.DialectSchema()
	if err != nil {
		return err
	}

	fmt.Print(string(dialect))

Start from the built-in example schema:

	example, err := schemaliquid.ExampleSchema()
	if err != nil {
		return err
	}

	fmt.Print(example)
*/
package schemaliquid
