// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import "errors"

var (
	// ErrReadSchemaFile is returned when schema file loading fails.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrDecodeSchema is returned when schema document decoding fails.
	ErrDecodeSchema = errors.New("decode schema")
	// ErrSchemaRootType is returned when schema root is not an object mapping.
	ErrSchemaRootType = errors.New("schema root must be an object")
	// ErrObjectWithoutProperties is returned when an object-typed property declares no properties.
	ErrObjectWithoutProperties = errors.New("object property without properties")
	// ErrArrayWithoutItems is returned when an array-typed property declares no items.
	ErrArrayWithoutItems = errors.New("array property without items")
	// ErrResolverFormat is returned when a resolver format string has the wrong argument count.
	ErrResolverFormat = errors.New("malformed resolver format")
	// ErrWriteArtifact is returned when a generated artifact cannot be written.
	ErrWriteArtifact = errors.New("write artifact file")
	// ErrScanCollection is returned when collection directory scanning fails.
	ErrScanCollection = errors.New("scan collection directory")
	// ErrEncodeConfigMap is returned when config map YAML encoding fails.
	ErrEncodeConfigMap = errors.New("encode config map yaml")
	// ErrEncodeMetaSchema is returned when dialect schema encoding fails.
	ErrEncodeMetaSchema = errors.New("encode dialect schema")
	// ErrReadBuiltinSchema is returned when built-in schema file loading fails.
	ErrReadBuiltinSchema = errors.New("read built-in schema")
)
