// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeResolverAttachesSpec(t *testing.T) {
	t.Parallel()

	node := &fieldNode{
		Type:   typeString,
		Format: "jjresolver~licenses~identifier~commonName~https://spdx.org/licenses/",
	}

	if err := decodeResolver(node, fieldPath{"license"}); err != nil {
		t.Fatalf("decodeResolver: %v", err)
	}

	want := resolverSpec{
		Collection: "licenses",
		Selector:   "identifier",
		Display:    "commonName",
		BaseURL:    "https://spdx.org/licenses/",
	}
	if node.Resolver == nil || *node.Resolver != want {
		t.Fatalf("resolver = %+v, want %+v", node.Resolver, want)
	}
}

func TestDecodeResolverTargetsArrayItems(t *testing.T) {
	t.Parallel()

	node := &fieldNode{
		Type: typeArray,
		Items: &fieldNode{
			Type:   typeString,
			Format: "jjresolver~cocs~identifier~commonName~/cocs/",
		},
	}

	if err := decodeResolver(node, fieldPath{"coc"}); err != nil {
		t.Fatalf("decodeResolver: %v", err)
	}

	if node.Resolver != nil {
		t.Fatalf("resolver attached to the array node itself: %+v", node.Resolver)
	}

	if node.Items.Resolver == nil || node.Items.Resolver.Collection != "cocs" {
		t.Fatalf("item resolver = %+v", node.Items.Resolver)
	}
}

func TestDecodeResolverIsIdempotent(t *testing.T) {
	t.Parallel()

	node := &fieldNode{
		Type:   typeString,
		Format: "jjresolver~cocs~identifier~commonName~/cocs/",
	}

	if err := decodeResolver(node, fieldPath{"coc"}); err != nil {
		t.Fatalf("first decode: %v", err)
	}

	first := node.Resolver
	if err := decodeResolver(node, fieldPath{"coc"}); err != nil {
		t.Fatalf("second decode: %v", err)
	}

	// The second pass must be a no-op, not a re-parse.
	if node.Resolver != first {
		t.Fatalf("resolver replaced on re-decode: %p != %p", node.Resolver, first)
	}
}

func TestDecodeResolverKeepsBaseURLWhole(t *testing.T) {
	t.Parallel()

	node := &fieldNode{
		Type:   typeString,
		Format: "jjresolver~docs~id~name~https://example.com/a~b/c",
	}

	if err := decodeResolver(node, fieldPath{"doc"}); err != nil {
		t.Fatalf("decodeResolver: %v", err)
	}

	if node.Resolver.BaseURL != "https://example.com/a~b/c" {
		t.Fatalf("base URL = %q", node.Resolver.BaseURL)
	}
}

func TestDecodeResolverSkipsOtherFormats(t *testing.T) {
	t.Parallel()

	cases := map[string]*fieldNode{
		"plain":       {Type: typeString},
		"url":         {Type: typeString, Format: "url"},
		"urlfragment": {Type: typeString, Format: "urlfragment~https://github.com/"},
		"non-string":  {Type: "integer", Format: "jjresolver~a~b~c~d"},
		"empty-array": {Type: typeArray},
	}

	for name, node := range cases {
		node := node
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if err := decodeResolver(node, fieldPath{"field"}); err != nil {
				t.Fatalf("decodeResolver: %v", err)
			}

			if node.Resolver != nil {
				t.Fatalf("unexpected resolver: %+v", node.Resolver)
			}
		})
	}
}

func TestDecodeResolverRejectsShortArgumentList(t *testing.T) {
	t.Parallel()

	node := &fieldNode{
		Type:   typeString,
		Format: "jjresolver~cocs~identifier",
	}

	err := decodeResolver(node, fieldPath{"meta"}.Child("coc"))
	if !errors.Is(err, ErrResolverFormat) {
		t.Fatalf("expected ErrResolverFormat, got: %v", err)
	}

	message := err.Error()
	if !strings.Contains(message, `"meta.coc"`) {
		t.Fatalf("error does not name the field path: %v", err)
	}

	if !strings.Contains(message, "needs 4 arguments, got 2") {
		t.Fatalf("error does not report the arity: %v", err)
	}
}

func TestClassifyFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		format  string
		kind    formatKind
		baseURL string
	}{
		{name: "empty", format: "", kind: formatKindPlain},
		{name: "url", format: "url", kind: formatKindURL},
		{name: "fragment", format: "urlfragment~https://github.com/", kind: formatKindURLFragment, baseURL: "https://github.com/"},
		{name: "fragment-bare", format: "urlfragment", kind: formatKindURLFragment},
		{name: "fragment-tilde-base", format: "urlfragment~https://example.org/a~b#", kind: formatKindURLFragment, baseURL: "https://example.org/a~b#"},
		{name: "resolver", format: "jjresolver~a~b~c~d", kind: formatKindPlain},
		{name: "head-prefix", format: "urlx", kind: formatKindPlain},
		{name: "unrelated", format: "date-time", kind: formatKindPlain},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			kind, baseURL := classifyFormat(tc.format)
			if kind != tc.kind || baseURL != tc.baseURL {
				t.Fatalf("classifyFormat(%q) = (%v, %q), want (%v, %q)",
					tc.format, kind, baseURL, tc.kind, tc.baseURL)
			}
		})
	}
}
