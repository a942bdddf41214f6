// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"fmt"
	"strings"
)

const (
	// formatSeparator splits a format-string head from its arguments.
	formatSeparator = "~"
	// formatURL marks a field rendered as a self-referencing anchor.
	formatURL = "url"
	// formatURLFragment marks a field appended to a base URL.
	formatURLFragment = "urlfragment"
	// formatResolver marks a field resolved against a site collection.
	formatResolver = "jjresolver"
	// resolverArgCount is the fixed resolver argument count:
	// collection, selector, display field, base URL.
	resolverArgCount = 4
)

// resolverSpec is the decoded form of one jjresolver format string.
type resolverSpec struct {
	// Collection is the site collection name bound before any lookup.
	Collection string
	// Selector is the entry key matched against the field value.
	Selector string
	// Display is the entry key rendered as link text.
	Display string
	// BaseURL prefixes the matched entry selector in anchor hrefs.
	BaseURL string
}

// formatKind classifies one format string for value span rendering.
type formatKind int

const (
	formatKindPlain formatKind = iota
	formatKindURL
	formatKindURLFragment
)

// decodeResolver decodes a resolver format string on one property and attaches the spec.
//
// Array properties are inspected through their item schema. The decode is
// idempotent: the target is marked on the first visit and never re-parsed,
// so re-entry from the recursive object renderer cannot corrupt or
// duplicate an attached spec. Formats without the resolver token are left
// alone; only a token with the wrong argument count is an error.
func decodeResolver(node *fieldNode, path fieldPath) error {
	target := node
	if node.Type == typeArray && node.Items != nil {
		target = node.Items
	}

	if target.resolverDecoded {
		return nil
	}

	target.resolverDecoded = true
	if target.Type != typeString {
		return nil
	}

	rest, ok := strings.CutPrefix(target.Format, formatResolver+formatSeparator)
	if !ok {
		return nil
	}

	// The base URL may itself contain the separator, so the tail is kept whole.
	parts := strings.SplitN(rest, formatSeparator, resolverArgCount)
	if len(parts) < resolverArgCount {
		return fmt.Errorf("%w: field %q needs %d arguments, got %d",
			ErrResolverFormat, path.String(), resolverArgCount, len(parts))
	}

	target.Resolver = &resolverSpec{
		Collection: parts[0],
		Selector:   parts[1],
		Display:    parts[2],
		BaseURL:    parts[3],
	}

	return nil
}

// classifyFormat returns the value span kind and base URL argument for one format string.
// The head token is compared exactly, so url never swallows urlfragment.
func classifyFormat(format string) (formatKind, string) {
	head, rest, _ := strings.Cut(format, formatSeparator)
	switch head {
	case formatURL:
		return formatKindURL, ""
	case formatURLFragment:
		return formatKindURLFragment, rest
	default:
		return formatKindPlain, ""
	}
}
