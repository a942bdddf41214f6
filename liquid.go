// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"strings"
	"unicode"
)

const (
	// dataContextName is the Liquid object carrying the record's field values.
	dataContextName = "page"
	// collectionContextName is the Liquid object carrying site collections.
	collectionContextName = "site"
	// loopVarName is the fixed iteration variable for array field loops.
	loopVarName = "item"
	// mapVarSuffix and entryVarSuffix name the per-field resolver variables.
	mapVarSuffix   = "_map"
	entryVarSuffix = "_entry"
	// indentUnit is one nesting step in emitted markup.
	indentUnit = "  "
)

const (
	liquidElse   = "{% else %}"
	liquidEndIf  = "{% endif %}"
	liquidEndFor = "{% endfor %}"
)

// liquidOutput wraps one expression in Liquid output delimiters.
func liquidOutput(expr string) string {
	return "{{ " + expr + " }}"
}

// liquidIf opens a truthiness guard on one reference.
func liquidIf(ref string) string {
	return "{% if " + ref + " %}"
}

// liquidFor opens a loop binding the fixed loop variable to one reference.
func liquidFor(ref string) string {
	return "{% for " + loopVarName + " in " + ref + " %}"
}

// liquidAssign binds one Liquid variable to an expression.
func liquidAssign(name, expr string) string {
	return "{% assign " + name + " = " + expr + " %}"
}

// liquidWhereFirst builds the filter chain selecting the first entry whose
// selector key equals the referenced value.
func liquidWhereFirst(mapVar, selector, valueRef string) string {
	return mapVar + ` | where: "` + selector + `", ` + valueRef + ` | first`
}

// htmlAnchor builds one anchor element from already-safe href and text fragments.
func htmlAnchor(href, text string) string {
	return `<a href="` + href + `">` + text + `</a>`
}

// sectionAnchor converts a section label into an id attribute slug.
func sectionAnchor(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
