// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import "strings"

const (
	// frontMatterDelimiter fences the front matter block of a Jekyll page.
	frontMatterDelimiter = "---"
	// skipSentinel marks $comment values excluding a field from the page skeleton.
	skipSentinel = "jjskip"
)

// renderPage emits the markdown page skeleton: the schema title as a
// leading front matter comment, one key per top-level property in
// declaration order, then the body placeholder. A property whose
// $comment starts with the skip sentinel is left out, keeping derived
// fields away from page authors.
func renderPage(schema *recordSchema, opt Options) string {
	var out strings.Builder

	out.WriteString(frontMatterDelimiter + "\n")
	if schema.Title != "" {
		out.WriteString("# " + schema.Title + "\n")
	}
	for _, prop := range schema.Properties {
		if strings.HasPrefix(prop.Node.Comment, skipSentinel) {
			continue
		}

		out.WriteString(prop.Name + ":")
		if prop.Node.Title != "" {
			out.WriteString(" # " + prop.Node.Title)
		}

		out.WriteByte('\n')
	}

	out.WriteString(frontMatterDelimiter + "\n\n")
	out.WriteString(opt.BodyPlaceholder + "\n")

	return out.String()
}
