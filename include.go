// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaliquid

package schemaliquid

import (
	"fmt"
	"html"
	"strings"
)

// sectionClass is the class attribute shared by all section containers.
const sectionClass = "record-section"

// includeRenderer emits the Liquid include fragment for one record schema.
type includeRenderer struct {
	out strings.Builder
	opt Options
}

// valueMarkup is the emission plan for one field value: setup lines bound
// once before any loop, lookup lines bound next to the value, and the
// inline fragment itself.
type valueMarkup struct {
	Setup  []string
	Lookup []string
	Inline string
}

// renderInclude walks top-level properties in declaration order and wraps
// their markup in section containers.
//
// The first container opens implicitly: labeled when the first property
// declares a section, unlabeled otherwise, so no close precedes the very
// first open. A later property declaring a label different from the
// current one closes the open container and opens a labeled one;
// properties without a label stay where they are. The final container is
// closed unconditionally, so opens and closes always balance and a schema
// with no properties still emits one empty container.
func renderInclude(schema *recordSchema, opt Options) (string, error) {
	renderer := includeRenderer{opt: opt}

	open := false
	current := ""
	for _, prop := range schema.Properties {
		switch label := prop.Node.Section; {
		case label != "" && label != current:
			if open {
				renderer.closeSection()
			}

			renderer.openSection(label)
			open = true
			current = label
		case !open:
			renderer.openSection("")
			open = true
		}

		if err := renderer.renderField(fieldPath{prop.Name}, prop.Node, 1); err != nil {
			return "", err
		}
	}

	if !open {
		renderer.openSection("")
	}

	renderer.closeSection()
	return ensureTrailingNewline(renderer.out.String()), nil
}

// renderField dispatches one property by its declared type.
func (renderer *includeRenderer) renderField(path fieldPath, node *fieldNode, depth int) error {
	switch node.Type {
	case typeObject:
		return renderer.renderObject(path, node, depth)
	case typeArray:
		return renderer.renderArray(path, node, depth)
	default:
		renderer.renderScalar(path, node, depth)
		return nil
	}
}

// renderScalar emits one guarded definition pair: label, value span, separator.
func (renderer *includeRenderer) renderScalar(path fieldPath, node *fieldNode, depth int) {
	ref := path.DataRef()
	span := valueSpan(ref, path, node)

	renderer.writeLine(depth, liquidIf(ref))
	for _, line := range span.Setup {
		renderer.writeLine(depth+1, line)
	}

	for _, line := range span.Lookup {
		renderer.writeLine(depth+1, line)
	}

	renderer.writeLine(depth+1, fieldLabel(path, node))
	renderer.writeLine(depth+1, "<dd>"+span.Inline+"</dd>"+renderer.opt.Separator)
	renderer.writeLine(depth, liquidEndIf)
}

// renderArray emits a guarded, labeled list iterating the fixed loop
// variable over the field values. A resolver on the item schema binds its
// collection once before the loop; the per-item lookup runs inside it.
func (renderer *includeRenderer) renderArray(path fieldPath, node *fieldNode, depth int) error {
	if node.Items == nil {
		return fmt.Errorf("%w: field %q", ErrArrayWithoutItems, path.String())
	}

	ref := path.DataRef()
	span := valueSpan(loopVarName, path, node.Items)

	renderer.writeLine(depth, liquidIf(ref))
	renderer.writeLine(depth+1, "<h3>"+html.EscapeString(displayTitle(path, node))+"</h3>")
	renderer.writeLine(depth+1, "<ul>")
	for _, line := range span.Setup {
		renderer.writeLine(depth+1, line)
	}

	renderer.writeLine(depth+1, liquidFor(ref))
	for _, line := range span.Lookup {
		renderer.writeLine(depth+2, line)
	}

	renderer.writeLine(depth+2, "<li>"+span.Inline+"</li>")
	renderer.writeLine(depth+1, liquidEndFor)
	renderer.writeLine(depth+1, "</ul>")
	renderer.writeLine(depth, liquidEndIf)
	return nil
}

// renderObject renders nested object properties with qualified dotted paths.
// Children pass through resolver decode again; the decode marker makes the
// repeat visit a no-op for nodes the load pass already handled.
func (renderer *includeRenderer) renderObject(path fieldPath, node *fieldNode, depth int) error {
	if node.Properties == nil {
		return fmt.Errorf("%w: field %q", ErrObjectWithoutProperties, path.String())
	}

	for _, prop := range node.Properties {
		childPath := path.Child(prop.Name)
		if err := decodeResolver(prop.Node, childPath); err != nil {
			return err
		}

		if err := renderer.renderField(childPath, prop.Node, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// openSection opens one section container, with an anchored heading when labeled.
func (renderer *includeRenderer) openSection(label string) {
	if label == "" {
		renderer.writeLine(0, `<div class="`+sectionClass+`">`)
		return
	}

	renderer.writeLine(0, `<div class="`+sectionClass+`" id="`+sectionAnchor(label)+`">`)
	renderer.writeLine(1, "<h2>"+html.EscapeString(label)+"</h2>")
}

// closeSection closes the currently open section container.
func (renderer *includeRenderer) closeSection() {
	renderer.writeLine(0, "</div>")
}

// writeLine writes one markup line at the given nesting depth.
func (renderer *includeRenderer) writeLine(depth int, text string) {
	renderer.out.WriteString(strings.Repeat(indentUnit, depth))
	renderer.out.WriteString(text)
	renderer.out.WriteByte('\n')
}

// valueSpan selects value markup by format priority:
// url anchor, urlfragment anchor, resolver lookup, plain labeled span.
func valueSpan(ref string, path fieldPath, node *fieldNode) valueMarkup {
	kind, base := classifyFormat(node.Format)
	switch {
	case kind == formatKindURL:
		return valueMarkup{Inline: htmlAnchor(liquidOutput(ref), liquidOutput(ref))}
	case kind == formatKindURLFragment:
		return valueMarkup{Inline: htmlAnchor(html.EscapeString(base)+liquidOutput(ref), liquidOutput(ref))}
	case node.Resolver != nil:
		return resolverMarkup(ref, path, node.Resolver)
	default:
		return valueMarkup{Inline: `<span class="` + path.ClassName() + `">` + liquidOutput(ref) + "</span>"}
	}
}

// resolverMarkup builds the collection binding, the entry lookup, and a
// guarded anchor that falls back to the raw value when the lookup misses.
func resolverMarkup(ref string, path fieldPath, spec *resolverSpec) valueMarkup {
	mapVar := path.VarName() + mapVarSuffix
	entryVar := path.VarName() + entryVarSuffix

	anchor := htmlAnchor(
		html.EscapeString(spec.BaseURL)+liquidOutput(entryVar+"."+spec.Selector),
		liquidOutput(entryVar+"."+spec.Display),
	)

	return valueMarkup{
		Setup:  []string{liquidAssign(mapVar, collectionContextName+"."+spec.Collection)},
		Lookup: []string{liquidAssign(entryVar, liquidWhereFirst(mapVar, spec.Selector, ref))},
		Inline: liquidIf(entryVar) + anchor + liquidElse + liquidOutput(ref) + liquidEndIf,
	}
}

// fieldLabel builds the dt label line, with a tooltip abbr when a description exists.
func fieldLabel(path fieldPath, node *fieldNode) string {
	title := html.EscapeString(displayTitle(path, node))
	if node.Description == "" {
		return "<dt>" + title + "</dt>"
	}

	return `<dt><abbr title="` + html.EscapeString(node.Description) + `">` + title + "</abbr></dt>"
}

// displayTitle returns the node title, falling back to the last path segment.
func displayTitle(path fieldPath, node *fieldNode) string {
	if node.Title != "" {
		return node.Title
	}

	return path.Leaf()
}
