package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// DotOptions configures Graphviz diagram generation.
type DotOptions struct {
	// Detailed includes utilization and type labels on container nodes.
	// When false, only names and dimensions are shown.
	Detailed bool
}

// ToDOT converts a kitchen tree to Graphviz DOT format. Containment edges
// point from parent to child. Items are rendered with dashed grey outlines to
// distinguish them from containers. The resulting DOT string can be rendered
// with [RenderSVG].
func ToDOT(root resource.Resource, nameOf NameFunc, opts DotOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph kitchen {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	resource.Walk(root, func(r resource.Resource, _ int) bool {
		attrs := []string{fmt.Sprintf("label=%q", dotLabel(r, nameOf, opts))}
		if r.Type() == resource.TypeItem {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", r.ID().String(), strings.Join(attrs, ", "))
		return true
	})

	buf.WriteString("\n")
	resource.Walk(root, func(r resource.Resource, _ int) bool {
		for _, child := range r.Children() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", r.ID().String(), child.ID().String())
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(r resource.Resource, nameOf NameFunc, opts DotOptions) string {
	parts := []string{label(r, nameOf)}
	if opts.Detailed && r.Type() != resource.TypeItem {
		parts = append(parts,
			fmt.Sprintf("type: %s", r.Type()),
			fmt.Sprintf("utilization: %.1f%%", r.Utilization()*100))
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer <svg> tag so the viewBox is anchored at
// the origin. Graphviz emits offset viewBoxes that confuse some viewers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
