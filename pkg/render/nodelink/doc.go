// Package nodelink renders a site's spanning tree as a node-link diagram.
//
// # Overview
//
// Probes become circles pinned at their real coordinates, and tree edges
// become straight cable runs between them. The root probe (the one the tree
// was grown from) is filled. Probes removed as faulty can be overlaid as
// dashed markers.
//
// # Usage
//
//	res, err := s.Build()
//	dot := nodelink.ToDOT(s.Points(), res, nodelink.Options{Lengths: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// [ToDOT] emits an undirected graph whose nodes carry pos="x,y!" attributes
// in points (inputscale=72). Layout engines other than neato ignore pinned
// positions, so when feeding the DOT source to the graphviz command line use:
//
//	neato -n -Tsvg site.dot > site.svg
//
// [RenderSVG] uses the embedded Graphviz library and needs no external tools.
package nodelink
