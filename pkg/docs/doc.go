// Package docs generates typekit's reference documentation from the
// library's own declarations. The enum tables are produced by walking
// the live enumeration values, so the generated pages cannot drift from
// the code.
//
// The pipeline is Reference -> Site -> Write: Reference assembles
// markdown pages and SVG figures into a Site, Write renders the Site to
// an output directory. Preview renders a single page for the terminal.
package docs
