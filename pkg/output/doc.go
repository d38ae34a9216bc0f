// Package output renders scan reports for people and tools.
//
// Four formats are supported:
//
//	text        colored terminal summary (lipgloss styles, plain when piped)
//	json        the report as indented JSON
//	markdown    a markdown document, rendered with glamour on a terminal
//	checkstyle  checkstyle XML for CI annotation tooling
//
// Color is resolved once per writer by ResolveColor, honoring NO_COLOR, the
// configured mode and whether the writer is a terminal.
package output
