// Package ui holds the presentational templ components of the site: text
// blocks, links, images, the sign-up form and the error views used by the
// handler error handler.
//
// Components are plain templ.Component values and render with any
// templ-aware response:
//
//	handler.Templ(ui.Text(ui.TextProps{Size: ui.H1, Text: "Output Field"}))
//
// Text in HTML mode accepts a small inline subset of markup; see
// SanitizeMarkup.
package ui
