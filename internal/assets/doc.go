// Package assets provides embedded document templates and stylesheets,
// with an optional filesystem override for custom branding.
package assets
