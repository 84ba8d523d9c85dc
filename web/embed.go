// Package web ships the embedded signup frontend.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
