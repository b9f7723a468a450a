//go:build go1.16
// +build go1.16

// Package datafiles holds the files shipped alongside the sprite tools. The
// directory doubles as the default place to look for sprites.
package datafiles

import _ "embed"

// IndexHTML is the html/template for the sprite listing page.
//
//go:embed index.html
var IndexHTML string
