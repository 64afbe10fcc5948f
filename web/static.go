package web

import "embed"

// StaticFS página única do painel, embutida no binário
//
//go:embed index.html
var StaticFS embed.FS
