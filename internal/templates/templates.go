// Package templates embeds the default files written by 'cd-history init'.
package templates

import (
	"embed"
)

//go:embed config.toml
var content embed.FS

// Read returns the embedded template with the given name.
func Read(name string) ([]byte, error) {
	return content.ReadFile(name)
}
