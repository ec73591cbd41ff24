// Package content embeds the shipped talent tree document.
package content

import (
	_ "embed"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

//go:embed talents.yaml
var talentsYAML []byte

// Default builds the shipped talent tree catalog.
func Default() (*tree.Catalog, error) {
	return tree.LoadBytes(talentsYAML)
}
