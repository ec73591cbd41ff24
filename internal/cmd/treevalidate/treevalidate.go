// Package treevalidate parses tree-validate flags and lints talent tree
// documents before they ship.
package treevalidate

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	entrypoint "github.com/Slatyo/Valheim-Viking/internal/platform/cmd"
	"github.com/Slatyo/Valheim-Viking/internal/talents/content"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

// Config holds tree-validate command configuration.
type Config struct {
	Path string `env:"VALHEIM_TREE_VALIDATE_PATH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Path, "file", cfg.Path, "Path to a talent tree YAML document (default: the embedded tree)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run validates the configured tree document and writes a summary to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		catalog *tree.Catalog
		source  string
		err     error
	)
	if cfg.Path == "" {
		source = "embedded tree"
		catalog, err = content.Default()
	} else {
		source = cfg.Path
		var file *os.File
		file, err = os.Open(cfg.Path)
		if err != nil {
			return fmt.Errorf("open tree document: %w", err)
		}
		defer file.Close()
		catalog, err = tree.Load(file)
	}
	if err != nil {
		return fmt.Errorf("validate %s: %w", source, err)
	}

	nodes := catalog.Nodes()
	edges := 0
	for _, node := range nodes {
		edges += len(catalog.Neighbors(node.ID))
	}
	fmt.Fprintf(out, "%s: ok\n", source)
	fmt.Fprintf(out, "  nodes:        %d\n", len(nodes))
	fmt.Fprintf(out, "  edges:        %d\n", edges/2)
	fmt.Fprintf(out, "  entry points: %d\n", len(catalog.EntryPoints()))
	for _, nodeType := range []tree.NodeType{tree.NodeTypeStart, tree.NodeTypeMinor, tree.NodeTypeNotable, tree.NodeTypeKeystone} {
		fmt.Fprintf(out, "  %-8s      %d\n", string(nodeType)+":", len(catalog.NodesOfType(nodeType)))
	}
	return nil
}
