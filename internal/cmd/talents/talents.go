// Package talents parses talents command flags and starts the console
// runtime over a SQLite-backed progression authority.
package talents

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	entrypoint "github.com/Slatyo/Valheim-Viking/internal/platform/cmd"
	"github.com/Slatyo/Valheim-Viking/internal/talents/authority"
	"github.com/Slatyo/Valheim-Viking/internal/talents/channel"
	"github.com/Slatyo/Valheim-Viking/internal/talents/content"
	"github.com/Slatyo/Valheim-Viking/internal/talents/storage/sqlite"
)

// Config holds talents command configuration.
type Config struct {
	DBPath   string `env:"VALHEIM_TALENTS_DB_PATH" envDefault:"talents.db"`
	PlayerID string `env:"VALHEIM_TALENTS_PLAYER_ID" envDefault:"player-1"`
	Level    int    `env:"VALHEIM_TALENTS_DEFAULT_LEVEL" envDefault:"10"`
	Locale   string `env:"VALHEIM_TALENTS_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the talents SQLite database")
	fs.StringVar(&cfg.PlayerID, "player", cfg.PlayerID, "Player id the console acts as")
	fs.IntVar(&cfg.Level, "level", cfg.Level, "Character level used for the point budget")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for rejection messages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the talents console service.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Level < 0 {
		return fmt.Errorf("level must not be negative")
	}
	catalog, err := content.Default()
	if err != nil {
		return fmt.Errorf("build talent catalog: %w", err)
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open talents storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close talents storage: %v", err)
		}
	}()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTalents, func(ctx context.Context) error {
		auth, err := authority.New(catalog, store, authority.FixedLevel(cfg.Level))
		if err != nil {
			return fmt.Errorf("build authority: %w", err)
		}
		console := &Console{
			Submitter: channel.Local{Authority: auth},
			Authority: auth,
			PlayerID:  cfg.PlayerID,
			Locale:    cfg.Locale,
		}
		return console.Loop(ctx, os.Stdin, os.Stdout)
	})
}
