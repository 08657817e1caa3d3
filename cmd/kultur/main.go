package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/erazemk/kultur/internal/config"
)

// globalFlags override values from the config file and the environment.
type globalFlags struct {
	configPath string
	dbPath     string
	addr       string
	logPath    string
	assetDir   string
	backend    string
}

var flags globalFlags

func main() {
	root := &cobra.Command{
		Use:          "kultur",
		Short:        "Serve the Kultur Gambia culture, places and events catalogs",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	pf.StringVarP(&flags.dbPath, "db", "d", "", "SQLite database path (default: kultur.sqlite3)")
	pf.StringVarP(&flags.addr, "addr", "a", "", "listen address (default: :8080)")
	pf.StringVarP(&flags.logPath, "log", "l", "", "log file path (default: no file, stdout/stderr only)")
	pf.StringVar(&flags.assetDir, "assets", "", "asset directory (default: bundled assets)")
	pf.StringVar(&flags.backend, "backend", "", "favorites backend: sqlite, redis or postgres")

	root.AddCommand(serveCmd())
	root.AddCommand(mcpCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(tokenCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("db", &cfg.DBPath, flags.dbPath)
	set("addr", &cfg.Addr, flags.addr)
	set("log", &cfg.LogPath, flags.logPath)
	set("assets", &cfg.AssetDir, flags.assetDir)
	set("backend", &cfg.Favorites.Backend, flags.backend)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
