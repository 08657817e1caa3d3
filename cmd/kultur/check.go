package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erazemk/kultur/internal/app"
	"github.com/erazemk/kultur/internal/asset"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every asset and report what was found",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cats, err := app.LoadCatalogs(context.Background(), app.NewLoader(cfg))
	if err != nil {
		var de *asset.DecodeError
		if errors.As(err, &de) {
			cmd.PrintErrf("%s: invalid\n", de.Resource)
		}
		return err
	}

	source := "bundled"
	if cfg.AssetDir != "" {
		source = cfg.AssetDir
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "assets: %s\n", source)
	fmt.Fprintf(out, "culture items: %d (%d categories)\n", len(cats.Culture.All()), len(cats.Culture.Categories()))
	fmt.Fprintf(out, "places: %d\n", len(cats.Places.All()))
	fmt.Fprintf(out, "events: %d\n", len(cats.Events.Upcoming()))
	return nil
}
