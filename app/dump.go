package app

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zonevi/zonevi/internal/config"
	"github.com/zonevi/zonevi/internal/logger"
	"github.com/zonevi/zonevi/internal/session"
	"github.com/zonevi/zonevi/internal/zone"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <zone>",
	Short: "Transfer a zone and print it as editable zone text",
	Args:  cobra.ExactArgs(1),
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}
	},
	RunE: func(_ *cobra.Command, args []string) error {
		if err := logger.Init(cfg.Log); err != nil {
			return err
		}

		zoneName := args[0]

		lines, err := newTransport(&cfg).Fetch(context.Background(), zoneName)
		if err != nil {
			return err
		}

		store := zone.NewStore()

		count, err := store.Load(zoneName, "dump", strings.NewReader(strings.Join(lines, "\n")))
		if err != nil {
			return err
		}

		if count == 0 {
			return errors.Wrapf(session.ErrEmptyZone, "zone %s", zoneName)
		}

		return store.Render(os.Stdout, zoneName, "dump")
	},
}
