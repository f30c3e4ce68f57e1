package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonevi/zonevi/internal/config"
	"github.com/zonevi/zonevi/internal/editor"
	"github.com/zonevi/zonevi/internal/history"
	"github.com/zonevi/zonevi/internal/logger"
	"github.com/zonevi/zonevi/internal/nsupdate"
	"github.com/zonevi/zonevi/internal/pdns"
	"github.com/zonevi/zonevi/internal/session"
	"github.com/zonevi/zonevi/internal/transfer"
	"github.com/zonevi/zonevi/internal/zone"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	editCmd.Flags().StringVar(&editorOverride, "editor", "", "Editor command (overrides config and $EDITOR)")

	rootCmd.AddCommand(editCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg config.Config
	err error

	editorOverride string

	editCmd = &cobra.Command{
		Use:   "edit <zone>",
		Short: "Transfer a zone, edit it in your editor and submit the changes",
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

			var hist *history.Log

			if cfg.History.Enabled {
				if hist, err = history.Open(cfg.History.Path); err != nil {
					return err
				}
			}

			editorCmd := editorOverride
			if editorCmd == "" {
				editorCmd = cfg.Editor
			}

			s := &session.Session{
				ZoneName:  args[0],
				Transport: newTransport(&cfg),
				Editor:    editor.New(editorCmd),
				History:   hist,
				Server:    cfg.Server.Host,
				Port:      cfg.Server.Port,
				In:        os.Stdin,
				Out:       os.Stdout,
			}

			return s.Run(context.Background())
		},
	}
)

// dnsTransport pairs the AXFR client with the dynamic update client,
// which both speak to the same authoritative server.
type dnsTransport struct {
	transfer *transfer.Client
	update   *nsupdate.Client
}

func (t *dnsTransport) Fetch(ctx context.Context, zoneName string) ([]string, error) {
	return t.transfer.Fetch(ctx, zoneName)
}

func (t *dnsTransport) Apply(
	ctx context.Context,
	zoneName string,
	ops []zone.Op,
	state *zone.Store,
	after zone.Snapshot,
) error {
	return t.update.Apply(ctx, zoneName, ops, state, after)
}

// newTransport selects the configured backend.
func newTransport(cfg *config.Config) session.Transport {
	if cfg.Server.Backend == config.BackendPDNS {
		return pdns.New(cfg.Server.APIURL, cfg.Server.APIHost, cfg.Server.APIKey)
	}

	return &dnsTransport{
		transfer: transfer.New(cfg.Server.Host, cfg.Server.Port, &cfg.Server.Key),
		update:   nsupdate.New(cfg.Server.Host, cfg.Server.Port, &cfg.Server.Key),
	}
}
