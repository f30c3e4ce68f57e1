package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zonevi/zonevi/internal/config"
	"github.com/zonevi/zonevi/internal/history"
	"github.com/zonevi/zonevi/internal/logger"
)

func init() { //nolint: gochecknoinits
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of change sets to show, 0 for all")
	historyCmd.Flags().BoolVar(&historyScripts, "scripts", false, "Also print the submitted update scripts")

	rootCmd.AddCommand(historyCmd)
}

var (
	historyLimit   int
	historyScripts bool

	historyCmd = &cobra.Command{
		Use:   "history [<zone>]",
		Short: "List previously applied change sets",
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if err := logger.Init(cfg.Log); err != nil {
				return err
			}

			if !cfg.History.Enabled {
				return ErrHistoryDisabled
			}

			hist, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}

			var zoneName string
			if len(args) > 0 {
				zoneName = args[0]
			}

			sets, err := hist.List(zoneName, historyLimit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "APPLIED\tZONE\tADDS\tDELETES")

			for _, cs := range sets {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
					cs.AppliedAt.Format("2006-01-02 15:04:05"), cs.Zone, cs.Adds, cs.Deletes)
			}

			if err := w.Flush(); err != nil {
				return err
			}

			if historyScripts {
				for _, cs := range sets {
					fmt.Fprintf(os.Stdout, "\n; applied %s\n%s", cs.AppliedAt.Format("2006-01-02 15:04:05"), cs.Script)
				}
			}

			return nil
		},
	}
)
