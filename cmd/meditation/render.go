package main

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taiwoajasa245/daily-meditation/internal/meditation"
	"github.com/taiwoajasa245/daily-meditation/internal/server"
)

var (
	renderDay  int
	renderOpen string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the page for a day to stdout",
	Long: `Renders the same document the server returns for /?day=<day>.
Without --day the list screen is rendered. --open takes a comma separated
list of sections to expand (scripture, summary, exposition, prayer, essay,
oneverse).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		repo, db, err := server.OpenSource(cfg)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		svc, err := server.NewMeditationService(cmd.Context(), cfg, repo, logger)
		if err != nil {
			return err
		}

		u := &url.URL{Path: "/"}
		if cmd.Flags().Changed("day") {
			u.RawQuery = url.Values{"day": {strconv.Itoa(renderDay)}}.Encode()
		}

		body, nav, err := svc.RenderPageForURL(u, meditation.ParseSectionKeys(renderOpen)...)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("day") && nav.State().Mode != meditation.DetailShown {
			logger.Warn("day not found, rendered list", zap.Int("day", renderDay))
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), string(body))
		return err
	},
}

func init() {
	renderCmd.Flags().IntVar(&renderDay, "day", 0, "entry day to open")
	renderCmd.Flags().StringVar(&renderOpen, "open", "", "sections to expand")
	rootCmd.AddCommand(renderCmd)
}
