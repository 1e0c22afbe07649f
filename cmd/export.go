package cmd

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/echo"
)

// standingsRow is the flat, gocsv-tagged shape a standings.Row is written
// out as — gocsv marshals struct tags the way encoding/json does, but over
// flat field names since a CSV has no nesting.
type standingsRow struct {
	Conference string  `csv:"conference"`
	Seed       int     `csv:"seed"`
	Team       string  `csv:"team"`
	Wins       int     `csv:"wins"`
	Losses     int     `csv:"losses"`
	WinPct     float64 `csv:"win_pct"`
}

// ExportCmd creates the export command group
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export league data",
	}
	cmd.AddCommand(ExportStandingsCmd())
	return cmd
}

// ExportStandingsCmd creates the export standings command
func ExportStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Export a saved league's standings to CSV",
		RunE:  exportStandings,
	}
	cmd.Flags().String("name", "", "save slot name (required)")
	cmd.Flags().String("out", "standings.csv", "output CSV path")
	cmd.MarkFlagRequired("name")
	return cmd
}

func exportStandings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name, _ := cmd.Flags().GetString("name")
	out, _ := cmd.Flags().GetString("out")

	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}
	lg, err := engine.LoadLeague(core.SaveName(name))
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", name, err)
	}
	view, err := engine.Standings(ctx, lg.ID)
	if err != nil {
		return fmt.Errorf("failed to build standings: %w", err)
	}

	var rows []*standingsRow
	for _, r := range view.East.Rows {
		rows = append(rows, &standingsRow{
			Conference: string(view.East.Conference), Seed: r.Seed, Team: r.TeamName,
			Wins: r.Wins, Losses: r.Losses, WinPct: r.WinPct,
		})
	}
	for _, r := range view.West.Rows {
		rows = append(rows, &standingsRow{
			Conference: string(view.West.Conference), Seed: r.Seed, Team: r.TeamName,
			Wins: r.Wins, Losses: r.Losses, WinPct: r.WinPct,
		})
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	echo.Successf("✓ Wrote %d rows to %s", len(rows), out)
	return nil
}
