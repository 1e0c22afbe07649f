package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/echo"
	"hoopsleague.dev/league/internal/httpapi"
)

// LeagueCmd creates the league command group
func LeagueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "league",
		Short: "League lifecycle operations",
		Long:  "Generate a new league and inspect an existing one's standing.",
	}
	cmd.AddCommand(LeagueInitCmd())
	cmd.AddCommand(LeagueStatusCmd())
	return cmd
}

// LeagueInitCmd creates the league init command
func LeagueInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a new league and save it",
		Long:  "Generates 30 teams and an 82-game schedule, then writes the result to the named save slot.",
		RunE:  leagueInit,
	}
	cmd.Flags().String("name", "", "save slot name (required)")
	cmd.Flags().Int64("seed", 0, "random seed (0 draws fresh entropy)")
	cmd.Flags().Int("year", 0, "season year (defaults to the current year)")
	cmd.MarkFlagRequired("name")
	return cmd
}

// LeagueStatusCmd creates the league status command
func LeagueStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a saved league's standings",
		Long:  "Loads the named save slot and prints conference standings.",
		RunE:  leagueStatus,
	}
	cmd.Flags().String("name", "", "save slot name (required)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func leagueInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name, _ := cmd.Flags().GetString("name")
	seed, _ := cmd.Flags().GetInt64("seed")
	year, _ := cmd.Flags().GetInt("year")

	echo.Header("Initializing League")
	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}

	lg, err := engine.InitializeLeague(httpapi.InitLeagueRequest{Seed: seed, Year: year})
	if err != nil {
		return fmt.Errorf("failed to initialize league: %w", err)
	}

	if err := engine.SaveLeague(lg.ID, core.SaveName(name)); err != nil {
		return fmt.Errorf("failed to save league: %w", err)
	}

	echo.Successf("✓ Generated %d teams and a %d-game schedule", len(lg.TeamOrder), core.TotalLeagueGames)
	echo.Successf("✓ Saved as %q", name)
	echo.Infof("  User team: %s", lg.Teams[lg.Season.UserTeamID].FullName())
	return nil
}

func leagueStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name, _ := cmd.Flags().GetString("name")

	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}

	lg, err := engine.LoadLeague(core.SaveName(name))
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", name, err)
	}

	echo.Header(fmt.Sprintf("%s — Year %d", name, lg.Season.Year))
	userTeam := lg.Teams[lg.Season.UserTeamID]
	echo.Infof("User team: %s", userTeam.FullName())
	if lg.Season.IsPostSeason {
		echo.Info("Status: postseason")
		bracket, err := engine.Bracket(ctx, lg.ID)
		switch {
		case err == nil:
			if bracket.UserMissedPlayoffs {
				echo.Info("Your team missed the playoffs this season.")
			} else if bracket.UserEliminated {
				echo.Info("Your team has been eliminated.")
			} else if bracket.Champion != nil && *bracket.Champion == lg.Season.UserTeamID {
				echo.Info("Your team is the champion!")
			}
		case core.IsNotFound(err):
			echo.Info("Your team missed the playoffs this season.")
		default:
			return fmt.Errorf("failed to load bracket: %w", err)
		}
	} else {
		played := 0
		for _, g := range lg.Season.Games {
			if g.IsPlayed {
				played++
			}
		}
		echo.Infof("Status: regular season (%d/%d games played)", played, len(lg.Season.Games))
	}
	echo.Info("")

	view, err := engine.Standings(ctx, lg.ID)
	if err != nil {
		return fmt.Errorf("failed to build standings: %w", err)
	}
	fmt.Print(echo.StandingsTable(view.East))
	echo.Info("")
	fmt.Print(echo.StandingsTable(view.West))
	return nil
}
