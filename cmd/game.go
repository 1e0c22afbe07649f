package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/echo"
)

// GameCmd creates the game command group
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Simulate games against a saved league",
		Long:  "Play the user team's next game, the rest of the regular season, or the rest of the playoffs.",
	}
	cmd.AddCommand(GameNextCmd())
	cmd.AddCommand(GameSeasonCmd())
	cmd.AddCommand(GamePlayoffsCmd())
	return cmd
}

func nameFlag(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "save slot name (required)")
	cmd.MarkFlagRequired("name")
}

// GameNextCmd creates the game next command
func GameNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Simulate the user team's next game",
		RunE:  gameNext,
	}
	nameFlag(cmd)
	return cmd
}

// GameSeasonCmd creates the game season command
func GameSeasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Simulate the rest of the regular season",
		Long:  "Plays every remaining regular-season game and starts the postseason once the schedule is complete.",
		RunE:  gameSeason,
	}
	nameFlag(cmd)
	return cmd
}

// GamePlayoffsCmd creates the game playoffs command
func GamePlayoffsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "playoffs",
		Short: "Simulate the rest of the playoffs",
		Long:  "Advances the bracket to completion and reports the champion.",
		RunE:  gamePlayoffs,
	}
	nameFlag(cmd)
	return cmd
}

func gameNext(cmd *cobra.Command, args []string) error {
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

	game, err := engine.SimulateNextGame(lg.ID)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}
	if err := engine.SaveLeague(lg.ID, core.SaveName(name)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	home := lg.Teams[game.HomeTeamID]
	away := lg.Teams[game.AwayTeamID]
	echo.Info(echo.Scoreboard(home, away, game))
	return nil
}

func gameSeason(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name, _ := cmd.Flags().GetString("name")

	echo.Header("Simulating Remaining Season")
	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}
	lg, err := engine.LoadLeague(core.SaveName(name))
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", name, err)
	}

	if err := engine.SimulateRemainingRegularSeason(lg.ID); err != nil {
		return fmt.Errorf("failed to simulate season: %w", err)
	}
	if err := engine.SaveLeague(lg.ID, core.SaveName(name)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	if lg.Season.IsPostSeason {
		echo.Success("✓ Regular season complete — postseason has begun")
	} else {
		echo.Success("✓ Regular season complete")
	}
	return nil
}

func gamePlayoffs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name, _ := cmd.Flags().GetString("name")

	echo.Header("Simulating Playoffs")
	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}
	lg, err := engine.LoadLeague(core.SaveName(name))
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", name, err)
	}

	result, err := engine.SimulateRestOfPlayoffs(lg.ID)
	if err != nil {
		return fmt.Errorf("failed to simulate playoffs: %w", err)
	}
	if err := engine.SaveLeague(lg.ID, core.SaveName(name)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	echo.Successf("✓ Champion: %s", lg.Teams[result.Champion].FullName())
	if result.UserMissedPlayoffs {
		echo.Info("Your team missed the playoffs this season.")
	} else if result.UserEliminated {
		echo.Info("Your team was eliminated.")
	}
	return nil
}
