package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/echo"
)

// TeamCmd creates the team command group
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect and edit team rotations",
	}
	cmd.AddCommand(TeamRotationCmd())
	return cmd
}

// TeamRotationCmd creates the team rotation command
func TeamRotationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotation [team-id]",
		Short: "View or replace a team's rotation config",
		Long: "With no --file, prints the team's current RotationConfig as JSON.\n" +
			"With --file, reads a replacement RotationConfig from the given JSON\n" +
			"file and atomically applies it, re-validating all of its invariants.",
		Args: cobra.ExactArgs(1),
		RunE: teamRotation,
	}
	cmd.Flags().String("name", "", "save slot name (required)")
	cmd.Flags().String("file", "", "path to a replacement RotationConfig JSON file")
	cmd.MarkFlagRequired("name")
	return cmd
}

func teamRotation(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name, _ := cmd.Flags().GetString("name")
	file, _ := cmd.Flags().GetString("file")
	teamID := core.TeamID(args[0])

	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}
	lg, err := engine.LoadLeague(core.SaveName(name))
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", name, err)
	}

	team, err := engine.GetTeam(lg.ID, teamID)
	if err != nil {
		return fmt.Errorf("failed to find team %s: %w", teamID, err)
	}

	if file == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(team.Rotation)
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	var replacement core.RotationConfig
	if err := json.Unmarshal(raw, &replacement); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	team.Rotation = &replacement

	if err := engine.UpdateTeam(lg.ID, team); err != nil {
		return fmt.Errorf("rotation rejected: %w", err)
	}
	if err := engine.SaveLeague(lg.ID, core.SaveName(name)); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	echo.Successf("✓ Rotation updated for %s", team.FullName())
	return nil
}
