package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hoopsleague.dev/league/internal/core"
	"hoopsleague.dev/league/internal/echo"
)

// SaveCmd creates the save command group
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Manage save slots",
	}
	cmd.AddCommand(SaveListCmd())
	cmd.AddCommand(SaveDeleteCmd())
	return cmd
}

// SaveListCmd creates the save list command
func SaveListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every save slot",
		RunE:  saveList,
	}
}

// SaveDeleteCmd creates the save delete command
func SaveDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a save slot",
		Args:  cobra.ExactArgs(1),
		RunE:  saveDelete,
	}
}

func saveList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")

	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}
	saves, err := engine.ListSaves()
	if err != nil {
		return fmt.Errorf("failed to list saves: %w", err)
	}

	if len(saves) == 0 {
		echo.Info("No saves yet — run `hoopsleague league init --name <name>`.")
		return nil
	}

	echo.Header("Save Slots")
	for _, s := range saves {
		echo.Infof("  %-20s updated %s", s.Name, s.UpdatedAt.Format(time.RFC1123))
	}
	return nil
}

func saveDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	configPath, _ := cmd.Flags().GetString("config")
	name := args[0]

	engine, err := openEngine(ctx, configPath)
	if err != nil {
		return err
	}
	if err := engine.DeleteSave(core.SaveName(name)); err != nil {
		return fmt.Errorf("failed to delete %q: %w", name, err)
	}
	echo.Successf("✓ Deleted %q", name)
	return nil
}
