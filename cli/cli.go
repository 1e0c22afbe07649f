package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hoopsleague.dev/league/cmd"
	"hoopsleague.dev/league/internal/echo"
)

// RootCmd is the root command for the hoopsleague CLI.
var RootCmd = &cobra.Command{
	Use:   "hoopsleague",
	Short: "Basketball league management simulator",
	Long: echo.HeaderStyle().Render("HoopsLeague") + "\n\n" +
		"Generate a 30-team league, simulate games and seasons, manage\n" +
		"rotations, and run the HTTP API over it all.",
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "path to config file (defaults to hoopsleague.toml)")
	RootCmd.AddCommand(cmd.LeagueCmd())
	RootCmd.AddCommand(cmd.GameCmd())
	RootCmd.AddCommand(cmd.TeamCmd())
	RootCmd.AddCommand(cmd.SaveCmd())
	RootCmd.AddCommand(cmd.ExportCmd())
	RootCmd.AddCommand(cmd.ServerCmd())
	RootCmd.AddCommand(cmd.CacheCmd())
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
