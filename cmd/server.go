package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"hoopsleague.dev/league/internal/config"
	"hoopsleague.dev/league/internal/echo"
	"hoopsleague.dev/league/internal/httpapi"
	"hoopsleague.dev/league/internal/store"
)

// ServerCmd creates the server command group
func ServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Server operations",
		Long:  "Start and probe the hoopsleague HTTP API server.",
	}
	cmd.AddCommand(ServerStartCmd())
	cmd.AddCommand(ServerFetchCmd())
	cmd.AddCommand(ServerHealthCmd())
	return cmd
}

// ServerStartCmd creates the start command
func ServerStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the API server",
		RunE:  startServer,
	}
	cmd.Flags().Bool("debug", false, "enable debug mode (disables rate limiting)")
	return cmd
}

// ServerFetchCmd creates the server fetch command
func ServerFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [path]",
		Short: "Test API endpoints",
		Long:  `cURL-like tool for testing API endpoints with formatted output. Path is relative to /v1/.`,
		Args:  cobra.ExactArgs(1),
		RunE:  fetchEndpoint,
	}
	cmd.Flags().Bool("raw", false, "output raw JSON without colors or formatting")
	return cmd
}

// ServerHealthCmd creates the health command
func ServerHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE:  checkHealth,
	}
}

func fetchEndpoint(cmd *cobra.Command, args []string) error {
	path := args[0]
	raw, _ := cmd.Flags().GetBool("raw")
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	url := fmt.Sprintf("http://%s:%d/v1/%s", cfg.Server.Host, cfg.Server.Port, path)

	if !raw {
		echo.Header("API Test")
		echo.Infof("Fetching: %s", url)
		echo.Info("")
	}

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if !raw {
		echo.Infof("Status: %s", resp.Status)
		echo.Info("")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, body, "", "  "); err != nil {
		fmt.Println(string(body))
	} else {
		fmt.Println(prettyJSON.String())
	}
	if !raw {
		echo.Info("")
		echo.Successf("✓ Request completed (%d bytes)", len(body))
	}
	return nil
}

func checkHealth(cmd *cobra.Command, args []string) error {
	echo.Header("Health Check")
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	url := fmt.Sprintf("http://%s:%d/v1/health", cfg.Server.Host, cfg.Server.Port)
	echo.Infof("Checking: %s", url)
	echo.Info("")

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("server is not running or unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status: %s", resp.Status)
	}
	echo.Successf("✓ Server is healthy (Status: %s)", resp.Status)
	return nil
}

func startServer(cmd *cobra.Command, args []string) error {
	echo.Header("Starting Server")
	echo.Info("Loading configuration...")

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		cfg.Server.DebugMode = true
	}
	if cfg.Server.DebugMode {
		echo.Info("⚠ Debug mode enabled - rate limiting disabled")
	}

	ctx := cmd.Context()
	echo.Info("Opening save store...")
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	echo.Successf("✓ Save store opened (%s backend)", cfg.Store.Backend)

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		echo.Info("Connecting to Redis...")
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		redisClient = redis.NewClient(redisOpts)
		defer redisClient.Close()

		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			echo.Infof("⚠ Redis connection failed: %v", err)
			echo.Info("  Caching and rate limiting will be disabled")
			redisClient = nil
		} else {
			echo.Success("✓ Connected to Redis")
		}
	}

	server := httpapi.NewServer(cfg, st, redisClient)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	echo.Success(fmt.Sprintf("✓ Server starting on %s", addr))
	echo.Info("  Swagger docs: /docs/")
	echo.Info("Press Ctrl+C to stop")
	echo.Info("")
	return http.ListenAndServe(addr, server)
}
