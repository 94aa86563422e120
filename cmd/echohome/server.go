package echohome

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dilshankm/echo-home/pkg/config"
	"github.com/dilshankm/echo-home/pkg/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Echo Home HTTP server",
	Long: `Start the Echo Home HTTP server to provide REST API access to
personalized energy advice.

The server provides endpoints for:
- Asking advice questions (chat)
- Raw retrieval and query analysis
- Graph statistics
- Health checks

Configuration can be provided through config files, environment variables, or command-line flags.`,
	RunE: runServer,
}

var (
	serverHost string
	serverPort int
	serverMode string
)

func init() {
	rootCmd.AddCommand(serverCmd)

	// Server-specific flags
	serverCmd.Flags().StringVar(&serverHost, "host", "localhost", "Server host")
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Server port")
	serverCmd.Flags().StringVar(&serverMode, "mode", "debug", "Server mode (debug, release, test)")

	// Graph flags
	serverCmd.Flags().String("graph-source", "builtin", "Graph source (builtin, file, neo4j)")
	serverCmd.Flags().String("graph-path", "", "Graph file path (for source=file)")
	serverCmd.Flags().String("neo4j-uri", "", "Neo4j URI (for source=neo4j)")

	// Embedding flags
	serverCmd.Flags().String("embedding-provider", "local", "Embedding provider (openai, local)")
	serverCmd.Flags().String("embedding-model", "", "Embedding model")
	serverCmd.Flags().String("embedding-api-key", "", "Embedding API key")

	// Telemetry flags
	serverCmd.Flags().String("telemetry-parquet-path", "", "Directory for retrieval telemetry")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	overrideConfigWithFlags(cmd, cfg)

	// Validate configuration
	if err := validateServerConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Build the coach: graph, index, embedder
	fmt.Println("Initializing Echo Home...")
	coach, log, cleanup, err := buildCoach(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer cleanup()

	// Create and setup server
	srv := server.New(cfg, coach, buildGenerator(cfg, log))
	srv.Setup()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)

		// Create shutdown context with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Shutdown server
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		fmt.Println("Server stopped gracefully")
		return nil
	}
}

func overrideConfigWithFlags(cmd *cobra.Command, cfg *config.Config) {
	// Server flags
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode = serverMode
	}

	// Graph flags
	if cmd.Flags().Changed("graph-source") {
		cfg.Graph.Source, _ = cmd.Flags().GetString("graph-source")
	}
	if cmd.Flags().Changed("graph-path") {
		cfg.Graph.Path, _ = cmd.Flags().GetString("graph-path")
	}
	if cmd.Flags().Changed("neo4j-uri") {
		cfg.Graph.URI, _ = cmd.Flags().GetString("neo4j-uri")
	}

	// Embedding flags
	if cmd.Flags().Changed("embedding-provider") {
		cfg.Embedding.Provider, _ = cmd.Flags().GetString("embedding-provider")
	}
	if cmd.Flags().Changed("embedding-model") {
		cfg.Embedding.Model, _ = cmd.Flags().GetString("embedding-model")
	}
	if cmd.Flags().Changed("embedding-api-key") {
		cfg.Embedding.APIKey, _ = cmd.Flags().GetString("embedding-api-key")
	}

	// Telemetry flags
	if cmd.Flags().Changed("telemetry-parquet-path") {
		cfg.Telemetry.ParquetPath, _ = cmd.Flags().GetString("telemetry-parquet-path")
		cfg.Telemetry.Enabled = true
	}
}

func validateServerConfig(cfg *config.Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Server.Port)
	}
	if cfg.Graph.Source == "file" && cfg.Graph.Path == "" {
		return fmt.Errorf("graph path is required for source=file")
	}
	if cfg.Graph.Source == "neo4j" && cfg.Graph.URI == "" {
		return fmt.Errorf("neo4j URI is required for source=neo4j")
	}
	return nil
}
