package echohome

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dilshankm/echo-home/pkg/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print knowledge graph statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Stats need no embedder; open the store directly.
	store, closeStore, err := openStore(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
