package echohome

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dilshankm/echo-home/pkg/config"
	"github.com/dilshankm/echo-home/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-off energy savings question",
	Long: `Ask runs a single question through the retrieval pipeline and prints
the personalized advice. Entities like house type are extracted from
the question text unless overridden with flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

var (
	askHouseType string
	askBedrooms  int
	askCategory  string
	askExplain   bool
)

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askHouseType, "house-type", "", "House type (flat, terraced, semi-detached, detached)")
	askCmd.Flags().IntVar(&askBedrooms, "bedrooms", 0, "Number of bedrooms")
	askCmd.Flags().StringVar(&askCategory, "category", "", "Energy category of interest")
	askCmd.Flags().BoolVar(&askExplain, "explain", false, "Print the retrieval explanation")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	coach, log, cleanup, err := buildCoach(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer cleanup()

	query := args[0]
	entities := coach.Analyze(ctx, query)
	if askHouseType != "" {
		entities.HouseType = askHouseType
	}
	if askBedrooms > 0 {
		entities.Bedrooms = askBedrooms
	}
	if askCategory != "" {
		entities.Category = askCategory
	}
	entities = entities.WithDefaults()

	result, err := coach.Retrieve(ctx, query, &entities)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	gen := buildGenerator(cfg, log)
	fmt.Println(gen.Generate(ctx, query, entities, result))

	if askExplain {
		fmt.Println()
		fmt.Println(result.ExplanationText)
		printTips(result.PersonalizedTips)
	}
	return nil
}

func printTips(tips []types.PersonalizedTip) {
	if len(tips) == 0 {
		return
	}
	fmt.Println("\nAll matched tips by return on effort:")
	for i, tip := range tips {
		fmt.Printf("%2d. %-45s £%.0f/year (%s, ROI %.1f)\n",
			i+1, tip.Action, tip.PersonalizedSavingsGBP, tip.Difficulty, tip.ROI)
	}
}
