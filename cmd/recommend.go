package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/urbanfarm/internal/advisor"
	"github.com/abhisek/urbanfarm/internal/advisory"
	"github.com/abhisek/urbanfarm/internal/classifier"
	"github.com/abhisek/urbanfarm/internal/ranking"
	"github.com/abhisek/urbanfarm/internal/report"
	"github.com/abhisek/urbanfarm/internal/store"
	"github.com/abhisek/urbanfarm/internal/ui/theme"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend crops for a set of soil and climate measurements",
	RunE:  runRecommend,
}

func init() {
	paramFlags(recommendCmd)
	recommendCmd.Flags().String("model", "", "Path to a model artifact (default: bundled model)")
	recommendCmd.Flags().String("thresholds", "", "Path to an advisory rule file (default: bundled rules)")
	recommendCmd.Flags().String("out", ".", "Directory for the report file")
	recommendCmd.Flags().Int("top", ranking.DefaultTopK, "Number of crops to recommend")
	recommendCmd.Flags().Bool("no-history", false, "Skip recording this run in the history database")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	set, err := paramSetFromCmd(cmd)
	if err != nil {
		return err
	}

	predictor, err := loadPredictor(cmd)
	if err != nil {
		return err
	}
	engine, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	topK, _ := cmd.Flags().GetInt("top")
	opts := []advisor.Option{advisor.WithTopK(topK)}

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer st.Close()
		opts = append(opts, advisor.WithRecorder(st))
	}

	svc := advisor.New(predictor, engine, opts...)

	outDir, _ := cmd.Flags().GetString("out")
	rep, path, err := svc.RecommendAndSave(set, time.Now(), outDir)
	if err != nil {
		return err
	}

	printSummary(rep, path)
	return nil
}

// loadPredictor loads the bundled model, or an external artifact when
// --model is set.
func loadPredictor(cmd *cobra.Command) (classifier.Predictor, error) {
	if path, _ := cmd.Flags().GetString("model"); path != "" {
		return classifier.LoadFile(path)
	}
	return classifier.LoadEmbedded()
}

// loadEngine builds the advisory engine from the bundled rule table, or an
// external file when --thresholds is set.
func loadEngine(cmd *cobra.Command) (*advisory.Engine, error) {
	var (
		th  advisory.Thresholds
		err error
	)
	if path, _ := cmd.Flags().GetString("thresholds"); path != "" {
		th, err = advisory.LoadThresholds(path)
	} else {
		th, err = advisory.DefaultThresholds()
	}
	if err != nil {
		return nil, err
	}
	return advisory.NewEngine(th), nil
}

func printSummary(rep report.Report, path string) {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Top recommended crops"))
	for _, rec := range rep.Recommendations {
		line := fmt.Sprintf("%d. %-12s %5.1f%%", rec.Rank, rec.Crop, rec.ConfidencePct)
		b.WriteString("\n")
		if rec.Rank == 1 {
			b.WriteString(theme.Highlight.Render(line))
		} else {
			b.WriteString(theme.Body.Render(line))
		}
	}
	fmt.Println(theme.Card.Render(b.String()))
	fmt.Println(theme.Hint.Render("Report written to " + path))
}
