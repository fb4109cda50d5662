package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/urbanfarm/internal/advisory"
	"github.com/abhisek/urbanfarm/internal/ui/theme"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze soil and climate measurements without running the model",
	RunE:  runAnalyze,
}

func init() {
	paramFlags(analyzeCmd)
	analyzeCmd.Flags().String("thresholds", "", "Path to an advisory rule file (default: bundled rules)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	set, err := paramSetFromCmd(cmd)
	if err != nil {
		return err
	}
	engine, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	notes := engine.Analyze(set)

	var cat advisory.Category
	for _, n := range notes {
		if n.Category != cat {
			cat = n.Category
			switch cat {
			case advisory.CategorySoil:
				fmt.Println(theme.Title.Render("Soil analysis"))
			case advisory.CategoryClimate:
				fmt.Println(theme.Title.Render("Climate analysis"))
			}
		}
		fmt.Printf("%s %s\n", theme.Subtitle.Render(n.Subject+":"), n.Guidance)
	}
	return nil
}
