package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/urbanfarm/internal/classifier"
	"github.com/abhisek/urbanfarm/internal/ui/theme"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Inspect the crop model",
}

var modelInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show model id, version, labels and feature importance",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			m   *classifier.Model
			err error
		)
		if path, _ := cmd.Flags().GetString("model"); path != "" {
			m, err = classifier.LoadFile(path)
		} else {
			m, err = classifier.LoadEmbedded()
		}
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(m.ID()), theme.Subtitle.Render(m.Version()))

		labels := m.Labels()
		names := make([]string, len(labels))
		for i, l := range labels {
			names[i] = string(l)
		}
		fmt.Printf("Crops (%d): %s\n\n", len(labels), strings.Join(names, ", "))

		imp := m.FeatureImportance()
		features := make([]string, 0, len(imp))
		for f := range imp {
			features = append(features, f)
		}
		sort.Slice(features, func(i, j int) bool {
			if imp[features[i]] != imp[features[j]] {
				return imp[features[i]] > imp[features[j]]
			}
			return features[i] < features[j]
		})

		fmt.Println("Feature importance:")
		for _, f := range features {
			fmt.Printf("  %-12s %5.1f%%\n", f, imp[f]*100)
		}
		return nil
	},
}

func init() {
	modelInfoCmd.Flags().String("model", "", "Path to a model artifact (default: bundled model)")
	modelCmd.AddCommand(modelInfoCmd)
}
