package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/speNillusion/fungis-boosters/internal/advisory"
	"github.com/speNillusion/fungis-boosters/internal/predict"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var batchAdvisoryURL string

var batchCmd = &cobra.Command{
	Use:   "batch [scenarios-file]",
	Short: "Run a list of scenarios (YAML or JSON); no file runs the built-in comparison set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reqs := predict.CompareScenarios()
		if len(args) == 1 {
			loaded, err := loadScenarios(args[0])
			if err != nil {
				return err
			}
			reqs = loaded
		}

		var advisor predict.Advisor
		if batchAdvisoryURL != "" {
			advisor = advisory.New(batchAdvisoryURL)
		}
		preds := predict.New(advisor, nil).PredictBatch(cmd.Context(), reqs)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Plastic\tOrganism\tForm\tTemp\tHum\tpH\tDays\tLoss%%\tConf\n")
		fmt.Fprintf(w, "-------\t--------\t----\t----\t---\t--\t----\t-----\t----\n")
		for _, p := range preds {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\t%d\t%.1f\t%.2f\n",
				p.PlasticType, p.Microorganism, p.Conditions.PlasticForm,
				p.Conditions.Temperature, p.Conditions.Humidity, p.Conditions.PH,
				p.DegradationTimeDays, p.WeightLossPercentage, p.Confidence)
		}
		return w.Flush()
	},
}

func loadScenarios(path string) ([]predict.Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var reqs []predict.Request
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &reqs); err != nil {
			return nil, fmt.Errorf("parse yaml scenarios: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &reqs); err != nil {
			return nil, fmt.Errorf("parse json scenarios: %w", err)
		}
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return reqs, nil
}

func init() {
	batchCmd.Flags().StringVar(&batchAdvisoryURL, "advisory-url", "", "base URL of the advisory service (empty = disabled)")
}
