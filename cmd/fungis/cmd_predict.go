package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/speNillusion/fungis-boosters/internal/advisory"
	"github.com/speNillusion/fungis-boosters/internal/predict"

	"github.com/spf13/cobra"
)

var (
	predictPlastic     string
	predictOrganism    string
	predictTemperature float64
	predictHumidity    float64
	predictPH          float64
	predictForm        string
	predictAdvisoryURL string
	predictJSON        bool
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate degradation for one scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		var advisor predict.Advisor
		if predictAdvisoryURL != "" {
			advisor = advisory.New(predictAdvisoryURL)
		}
		p := predict.New(advisor, nil)

		pred := p.Predict(cmd.Context(), predict.Request{
			PlasticType:   predictPlastic,
			Microorganism: predictOrganism,
			Temperature:   predictTemperature,
			Humidity:      predictHumidity,
			PH:            predictPH,
			PlasticForm:   predictForm,
		})

		if predictJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(pred)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Plastic:\t%s\n", pred.PlasticType)
		fmt.Fprintf(w, "Microorganism:\t%s\n", pred.Microorganism)
		fmt.Fprintf(w, "Observable degradation:\t%d days\n", pred.DegradationTimeDays)
		fmt.Fprintf(w, "Expected weight loss:\t%.1f%%\n", pred.WeightLossPercentage)
		fmt.Fprintf(w, "Confidence:\t%.2f\n", pred.Confidence)
		fmt.Fprintf(w, "Conditions:\t%g°C, %g%% humidity, pH %g, %s\n",
			pred.Conditions.Temperature, pred.Conditions.Humidity, pred.Conditions.PH, pred.Conditions.PlasticForm)
		fmt.Fprintf(w, "Notes:\t%s\n", pred.Notes)
		return w.Flush()
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictPlastic, "plastic", "PVC", "plastic type code (PVC, PE, PET, PS, PP, ...)")
	predictCmd.Flags().StringVar(&predictOrganism, "organism", "Aspergillus niger", "microorganism species")
	predictCmd.Flags().Float64Var(&predictTemperature, "temperature", 25, "temperature in °C")
	predictCmd.Flags().Float64Var(&predictHumidity, "humidity", 60, "relative humidity in %")
	predictCmd.Flags().Float64Var(&predictPH, "ph", 7, "pH of the medium")
	predictCmd.Flags().StringVar(&predictForm, "form", "pieces", "plastic form (pieces, microplastics, film, powder)")
	predictCmd.Flags().StringVar(&predictAdvisoryURL, "advisory-url", "", "base URL of the advisory service (empty = disabled)")
	predictCmd.Flags().BoolVar(&predictJSON, "json", false, "emit JSON instead of a table")
}
