package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"carbon-predictor/domain"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	in := domain.DefaultLifestyleInput()
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Assess one set of lifestyle inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.predictions.Assess(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("assessing input: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			_, err = fmt.Fprintln(out, RenderAssessment(result))
			return err
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.MonthlyGroceryBill, "grocery", in.MonthlyGroceryBill, "monthly grocery bill")
	f.IntVar(&in.VehicleMonthlyDistanceKm, "distance", in.VehicleMonthlyDistanceKm, "monthly vehicle distance in km")
	f.IntVar(&in.TVPCDailyHours, "tv-hours", in.TVPCDailyHours, "daily TV/PC hours")
	f.IntVar(&in.NewClothesMonthly, "clothes", in.NewClothesMonthly, "new clothes bought per month")
	f.IntVar(&in.InternetDailyHours, "internet-hours", in.InternetDailyHours, "daily internet hours")
	f.BoolVar(&asJSON, "json", false, "print the assessment as JSON")

	return cmd
}
