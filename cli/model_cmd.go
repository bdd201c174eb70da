package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newModelCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "model",
		Short: "Show the loaded model and its published performance details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			info := a.info.Describe(a.model)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			_, err = fmt.Fprintln(out, RenderModelInfo(info))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the model info as JSON")
	return cmd
}
