package cli

import (
	"encoding/json"
	"fmt"

	"github.com/luxura/luxura/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every model and option",
		Long:  "List models, paint grouped by finish, wheels, interiors and accessories grouped by category, with prices.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, e.catalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCatalog(e.catalog, e.cfg.Currency))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output catalog as JSON")

	return cmd
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
