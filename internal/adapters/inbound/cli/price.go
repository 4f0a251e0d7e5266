package cli

import (
	"fmt"

	"github.com/luxura/luxura/internal/adapters/outbound/tui"
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
	"github.com/spf13/cobra"
)

// selectionFlags are the option ids shared by price, render and spin.
type selectionFlags struct {
	model    string
	color    string
	wheel    string
	interior string
}

func (f *selectionFlags) register(cmd *cobra.Command, withInterior bool) {
	cmd.Flags().StringVar(&f.model, "model", "", "Model id (defaults to the first model)")
	cmd.Flags().StringVar(&f.color, "color", "", "Paint id")
	cmd.Flags().StringVar(&f.wheel, "wheel", "", "Wheel id")
	if withInterior {
		cmd.Flags().StringVar(&f.interior, "interior", "", "Interior id")
	}
}

// apply selects every non-empty id on svc. Unknown ids are errors.
func (f *selectionFlags) apply(svc *application.ConfiguratorService) error {
	choices := []struct{ category, id string }{
		{application.CategoryModel, f.model},
		{application.CategoryColor, f.color},
		{application.CategoryWheel, f.wheel},
		{application.CategoryInterior, f.interior},
	}
	for _, c := range choices {
		if c.id == "" {
			continue
		}
		if err := svc.Select(c.category, c.id); err != nil {
			return err
		}
	}
	return nil
}

type priceOutput struct {
	Selection      domain.Selection      `json:"selection"`
	Quote          domain.PriceBreakdown `json:"quote"`
	FormattedTotal string                `json:"formatted_total"`
}

func newPriceCmd(opts *rootOptions) *cobra.Command {
	var (
		sel         selectionFlags
		accessories []string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a configuration",
		Long:  "Price a model with the given paint, wheels, interior and accessories. Omitted options use the catalog defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}

			svc := application.NewConfiguratorService(e.catalog, e.logger)
			if err := sel.apply(svc); err != nil {
				return err
			}

			seen := make(map[string]bool, len(accessories))
			for _, id := range accessories {
				if seen[id] {
					continue
				}
				seen[id] = true
				if _, err := svc.ToggleAccessory(id); err != nil {
					return err
				}
			}

			quote := svc.Quote()
			if jsonOutput {
				return renderJSON(cmd, priceOutput{
					Selection:      svc.Selection(),
					Quote:          quote,
					FormattedTotal: domain.FormatPrice(quote.Total, e.cfg.Currency),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(svc.Selection(), quote, e.cfg.Currency))
			return nil
		},
	}

	sel.register(cmd, true)
	cmd.Flags().StringSliceVar(&accessories, "accessory", nil, "Accessory id (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output price as JSON")

	return cmd
}
