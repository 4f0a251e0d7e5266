package cli

import (
	"fmt"

	"github.com/luxura/luxura/internal/adapters/outbound/gitinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show Luxura version",
		RunE: func(cmd *cobra.Command, args []string) error {
			rev := commit
			if rev == "none" {
				// Not stamped at build time; fall back to the checkout.
				if desc, err := gitinfo.New().Describe("."); err == nil {
					rev = desc
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "luxura %s (%s)\n", version, rev)
			return nil
		},
	}
}
