package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/luxura/luxura/internal/adapters/outbound/catalog"
	"github.com/luxura/luxura/internal/adapters/outbound/config"
	"github.com/luxura/luxura/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	catalogPath string
	configDir   string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "luxura",
		Short:         "Configure and price bespoke supercars",
		Long:          "Luxura walks through model, paint, wheels, interior and accessories, prices the build and renders the car as SVG.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog YAML file (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config", ".", "Directory containing .luxura.yaml")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Write debug logs to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newPriceCmd(opts))
	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newSpinCmd(opts))
	cmd.AddCommand(newSessionCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. An interrupt cancels the command context, which ends
// a running spin early.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

// env is what a command runs against.
type env struct {
	cfg     domain.AppConfig
	catalog *domain.Catalog
	logger  *zap.Logger
}

// load reads .luxura.yaml and the catalog. --catalog wins over the config
// file, which wins over the built-in catalog.
func (o *rootOptions) load() (*env, error) {
	cfg, err := config.New().Load(o.configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	path := o.catalogPath
	if path == "" {
		path = cfg.Catalog
	}
	cat, err := catalog.New().Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	logger := zap.NewNop()
	if o.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}
	}

	return &env{cfg: cfg, catalog: cat, logger: logger}, nil
}
