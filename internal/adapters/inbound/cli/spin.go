package cli

import (
	"fmt"
	"time"

	"github.com/luxura/luxura/internal/adapters/outbound/frames"
	"github.com/luxura/luxura/internal/adapters/outbound/svg"
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSpinCmd(opts *rootOptions) *cobra.Command {
	var (
		sel      selectionFlags
		outDir   string
		step     int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Render one full turn as SVG frames",
		Long:  "Run a 360° rotation and write one SVG per frame (frame-000.svg, frame-001.svg, ...) plus a frames.json manifest.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}

			rotation := e.cfg.Rotation
			if cmd.Flags().Changed("step") {
				rotation.StepDegrees = step
			}
			if cmd.Flags().Changed("interval") {
				rotation.Interval = interval
			}
			cfg := e.cfg
			cfg.Rotation = rotation
			if err := cfg.Validate(); err != nil {
				return err
			}

			sink, err := frames.New(outDir)
			if err != nil {
				return err
			}

			base := renderSelection(e.catalog, sel, 0)

			var (
				index    int
				writeErr error
				rotator  *application.Rotator
			)
			rotator = application.NewRotator(rotation, func(angle float64) {
				if writeErr != nil {
					return
				}
				scene := render.RenderVehicle(e.catalog, base.ModelID, base.ColorID, base.WheelID, angle)
				if err := sink.WriteFrame(index, angle, svg.Encode(scene)); err != nil {
					writeErr = err
					rotator.Stop()
					return
				}
				index++
			}, e.logger)

			ctx := cmd.Context()
			if !rotator.Start(ctx) {
				return fmt.Errorf("rotation already running")
			}
			<-rotator.Done()

			if writeErr != nil {
				return writeErr
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := sink.Close(); err != nil {
				return err
			}

			e.logger.Debug("spin written", zap.String("dir", outDir), zap.Int("frames", index))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", index, outDir)
			return nil
		},
	}

	sel.register(cmd, false)
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for the SVG frames")
	cmd.Flags().IntVar(&step, "step", 0, "Degrees per frame (overrides .luxura.yaml)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Delay between frames (overrides .luxura.yaml)")
	_ = cmd.MarkFlagRequired("out-dir")

	return cmd
}
