package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/luxura/luxura/internal/adapters/outbound/tui"
	"github.com/luxura/luxura/internal/application"
	"github.com/luxura/luxura/internal/domain"
	"github.com/spf13/cobra"
)

const sessionHelp = `Commands:
  next | back              move one step
  jump <step>              go to a step (model, exterior, wheels, interior, accessories, summary)
  model|color|wheel|interior <id>
                           select an option
  toggle <id>              add or remove an accessory
  price                    print the total
  summary                  print the build sheet
  steps                    print the step indicator
  render [angle]           list the layers of the current car
  help                     show this help
  quit | exit              leave
`

func newSessionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Configure a car interactively",
		Long:  "Read configurator commands line by line from stdin. Type help for the command list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			r := &repl{
				svc:      application.NewConfiguratorService(e.catalog, e.logger),
				currency: e.cfg.Currency,
				out:      cmd.OutOrStdout(),
			}
			return r.run(cmd.InOrStdin())
		},
	}
}

type repl struct {
	svc      *application.ConfiguratorService
	currency string
	out      io.Writer
}

func (r *repl) run(in io.Reader) error {
	fmt.Fprint(r.out, tui.RenderProgress(r.svc.Progress()))
	fmt.Fprint(r.out, "> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			if quit := r.exec(fields[0], fields[1:]); quit {
				return nil
			}
		}
		fmt.Fprint(r.out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(r.out)
	return nil
}

// exec runs one command and reports whether the session should end. User
// mistakes are printed, never returned.
func (r *repl) exec(name string, args []string) bool {
	switch name {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(r.out, sessionHelp)
	case "next":
		r.moved(r.svc.Next(), "already at the last step")
	case "back":
		r.moved(r.svc.Back(), "already at the first step")
	case "jump":
		if len(args) != 1 {
			r.fail("usage: jump <step>")
			return false
		}
		r.moved(r.svc.Jump(args[0]), fmt.Sprintf("no step %q", args[0]))
	case application.CategoryModel, application.CategoryColor, application.CategoryWheel, application.CategoryInterior:
		if len(args) != 1 {
			r.fail(fmt.Sprintf("usage: %s <id>", name))
			return false
		}
		if err := r.svc.Select(name, args[0]); err != nil {
			r.fail(err.Error())
			return false
		}
		r.printTotal()
	case "toggle":
		if len(args) != 1 {
			r.fail("usage: toggle <id>")
			return false
		}
		added, err := r.svc.ToggleAccessory(args[0])
		if err != nil {
			r.fail(err.Error())
			return false
		}
		verb := "removed"
		if added {
			verb = "added"
		}
		fmt.Fprintf(r.out, "%s %s\n", verb, args[0])
	case "price":
		r.printTotal()
	case "summary":
		fmt.Fprint(r.out, tui.RenderSummary(r.svc.Selection(), r.svc.Quote(), r.currency))
	case "steps":
		fmt.Fprint(r.out, tui.RenderProgress(r.svc.Progress()))
	case "render":
		angle := 0.0
		if len(args) > 0 {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				r.fail(fmt.Sprintf("invalid angle %q", args[0]))
				return false
			}
			angle = v
		}
		fmt.Fprint(r.out, tui.RenderInventory(r.svc.Render(angle)))
	default:
		r.fail(fmt.Sprintf("unknown command %q (try help)", name))
	}
	return false
}

func (r *repl) moved(ok bool, msg string) {
	if !ok {
		r.fail(msg)
		return
	}
	fmt.Fprint(r.out, tui.RenderProgress(r.svc.Progress()))
}

func (r *repl) printTotal() {
	fmt.Fprintf(r.out, "Total: %s\n", domain.FormatPrice(r.svc.Total(), r.currency))
}

func (r *repl) fail(msg string) {
	fmt.Fprintf(r.out, "error: %s\n", msg)
}
