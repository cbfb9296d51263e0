package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atlasops/vpcatlas/internal/app"
	"github.com/atlasops/vpcatlas/internal/diagram"
	"github.com/atlasops/vpcatlas/internal/model"
	"github.com/atlasops/vpcatlas/internal/report"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render [FILE]",
	Short: "Render a diagram from previously collected model JSON",
	Long: `Turn a network_data.json produced by 'vpcatlas scan' (or the
collector lambda) into Mermaid diagram text without touching AWS.
Reads stdin when FILE is omitted or "-".

Example:
  vpcatlas render vpcatlas-out/network_data.json > topology.mmd`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open model file: %v", err)
			}
			defer f.Close()
			in = f
		}

		m, err := model.Decode(in)
		if err != nil {
			return err
		}

		logger := app.NewLogger(config.Verbose)
		for _, w := range diagram.Lint(m) {
			logger.Warn("degenerate input", "resource", w.Resource, "id", w.ID, "detail", w.Message)
		}

		out, err := diagram.Emit(m)
		if err != nil {
			return err
		}

		if renderOut != "" {
			return report.WriteMermaid(out, renderOut)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Write diagram to file instead of stdout")
}
