package commands

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Collect the region's topology and write all artifacts",
	Long: `Collect VPCs, subnets, route tables and security groups from the
configured region and write the model JSON, Mermaid diagram and HTML
page to the output directory. Suitable for CI/CD pipelines and cron.

Example:
  vpcatlas scan --region us-west-2 --out ./topology`,
	Run: func(cmd *cobra.Command, args []string) {
		runScan(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
