package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atlasops/vpcatlas/internal/app"
	"github.com/atlasops/vpcatlas/internal/model"
	"github.com/atlasops/vpcatlas/internal/report"
	"github.com/atlasops/vpcatlas/internal/version"
)

var (
	cfgFile string
	config  app.Config
)

var rootCmd = &cobra.Command{
	Use:   "vpcatlas",
	Short: "Map AWS network topology as Mermaid diagrams",
	Long: `VPCAtlas - AWS Network Cartography

Scan a region, collect VPCs, subnets, route tables and security groups,
and turn them into a renderable Mermaid diagram.`,
	Version: version.Current,
	Run: func(cmd *cobra.Command, args []string) {
		runScan(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.vpcatlas.yaml)")
	rootCmd.PersistentFlags().StringVar(&config.Region, "region", "us-east-1", "AWS Region")
	rootCmd.PersistentFlags().StringVar(&config.OutputDir, "out", "vpcatlas-out", "Output directory")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable debug logging")

	// Hidden Flags
	rootCmd.PersistentFlags().BoolVar(&config.MockMode, "mock", false, "Run against a built-in demo topology")
	rootCmd.PersistentFlags().MarkHidden("mock")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".vpcatlas.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.AutomaticEnv()
	viper.ReadInConfig()

	if viper.IsSet("region") {
		config.Region = viper.GetString("region")
	}
	if viper.IsSet("out") {
		config.OutputDir = viper.GetString("out")
	}
}

func runScan(ctx context.Context) {
	m, _, err := app.Run(ctx, config)
	if err != nil {
		fmt.Printf("Error running scan: %v\n", err)
		os.Exit(1)
	}
	printSummary(m)
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF99")).
			MarginBottom(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

func printSummary(m *model.NetworkModel) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s", version.AppName, version.Current)))

	subnets, tables, groups := 0, 0, 0
	for _, vpc := range m.VPCs {
		subnets += len(vpc.Subnets)
		tables += len(vpc.RouteTables)
		groups += len(vpc.SecurityGroups)
	}

	fmt.Printf("  Region:          %s\n", m.Region)
	fmt.Printf("  VPCs:            %d\n", len(m.VPCs))
	fmt.Printf("  Subnets:         %d\n", subnets)
	fmt.Printf("  Route Tables:    %d\n", tables)
	fmt.Printf("  Security Groups: %d\n", groups)
	fmt.Println()
	fmt.Println(dimStyle.Render(fmt.Sprintf("  Diagram: ./%s/%s", config.OutputDir, report.DiagramFile)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  Model:   ./%s/%s", config.OutputDir, report.ModelFile)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("  HTML:    ./%s/%s", config.OutputDir, report.HTMLFile)))
}
