package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bajramiymer-oss/earncalc/internal/calculation"
	"github.com/bajramiymer-oss/earncalc/internal/config"
	"github.com/bajramiymer-oss/earncalc/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "earncalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.String())
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "earncalc",
	Short: "Commission agent earnings projector",
	Long:  "Projects a commission agent's monthly earnings from a SaaS-like sales funnel: acquisition, cancellations/churn, contract pricing, commission and new-sale bonus.",
}

var projectCmd = &cobra.Command{
	Use:   "project [params-file]",
	Short: "Run the monthly earnings projection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		params, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewProjectionEngine()
		if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
			engine.SetLogger(simpleCLILogger{})
			engine.Debug = true
		}

		result, err := engine.Run(params)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		if err := output.GenerateReport(result, format); err != nil {
			log.Fatalf("%v (available: %s)", err, strings.Join(output.FormatterNames(), ", "))
		}
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [params-file]",
	Short: "Export the projection as an Excel workbook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		params, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewProjectionEngine()
		result, err := engine.Run(params)
		if err != nil {
			log.Fatal(err)
		}

		path, _ := cmd.Flags().GetString("output")
		exporter := output.NewExcelExporter()
		if err := exporter.WriteFile(result, path); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s (%d monthly rows, %d yearly totals)\n", path, len(result.Rows), len(result.Yearly))
	},
}

func init() {
	projectCmd.Flags().StringP("format", "f", "console", "Output format: "+strings.Join(output.FormatterNames(), ", "))
	projectCmd.Flags().Bool("debug", false, "Enable debug logging")

	// Default filename kept from the original exports for compatibility.
	exportCmd.Flags().StringP("output", "o", "Payments_v3_3.xlsx", "Output workbook path")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
