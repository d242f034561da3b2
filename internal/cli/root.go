package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "stratumcli",
	Short: "Geotechnical Foundation Design Tool",
	Long: `stratumcli - Shallow Foundation Analysis

A CLI tool for geotechnical foundation engineering:
  - Ultimate and allowable bearing capacity (Terzaghi, Hansen, Vesic, Meyerhof)
  - Allowable capacity from SPT blow counts (Bowles, Meyerhof, Terzaghi)
  - SPT N-value energy, overburden and dilatancy corrections
  - USCS and AASHTO soil classification`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   stratumcli v%-44s║\n", Version)
		fmt.Println("  ║   Shallow Foundation Analysis                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for geotechnical foundation engineering.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Bearing capacity factors for the classical theories")
		fmt.Println("    • Ultimate and allowable bearing capacity of footings")
		fmt.Println("    • Allowable capacity from corrected SPT blow counts")
		fmt.Println("    • USCS and AASHTO soil classification")
		fmt.Println()
		fmt.Println("  Use 'stratumcli --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
