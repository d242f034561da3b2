package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	bearing "Stratum/internal/calc/bearing"
	"github.com/spf13/cobra"
)

var (
	factorsTheory string
	factorsPhi    float64
)

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Calculate bearing capacity factors Nc, Nq and Ngamma",
	Long: `Calculate the bearing capacity factors for a friction angle.

Supported theories: terzaghi, hansen, vesic, meyerhof.

Examples:
  stratumcli factors --theory hansen --phi 20
  stratumcli factors -t terzaghi -p 35`,
	Run: runFactors,
}

func init() {
	rootCmd.AddCommand(factorsCmd)

	factorsCmd.Flags().StringVarP(&factorsTheory, "theory", "t", "terzaghi", "Bearing capacity theory")
	factorsCmd.Flags().Float64VarP(&factorsPhi, "phi", "p", 0, "Soil friction angle (degrees)")
}

func runFactors(cmd *cobra.Command, args []string) {
	theory, err := bearing.ParseTheory(factorsTheory)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	f, err := bearing.NFactors(theory, factorsPhi)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("  Bearing capacity factors (%s, phi = %.1f deg)\n", theory, factorsPhi)
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  Nc\t%.2f\n", f.Nc)
	fmt.Fprintf(w, "  Nq\t%.2f\n", f.Nq)
	fmt.Fprintf(w, "  Ngamma\t%.2f\n", f.Ngamma)
	w.Flush()
	fmt.Println()
}
