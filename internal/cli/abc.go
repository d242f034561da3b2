package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	allowable "Stratum/internal/calc/allowable"
	"github.com/spf13/cobra"
)

var (
	abcTheory     string
	abcType       string
	abcN          float64
	abcSettlement float64
	abcDepth      float64
	abcWidth      float64
	abcWater      float64
)

var abcCmd = &cobra.Command{
	Use:   "abc",
	Short: "Calculate allowable bearing capacity from SPT blow counts",
	Long: `Calculate the settlement-limited allowable bearing capacity of a
foundation from the corrected SPT N-value.

Supported theories: bowles, meyerhof, terzaghi.
Foundation types: pad, mat.

Examples:
  stratumcli abc --theory bowles --type pad --n 20 --settlement 25 --depth 1 --width 2
  stratumcli abc -t terzaghi -T pad -n 10 -S 25 -D 1 -B 1.5 --water 1.5`,
	Run: runABC,
}

func init() {
	rootCmd.AddCommand(abcCmd)

	abcCmd.Flags().StringVarP(&abcTheory, "theory", "t", "bowles", "Allowable capacity theory")
	abcCmd.Flags().StringVarP(&abcType, "type", "T", "pad", "Foundation type (pad or mat)")
	abcCmd.Flags().Float64VarP(&abcN, "n", "n", 0, "Corrected SPT N-value")
	abcCmd.Flags().Float64VarP(&abcSettlement, "settlement", "S", 25.4, "Tolerable settlement (mm)")
	abcCmd.Flags().Float64VarP(&abcDepth, "depth", "D", 0, "Foundation depth (m)")
	abcCmd.Flags().Float64VarP(&abcWidth, "width", "B", 0, "Foundation width (m)")
	abcCmd.Flags().Float64Var(&abcWater, "water", -1, "Water table depth below grade (m, Terzaghi only)")
}

func runABC(cmd *cobra.Command, args []string) {
	input := allowable.Input{
		Theory:          abcTheory,
		FoundationType:  abcType,
		CorrectedN:      abcN,
		TolSettlementMM: abcSettlement,
		DepthM:          abcDepth,
		WidthM:          abcWidth,
	}
	if abcWater >= 0 {
		water := abcWater
		input.WaterDepthM = &water
	}

	res, err := allowable.Calculate(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ALLOWABLE BEARING CAPACITY (SPT)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  Theory\t%s\n", input.Theory)
	fmt.Fprintf(w, "  Foundation type\t%s\n", input.FoundationType)
	fmt.Fprintf(w, "  Corrected N\t%.1f\n", input.CorrectedN)
	fmt.Fprintf(w, "  Settlement ratio\t%.3f\n", res.SettlementRatio)
	fmt.Fprintf(w, "  Depth factor\t%.3f\n", res.DepthFactor)
	if res.WaterFactor != 0 {
		fmt.Fprintf(w, "  Water factor\t%.3f\n", res.WaterFactor)
	}
	fmt.Fprintln(w, "  \t")
	fmt.Fprintf(w, "  Allowable capacity\t%.2f kPa\n", res.AllowableKPa)
	w.Flush()
	fmt.Println()
}
