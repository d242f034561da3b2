package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	spt "Stratum/internal/calc/spt"
	"github.com/spf13/cobra"
)

var (
	sptN         []float64
	sptDepths    []float64
	sptEop       []float64
	sptHammer    float64
	sptBorehole  float64
	sptSampler   float64
	sptRodLength float64
	sptMethod    string
	sptDilatancy bool
	sptPolicy    string
)

var sptCmd = &cobra.Command{
	Use:   "spt",
	Short: "Correct SPT blow counts and derive a design N-value",
	Long: `Apply the energy, overburden and dilatancy corrections to recorded
SPT blow counts and reduce them to a single design N-value.

Overburden methods: gibbs-holtz, bazaraa-peck, peck, liao-whitman, skempton.
Design policies: min, average, weighted.

Repeat --n, --depth and --eop once per reading, in matching order.

Examples:
  stratumcli spt --n 12 --depth 1.5 --eop 28 --n 15 --depth 3 --eop 56
  stratumcli spt --n 20 --depth 2 --eop 37 --method liao-whitman --policy min`,
	Run: runSPT,
}

func init() {
	rootCmd.AddCommand(sptCmd)

	sptCmd.Flags().Float64SliceVarP(&sptN, "n", "n", nil, "Recorded blow count (repeatable)")
	sptCmd.Flags().Float64SliceVarP(&sptDepths, "depth", "D", nil, "Test depth in m (repeatable)")
	sptCmd.Flags().Float64SliceVar(&sptEop, "eop", nil, "Effective overburden pressure in kPa (repeatable)")
	sptCmd.Flags().Float64Var(&sptHammer, "hammer", 0.6, "Hammer energy efficiency")
	sptCmd.Flags().Float64Var(&sptBorehole, "cb", 1, "Borehole diameter correction")
	sptCmd.Flags().Float64Var(&sptSampler, "cs", 1, "Sampler correction")
	sptCmd.Flags().Float64Var(&sptRodLength, "cr", 1, "Rod length correction")
	sptCmd.Flags().StringVarP(&sptMethod, "method", "m", "gibbs-holtz", "Overburden correction method")
	sptCmd.Flags().BoolVar(&sptDilatancy, "dilatancy", false, "Apply the dilatancy correction for fine saturated sands")
	sptCmd.Flags().StringVar(&sptPolicy, "policy", "weighted", "Design N-value policy")
}

func runSPT(cmd *cobra.Command, args []string) {
	if len(sptN) == 0 {
		fmt.Fprintln(os.Stderr, "Error: provide at least one reading with --n, --depth and --eop")
		os.Exit(1)
	}
	if len(sptDepths) != len(sptN) || len(sptEop) != len(sptN) {
		fmt.Fprintln(os.Stderr, "Error: --n, --depth and --eop must be repeated the same number of times")
		os.Exit(1)
	}

	input := spt.Input{
		HammerEfficiency: sptHammer,
		BoreholeCor:      sptBorehole,
		SamplerCor:       sptSampler,
		RodLengthCor:     sptRodLength,
		OverburdenMethod: sptMethod,
		ApplyDilatancy:   sptDilatancy,
		Policy:           sptPolicy,
	}
	for i := range sptN {
		input.Readings = append(input.Readings, spt.Reading{
			DepthM:    sptDepths[i],
			RecordedN: sptN[i],
			EopKPa:    sptEop[i],
		})
	}

	res, err := spt.Calculate(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SPT CORRECTION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  Depth (m)\tRecorded N\tN60\tCorrected N")
	for i, rd := range input.Readings {
		fmt.Fprintf(w, "  %.2f\t%.0f\t%.2f\t%.2f\n", rd.DepthM, rd.RecordedN, res.N60Values[i], res.CorrectedValues[i])
	}
	fmt.Fprintln(w, "  \t\t\t")
	fmt.Fprintf(w, "  Design N\t%.2f\t\t(%s policy)\n", res.DesignN, sptPolicy)
	w.Flush()
	fmt.Println()
}
