package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	bearing "Stratum/internal/calc/bearing"
	chart "Stratum/internal/calc/chart"
	"github.com/spf13/cobra"
)

var (
	ubcTheory     string
	ubcShape      string
	ubcPhi        float64
	ubcCohesion   float64
	ubcUnitWeight float64
	ubcDepth      float64
	ubcWidth      float64
	ubcLength     float64
	ubcEcc        float64
	ubcWater      float64
	ubcLoadAngle  float64
	ubcLocalShear bool
	ubcFS         float64
	ubcChartFile  string
)

var ubcCmd = &cobra.Command{
	Use:   "ubc",
	Short: "Calculate ultimate and allowable bearing capacity",
	Long: `Calculate the ultimate bearing capacity of a shallow footing and the
allowable capacity for a factor of safety.

Supported theories: terzaghi, hansen, vesic, meyerhof.
Supported shapes: strip, square, circle, rectangle.

Examples:
  # Hansen theory, square footing
  stratumcli ubc --theory hansen --shape square --phi 20 --cohesion 20 \
      --gamma 18 --depth 1.5 --width 2

  # Terzaghi strip footing with a water table at 1 m
  stratumcli ubc -t terzaghi -s strip -p 35 -c 0 -g 18.5 -D 1 -B 1.2 --water 1

  # Also write an allowable-capacity-vs-width chart
  stratumcli ubc -t hansen -s square -p 20 -c 20 -g 18 -D 1.5 -B 2 --chart curve.png`,
	Run: runUBC,
}

func init() {
	rootCmd.AddCommand(ubcCmd)

	ubcCmd.Flags().StringVarP(&ubcTheory, "theory", "t", "terzaghi", "Bearing capacity theory")
	ubcCmd.Flags().StringVarP(&ubcShape, "shape", "s", "strip", "Footing shape")
	ubcCmd.Flags().Float64VarP(&ubcPhi, "phi", "p", 0, "Soil friction angle (degrees)")
	ubcCmd.Flags().Float64VarP(&ubcCohesion, "cohesion", "c", 0, "Soil cohesion (kPa)")
	ubcCmd.Flags().Float64VarP(&ubcUnitWeight, "gamma", "g", 0, "Soil unit weight (kN/m3)")
	ubcCmd.Flags().Float64VarP(&ubcDepth, "depth", "D", 0, "Footing depth (m)")
	ubcCmd.Flags().Float64VarP(&ubcWidth, "width", "B", 0, "Footing width (m)")
	ubcCmd.Flags().Float64VarP(&ubcLength, "length", "L", 0, "Footing length (m, rectangle only)")
	ubcCmd.Flags().Float64Var(&ubcEcc, "ecc", 0, "Load eccentricity (m)")
	ubcCmd.Flags().Float64Var(&ubcWater, "water", -1, "Water table depth below grade (m, omit for dry)")
	ubcCmd.Flags().Float64Var(&ubcLoadAngle, "load-angle", 0, "Load inclination from vertical (degrees)")
	ubcCmd.Flags().BoolVar(&ubcLocalShear, "local-shear", false, "Apply local shear strength reduction")
	ubcCmd.Flags().Float64Var(&ubcFS, "fs", 0, "Factor of safety (default 3)")
	ubcCmd.Flags().StringVar(&ubcChartFile, "chart", "", "Write allowable-capacity-vs-width chart to PNG file")
}

func runUBC(cmd *cobra.Command, args []string) {
	input := bearing.Input{
		Theory:           ubcTheory,
		Shape:            ubcShape,
		FrictionAngleDeg: ubcPhi,
		CohesionKPa:      ubcCohesion,
		UnitWeightKNM3:   ubcUnitWeight,
		DepthM:           ubcDepth,
		WidthM:           ubcWidth,
		LengthM:          ubcLength,
		EccM:             ubcEcc,
		LoadAngleDeg:     ubcLoadAngle,
		LocalShear:       ubcLocalShear,
		FactorOfSafety:   ubcFS,
	}
	if ubcWater >= 0 {
		water := ubcWater
		input.WaterLevelM = &water
	}

	res, err := bearing.Calculate(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          ULTIMATE BEARING CAPACITY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  Theory\t%s\n", input.Theory)
	fmt.Fprintf(w, "  Shape\t%s\n", input.Shape)
	fmt.Fprintf(w, "  Design phi\t%.2f deg\n", res.DesignFrictionAngleDeg)
	fmt.Fprintf(w, "  Design cohesion\t%.2f kPa\n", res.DesignCohesionKPa)
	fmt.Fprintf(w, "  Effective width\t%.2f m\n", res.EffectiveWidthM)
	fmt.Fprintln(w, "  \t")
	fmt.Fprintf(w, "  Nc / Nq / Ngamma\t%.2f / %.2f / %.2f\n", res.Factors.Nc, res.Factors.Nq, res.Factors.Ngamma)
	fmt.Fprintf(w, "  sc / sq / sg\t%.2f / %.2f / %.2f\n", res.Corrections.Sc, res.Corrections.Sq, res.Corrections.Sg)
	fmt.Fprintf(w, "  dc / dq / dg\t%.2f / %.2f / %.2f\n", res.Corrections.Dc, res.Corrections.Dq, res.Corrections.Dg)
	fmt.Fprintf(w, "  ic / iq / ig\t%.2f / %.2f / %.2f\n", res.Corrections.Ic, res.Corrections.Iq, res.Corrections.Ig)
	fmt.Fprintln(w, "  \t")
	fmt.Fprintf(w, "  Ultimate capacity\t%.2f kPa\n", res.UltimateKPa)
	fmt.Fprintf(w, "  Allowable capacity\t%.2f kPa (FS = %.1f)\n", res.AllowableKPa, res.FactorOfSafety)
	w.Flush()
	fmt.Println()

	if ubcChartFile != "" {
		f, err := os.Create(ubcChartFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := chart.Render(chart.Input{Footing: input}, f); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("  Chart written to %s\n\n", ubcChartFile)
	}
}
