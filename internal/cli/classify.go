package cli

import (
	"fmt"
	"os"

	classify "Stratum/internal/calc/classify"
	"github.com/spf13/cobra"
)

var (
	uscsLL      float64
	uscsPL      float64
	uscsFines   float64
	uscsSand    float64
	uscsGravel  float64
	uscsCu      float64
	uscsCc      float64
	uscsOrganic bool

	aashtoLL    float64
	aashtoPI    float64
	aashtoFines float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a soil sample (USCS or AASHTO)",
}

var uscsCmd = &cobra.Command{
	Use:   "uscs",
	Short: "Unified Soil Classification System group symbol",
	Long: `Classify a soil sample under the Unified Soil Classification System.

Fines, sand and gravel are percentages by mass and must sum to 100.
Cu and Cc are required for coarse soils with less than 5% fines.

Examples:
  stratumcli classify uscs --ll 40 --pl 18 --fines 60 --sand 30 --gravel 10
  stratumcli classify uscs --fines 3 --sand 87 --gravel 10 --cu 7 --cc 1.5`,
	Run: func(cmd *cobra.Command, args []string) {
		symbol, err := classify.ClassifyUSCS(classify.USCSInput{
			LiquidLimit:  uscsLL,
			PlasticLimit: uscsPL,
			Fines:        uscsFines,
			Sand:         uscsSand,
			Gravel:       uscsGravel,
			Cu:           uscsCu,
			Cc:           uscsCc,
			Organic:      uscsOrganic,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("USCS group symbol: %s\n", symbol)
	},
}

var aashtoCmd = &cobra.Command{
	Use:   "aashto",
	Short: "AASHTO highway classification group",
	Long: `Classify a soil sample under the AASHTO highway system.

The group index is appended in parentheses.

Example:
  stratumcli classify aashto --ll 45 --pi 20 --fines 60`,
	Run: func(cmd *cobra.Command, args []string) {
		group, err := classify.ClassifyAASHTO(classify.AASHTOInput{
			LiquidLimit:     aashtoLL,
			PlasticityIndex: aashtoPI,
			Fines:           aashtoFines,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("AASHTO group: %s\n", group)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.AddCommand(uscsCmd)
	classifyCmd.AddCommand(aashtoCmd)

	uscsCmd.Flags().Float64Var(&uscsLL, "ll", 0, "Liquid limit (%)")
	uscsCmd.Flags().Float64Var(&uscsPL, "pl", 0, "Plastic limit (%)")
	uscsCmd.Flags().Float64Var(&uscsFines, "fines", 0, "Fines fraction (%)")
	uscsCmd.Flags().Float64Var(&uscsSand, "sand", 0, "Sand fraction (%)")
	uscsCmd.Flags().Float64Var(&uscsGravel, "gravel", 0, "Gravel fraction (%)")
	uscsCmd.Flags().Float64Var(&uscsCu, "cu", 0, "Coefficient of uniformity")
	uscsCmd.Flags().Float64Var(&uscsCc, "cc", 0, "Coefficient of curvature")
	uscsCmd.Flags().BoolVar(&uscsOrganic, "organic", false, "Organic fines")

	aashtoCmd.Flags().Float64Var(&aashtoLL, "ll", 0, "Liquid limit (%)")
	aashtoCmd.Flags().Float64Var(&aashtoPI, "pi", 0, "Plasticity index (%)")
	aashtoCmd.Flags().Float64Var(&aashtoFines, "fines", 0, "Percent passing the No. 200 sieve")
}
