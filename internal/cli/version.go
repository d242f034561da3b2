package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stratumcli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stratumcli v%s\n", Version)
		fmt.Println("Geotechnical Foundation Design Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
