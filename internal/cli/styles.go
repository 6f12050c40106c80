package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/irofield/iro/internal/colour"
)

// stylesCmd represents the styles command
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List the available palette styles",
	Long: `List every registered palette style with its description and a strip
of the six chromatic colours it leans towards.`,
	Run: func(cmd *cobra.Command, args []string) {
		showStrips := isTerminal(os.Stdout)
		for _, name := range colour.StyleNames() {
			style := colour.LookupStyle(name)
			if showStrips {
				fmt.Printf("%-12s %s  %s\n", name, renderStyleStrip(style), style.Description)
			} else {
				fmt.Printf("%-12s %s\n", name, style.Description)
			}
		}
	},
}
