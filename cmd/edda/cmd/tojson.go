package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eddadb/edda/pkg/value"
)

// tojsonCmd represents the tojson command
var tojsonCmd = &cobra.Command{
	Use:   "tojson <file>",
	Short: "Normalize a JSON document and print it",
	Long: `Parse a JSON file into the value model, normalize it and print
the JSON representation back. Useful to check what the store would persist.

Example:
  edda tojson doc.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", args[0], err)
			return
		}

		v, err := value.FromJSON(data)
		if err != nil {
			fmt.Printf("Error parsing %s: %v\n", args[0], err)
			return
		}

		out, err := value.ToJSON(v)
		if err != nil {
			fmt.Printf("Error encoding value: %v\n", err)
			return
		}
		fmt.Printf("%s\n", out)
	},
}

func init() {
	rootCmd.AddCommand(tojsonCmd)
}
