package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eddadb/edda/pkg/value"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <file1> <file2>",
	Short: "Compare two JSON documents",
	Long: `Compare two JSON documents and print the difference dict: keys
whose values differ map to the first document's value, keys present only in
the second map to null. Prints {} when the documents are equal.

Example:
  edda diff before.json after.json`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		d1, err := readDict(args[0])
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", args[0], err)
			return
		}
		d2, err := readDict(args[1])
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", args[1], err)
			return
		}

		data, err := value.ToJSON(value.CompareDicts(d1, d2))
		if err != nil {
			fmt.Printf("Error encoding diff: %v\n", err)
			return
		}
		fmt.Printf("%s\n", data)
	},
}

func readDict(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return value.DictFromJSON(data)
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
