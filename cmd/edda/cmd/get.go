package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eddadb/edda/pkg/value"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <collection> <id>",
	Short: "Print a document as JSON",
	Long: `Get a document from a collection and print it as JSON.

Example:
  edda get users alice`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			return
		}
		defer store.Close()

		doc, _, err := store.Get(args[0], args[1])
		if err != nil {
			fmt.Printf("Error getting document: %v\n", err)
			return
		}

		data, err := value.ToJSON(doc)
		if err != nil {
			fmt.Printf("Error encoding document: %v\n", err)
			return
		}
		fmt.Printf("%s\n", data)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
