package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls <collection>",
	Short: "List document IDs in a collection",
	Long: `List the IDs of live documents in a collection, one per line.

Example:
  edda ls users`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			return
		}
		defer store.Close()

		ids, err := store.IDs(args[0])
		if err != nil {
			fmt.Printf("Error listing documents: %v\n", err)
			return
		}
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
