package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purge bool

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <collection> <id>",
	Short: "Delete a document",
	Long: `Delete a document from a collection. By default the deletion
leaves a tombstone; --purge erases the document outright.

Example:
  edda rm users alice
  edda rm users alice --purge`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			return
		}
		defer store.Close()

		if purge {
			err = store.Purge(args[0], args[1])
		} else {
			err = store.Delete(args[0], args[1])
		}
		if err != nil {
			fmt.Printf("Error deleting document: %v\n", err)
			return
		}

		fmt.Printf("Deleted %s/%s\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
	rmCmd.Flags().BoolVar(&purge, "purge", false, "Erase the document outright instead of tombstoning")
}
