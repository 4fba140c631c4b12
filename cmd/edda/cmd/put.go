package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eddadb/edda/pkg/value"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <collection> <id> <json>",
	Short: "Store a document",
	Long: `Store a JSON document in a collection, replacing any existing
content. The document may be given inline or as @file.

Example:
  edda put users alice '{"name": {"first": "Alice"}}'
  edda put users bob @bob.json`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		collection, id := args[0], args[1]

		data, err := readDocArg(args[2])
		if err != nil {
			fmt.Printf("Error reading document: %v\n", err)
			return
		}
		doc, err := value.DictFromJSON(data)
		if err != nil {
			fmt.Printf("Error parsing document: %v\n", err)
			return
		}

		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			return
		}
		defer store.Close()

		rev, err := store.Put(collection, id, doc)
		if err != nil {
			fmt.Printf("Error storing document: %v\n", err)
			return
		}

		fmt.Printf("Stored %s/%s at revision %d\n", collection, id, rev)
	},
}

// readDocArg reads an inline JSON argument or, with a leading '@', a file.
func readDocArg(arg string) ([]byte, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		return os.ReadFile(name)
	}
	return []byte(arg), nil
}

func init() {
	rootCmd.AddCommand(putCmd)
}
