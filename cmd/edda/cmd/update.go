package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eddadb/edda/pkg/docstore"
	"github.com/eddadb/edda/pkg/value"
)

var (
	setFlags   []string
	unsetFlags []string
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update <collection> <id>",
	Short: "Update document properties by key path",
	Long: `Update a document in place: --set writes a value at a key path,
--unset removes one. Sets apply before unsets. The document is created if
it does not exist. Values parse as JSON; a value that is not valid JSON is
taken as a plain string.

Example:
  edda update users alice --set name.first='"Alice"' --set 'pets[0]=cat'
  edda update users alice --unset name.middle`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(setFlags) == 0 && len(unsetFlags) == 0 {
			fmt.Printf("Error: nothing to update, pass --set or --unset\n")
			return
		}

		updates := make(map[string]any, len(setFlags))
		for _, s := range setFlags {
			path, raw, ok := strings.Cut(s, "=")
			if !ok || path == "" {
				fmt.Printf("Error: --set expects path=value, got %q\n", s)
				return
			}
			v, err := value.FromJSON([]byte(raw))
			if err != nil {
				// Not JSON, keep the raw text as a string value.
				v = raw
			}
			updates[path] = v
		}

		entry := docstore.UpdateEntry{
			Type:              docstore.UpdateTypeUpdate,
			ID:                args[1],
			RemovedProperties: unsetFlags,
		}
		if len(updates) > 0 {
			entry.UpdatedProperties = []map[string]any{updates}
		}

		store, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			return
		}
		defer store.Close()

		if err := store.ApplyUpdates(args[0], []docstore.UpdateEntry{entry}); err != nil {
			fmt.Printf("Error updating document: %v\n", err)
			return
		}

		fmt.Printf("Updated %s/%s\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringArrayVar(&setFlags, "set", nil, "path=value pair to write (repeatable)")
	updateCmd.Flags().StringArrayVar(&unsetFlags, "unset", nil, "key path to remove (repeatable)")
}
