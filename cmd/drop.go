package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dropCmd = &cobra.Command{
	Use:   "drop <id-prefix>",
	Short: "Delete a stored match and all its derived rows",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	match, err := db.GetMatchByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query match: %w", err)
	}
	if match == nil {
		fmt.Fprintf(os.Stderr, "No match found with prefix %q\n", prefix)
		return nil
	}

	if err := db.DeleteMatch(match.MatchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	fmt.Printf("Deleted match %s (%s)\n", match.MatchID, match.Name)
	return nil
}
