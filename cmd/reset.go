package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local analysis database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if force, _ := cmd.Flags().GetBool("force"); !force {
			fmt.Printf("This deletes all stored analyses and assessor events in %s.\n", dbPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to delete.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL companions sit next to the database file.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		fmt.Println("Database deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Actually delete the database")
}
