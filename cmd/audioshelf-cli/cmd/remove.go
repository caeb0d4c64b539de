package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"audioshelf/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a book from the shelf",
	Long: `Remove a book and its listening progress.

Warning: This operation cannot be undone. The cover file is left in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := commands.NewRemoveBookCommand(GetLibrary(), id).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
