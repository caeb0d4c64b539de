package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"audioshelf/internal/application/commands"
)

var selectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Mark a book as currently playing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		book, err := commands.NewSelectBookCommand(GetLibrary(), GetLibrary(), id).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Now playing %d %s\n", book.ID, book.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
