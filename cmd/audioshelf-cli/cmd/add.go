package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
)

var (
	addAuthor string
	addCover  string
)

var addCmd = &cobra.Command{
	Use:   "add <title> <duration>",
	Short: "Add a book to the shelf",
	Long: `Add a book with its total length as hh:mm or hh:mm:ss.

Examples:
  audioshelf-cli add "Hyperion" 21:06 --author "Dan Simmons"
  audioshelf-cli add "Kindred" 10:55:30 --cover kindred.jpg`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, err := domain.ParseTime(args[1])
		if err != nil {
			return err
		}

		ctx := context.Background()
		addCmd := commands.NewAddBookCommand(GetLibrary(), args[0], addAuthor, duration)
		addCmd.CoverKey = addCover
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addAuthor, "author", "a", "", "book author")
	addCmd.Flags().StringVarP(&addCover, "cover", "c", "", "cover file name in the covers directory")
	rootCmd.AddCommand(addCmd)
}
