package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the books on the shelf",
	Long: `List every book in shelf order with its ID and progress.
The book currently playing is marked with a *.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		books, err := commands.NewListBooksCommand(GetLibrary()).Execute(ctx)
		if err != nil {
			return err
		}
		current, ok, err := GetLibrary().CurrentBookID(ctx)
		if err != nil {
			return err
		}

		for _, b := range books {
			marker := " "
			if ok && b.ID == current {
				marker = "*"
			}
			fmt.Printf("%s %d %s%s  %s\n", marker, b.ID, b.Name, byAuthor(b), progressLabel(b))
		}
		return nil
	},
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the book currently playing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		book, err := commands.NewCurrentBookCommand(GetLibrary(), GetLibrary()).Execute(ctx)
		if err != nil {
			return err
		}
		if book == nil {
			fmt.Println("Nothing is playing.")
			return nil
		}
		fmt.Printf("%d %s%s  %s\n", book.ID, book.Name, byAuthor(*book), progressLabel(*book))
		return nil
	},
}

func byAuthor(b domain.Book) string {
	if !b.HasAuthor() {
		return ""
	}
	return " by " + b.Author
}

func progressLabel(b domain.Book) string {
	if b.Finished() {
		return "finished"
	}
	return domain.FormatTime(b.Position) + "/" + domain.FormatTime(b.Duration)
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(currentCmd)
}
