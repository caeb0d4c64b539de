package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"audioshelf/internal/application/commands"
	"audioshelf/internal/domain"
)

var progressFinished bool

var progressCmd = &cobra.Command{
	Use:   "progress <id> [position]",
	Short: "Set the playback position of a book",
	Long: `Move a book to a position given as hh:mm or hh:mm:ss,
or to its end with --finished.

Examples:
  audioshelf-cli progress 3 01:20
  audioshelf-cli progress 3 --finished`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx := context.Background()

		var result *commands.SetProgressResult
		switch {
		case progressFinished:
			result, err = commands.NewFinishBookCommand(GetLibrary(), id).Execute(ctx)
		case len(args) == 2:
			position, perr := domain.ParseTime(args[1])
			if perr != nil {
				return perr
			}
			result, err = commands.NewSetProgressCommand(GetLibrary(), id, position).Execute(ctx)
		default:
			return fmt.Errorf("position or --finished is required")
		}
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid book id %q", s)
	}
	return id, nil
}

func init() {
	progressCmd.Flags().BoolVarP(&progressFinished, "finished", "f", false, "move the book to its end")
	rootCmd.AddCommand(progressCmd)
}
