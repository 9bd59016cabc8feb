package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List chapters detected in the uploaded documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()
		chapters, err := newClient().Chapters(ctx)
		if err != nil {
			return err
		}
		if len(chapters) == 0 {
			fmt.Println("No chapters yet — upload some PDFs first.")
			return nil
		}
		for _, c := range chapters {
			fmt.Println(c)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
