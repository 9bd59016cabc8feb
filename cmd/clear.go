package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all uploaded documents and indexes on the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			fmt.Print("This deletes all uploaded documents and chapters. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if !confirmed(line) {
				fmt.Println("Aborted.")
				return nil
			}
		}
		ctx, cancel := requestContext()
		defer cancel()
		msg, err := newClient().Clear(ctx)
		if err != nil {
			return err
		}
		if msg == "" {
			msg = "All data cleared"
		}
		fmt.Println("✓", msg)
		return nil
	},
}

func confirmed(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
}
