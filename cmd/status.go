package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()
		if err := newClient().Health(ctx); err != nil {
			return fmt.Errorf("backend unreachable at %s: %w", baseURL(), err)
		}
		fmt.Printf("✓ Backend healthy at %s\n", baseURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
