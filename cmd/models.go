package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()
		models, err := newClient().Models(ctx)
		if err != nil {
			return err
		}
		// deterministic order
		keys := make([]string, 0, len(models))
		for k := range models {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			m := models[k]
			marker := " "
			if k == cfg.DefaultModel {
				marker = "*"
			}
			fmt.Printf("%s %-22s %s — %s\n", marker, k, m.Name, m.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
