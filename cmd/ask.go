package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/session"
)

var (
	askChapter string
	askModel   string
	askShowSrc bool
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question against the uploaded documents",
	Example: `  studymind ask "What is backpropagation?"
  studymind ask "Summarize the key results" --chapter "Chapter 3"
  studymind ask "Define entropy" --model gemini-1.5-pro`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]
		if strings.TrimSpace(question) == "" {
			return fmt.Errorf("question cannot be empty")
		}
		model := askModel
		if model == "" {
			model = cfg.DefaultModel
		}

		ctx, cancel := requestContext()
		defer cancel()
		res, err := newClient().Query(ctx, api.QueryRequest{
			Query:         question,
			ChapterFilter: session.ChapterFilter(askChapter),
			ModelName:     model,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Answer)
		if askShowSrc && len(res.Sources) > 0 {
			fmt.Println("\nSources:")
			for _, s := range res.Sources {
				if s.Chapter != "" {
					fmt.Printf("  - %s, page %d (%s)\n", s.Source, s.Page, s.Chapter)
				} else {
					fmt.Printf("  - %s, page %d\n", s.Source, s.Page)
				}
			}
		}
		fmt.Printf("\n[answered by %s]\n", res.ModelUsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askChapter, "chapter", "c", "", `restrict the question to one chapter ("All Chapters" or empty means no filter)`)
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "model key to answer with (default from config)")
	askCmd.Flags().BoolVar(&askShowSrc, "sources", true, "print source citations")
}
