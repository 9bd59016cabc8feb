package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/UzairRan/studymind-cli/internal/session"
	"github.com/UzairRan/studymind-cli/internal/utils"
)

var (
	quizChapter string
	quizCount   int
	quizOutput  string
	quizSave    bool
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a quiz from one chapter",
	Example: `  studymind quiz --chapter "Chapter 2"
  studymind quiz --chapter "Chapter 2" --count 10 --output quiz.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if quizChapter == "" {
			return fmt.Errorf("--chapter is required")
		}
		count := quizCount
		if count == 0 {
			count = cfg.QuizQuestions
		}
		count = session.ClampQuestionCount(count)

		fmt.Printf("Generating %d question(s) for %q ...\n", count, quizChapter)
		ctx, cancel := requestContext()
		defer cancel()
		res, err := newClient().GenerateQuiz(ctx, quizChapter, count)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(res.Questions)
		fmt.Printf("\n[generated by %s]\n", res.ModelUsed)

		if quizSave || quizOutput != "" {
			out := quizOutput
			if out == "" {
				out = utils.QuizFileName(quizChapter, time.Now())
			}
			if err := utils.SafeWriteFile(out, []byte(res.Questions)); err != nil {
				return fmt.Errorf("save quiz: %w", err)
			}
			fmt.Printf("✓ Saved to %s\n", out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().StringVarP(&quizChapter, "chapter", "c", "", "chapter to quiz on (required)")
	quizCmd.Flags().IntVarP(&quizCount, "count", "n", 0, "number of questions, clamped to 1-10 (default from config)")
	quizCmd.Flags().StringVarP(&quizOutput, "output", "o", "", "path for the exported quiz text")
	quizCmd.Flags().BoolVar(&quizSave, "save", false, "export to quiz_<chapter>_<timestamp>.txt in the current directory")
}
