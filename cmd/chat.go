package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/UzairRan/studymind-cli/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive interface (upload, chat, quiz)",
	Long: `Chat opens a full-screen terminal interface with three tabs — Upload,
Chat, and Quiz — plus a sidebar showing uploaded documents, detected
chapters, and the model picker. It mirrors the StudyMind web front end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.New(tui.Config{
			Client:       newClient(),
			DefaultModel: cfg.DefaultModel,
			QuizCount:    cfg.QuizQuestions,
			Timeout:      httpTimeout(),
			BackendURL:   baseURL(),
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run interface: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
