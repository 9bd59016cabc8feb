package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/utils"
)

// Result messages. One type per operation so Update can route them without
// a shared loading flag.
type (
	healthMsg struct{ err error }

	catalogMsg struct {
		models map[string]api.ModelInfo
		err    error
	}

	uploadDoneMsg struct {
		files []api.UploadFile
		res   *api.UploadResult
		err   error
	}

	queryDoneMsg struct {
		userID string
		res    *api.QueryResult
		err    error
	}

	quizDoneMsg struct {
		chapter string
		res     *api.QuizResult
		err     error
	}

	clearDoneMsg struct {
		message string
		err     error
	}

	quizSavedMsg struct {
		path string
		err  error
	}

	copiedMsg struct{ err error }

	noticeExpiredMsg struct{ seq int }
)

func (m *model) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cfg.Timeout)
}

func (m *model) healthCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		return healthMsg{err: m.cfg.Client.Health(ctx)}
	}
}

func (m *model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		models, err := m.cfg.Client.Models(ctx)
		return catalogMsg{models: models, err: err}
	}
}

func (m *model) uploadCmd(files []api.UploadFile) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		res, err := m.cfg.Client.Upload(ctx, files)
		return uploadDoneMsg{files: files, res: res, err: err}
	}
}

func (m *model) queryCmd(userID, question string, filter *string, modelName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		res, err := m.cfg.Client.Query(ctx, api.QueryRequest{
			Query:         question,
			ChapterFilter: filter,
			ModelName:     modelName,
		})
		return queryDoneMsg{userID: userID, res: res, err: err}
	}
}

func (m *model) quizCmd(chapter string, count int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		res, err := m.cfg.Client.GenerateQuiz(ctx, chapter, count)
		return quizDoneMsg{chapter: chapter, res: res, err: err}
	}
}

func (m *model) clearCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestContext()
		defer cancel()
		msg, err := m.cfg.Client.Clear(ctx)
		return clearDoneMsg{message: msg, err: err}
	}
}

// saveQuizCmd exports the raw quiz text locally; no network involved.
func saveQuizCmd(chapter, questions string, at time.Time) tea.Cmd {
	return func() tea.Msg {
		path := utils.QuizFileName(chapter, at)
		err := utils.SafeWriteFile(path, []byte(questions))
		return quizSavedMsg{path: path, err: err}
	}
}

func copyAnswerCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
