// Package tui implements the interactive full-screen interface: an
// Upload/Chat/Quiz tab switcher with a sidebar, mirroring the StudyMind web
// front end. All state mutation happens in Update; network calls run as
// tea.Cmd goroutines that report back through typed messages.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/session"
	"github.com/UzairRan/studymind-cli/internal/upload"
)

// Backend is the slice of the API client the interface needs. Tests swap in
// a fake.
type Backend interface {
	Health(ctx context.Context) error
	Models(ctx context.Context) (map[string]api.ModelInfo, error)
	Chapters(ctx context.Context) ([]string, error)
	Upload(ctx context.Context, files []api.UploadFile) (*api.UploadResult, error)
	Query(ctx context.Context, req api.QueryRequest) (*api.QueryResult, error)
	GenerateQuiz(ctx context.Context, chapter string, numQuestions int) (*api.QuizResult, error)
	Clear(ctx context.Context) (string, error)
}

// Config wires runtime options into the program.
type Config struct {
	Client       Backend
	DefaultModel string
	QuizCount    int
	Timeout      time.Duration
	BackendURL   string
}

type tab int

const (
	tabUpload tab = iota
	tabChat
	tabQuiz
)

// operation identifies one logical backend interaction. Each carries its own
// status so concurrent operations never clobber each other's indicator.
type operation int

const (
	opUpload operation = iota
	opQuery
	opQuiz
	opClear
	opCatalog
)

type opPhase int

const (
	phaseIdle opPhase = iota
	phasePending
	phaseDone
	phaseFailed
)

type opStatus struct {
	phase opPhase
	note  string
}

type model struct {
	cfg  Config
	sess *session.Session

	tab            tab
	sidebarVisible bool
	width          int
	height         int
	notice         string
	noticeSeq      int
	confirmClear   bool

	ops map[operation]opStatus

	// sidebar
	models     map[string]api.ModelInfo
	modelKeys  []string
	modelIndex int

	// upload panel
	pathInput textinput.Model
	staged    []api.UploadFile
	rejected  []upload.Rejection

	// chat panel
	composer        textarea.Model
	transcript      viewport.Model
	transcriptDirty bool
	chapterIndex    int
	history         *inputHistory

	// quiz panel
	quizChapterIndex int
	quizCount        int

	spin spinner.Model
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.QuizCount == 0 {
		config.QuizCount = 5
	}
	if config.Timeout <= 0 {
		config.Timeout = 60 * time.Second
	}

	pathInput := textinput.New()
	pathInput.Placeholder = "Path to a PDF file…"
	pathInput.Prompt = "> "
	pathInput.CharLimit = 0

	composer := textarea.New()
	composer.Placeholder = "Ask a question about your notes…"
	composer.Prompt = "┃ "
	composer.ShowLineNumbers = false
	composer.CharLimit = 2000
	composer.SetHeight(3)
	// Enter submits; newline is inserted explicitly on alt+enter.
	composer.KeyMap.InsertNewline.SetEnabled(false)

	transcript := viewport.New(80, 20)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := &model{
		cfg:             config,
		sess:            session.New(config.DefaultModel),
		tab:             tabUpload,
		sidebarVisible:  true,
		ops:             map[operation]opStatus{},
		pathInput:       pathInput,
		composer:        composer,
		transcript:      transcript,
		transcriptDirty: true,
		quizCount:       session.ClampQuestionCount(config.QuizCount),
		history:         loadInputHistory(),
		spin:            spin,
	}
	m.pathInput.Focus()
	return m
}

func (m *model) Init() tea.Cmd {
	// Health check is advisory only: a failure shows a notice and disables
	// nothing.
	return tea.Batch(m.healthCmd(), m.loadCatalogCmd(), m.spin.Tick)
}

// chapterOptions returns the chat filter choices: the sentinel first, then
// the detected chapters.
func (m *model) chapterOptions() []string {
	return append([]string{session.AllChapters}, m.sess.Chapters...)
}

// selectedChapterFilter maps the current picker position to the wire value.
func (m *model) selectedChapterFilter() *string {
	return session.ChapterFilter(m.chapterLabel())
}

// chapterLabel returns the displayed filter choice, falling back to the
// sentinel when the selection no longer exists.
func (m *model) chapterLabel() string {
	opts := m.chapterOptions()
	if m.chapterIndex < 0 || m.chapterIndex >= len(opts) {
		return opts[0]
	}
	return opts[m.chapterIndex]
}

// quizChapter returns the chapter selected for quiz generation, empty when
// none is available.
func (m *model) quizChapter() string {
	if len(m.sess.Chapters) == 0 {
		return ""
	}
	if m.quizChapterIndex < 0 || m.quizChapterIndex >= len(m.sess.Chapters) {
		return m.sess.Chapters[0]
	}
	return m.sess.Chapters[m.quizChapterIndex]
}

// selectedModel returns the model key sent with queries and shown in the
// sidebar.
func (m *model) selectedModel() string {
	if len(m.modelKeys) > 0 && m.modelIndex >= 0 && m.modelIndex < len(m.modelKeys) {
		return m.modelKeys[m.modelIndex]
	}
	return m.sess.Model
}
