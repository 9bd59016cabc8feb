package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/session"
	"github.com/UzairRan/studymind-cli/internal/upload"
)

const noticeDuration = 4 * time.Second

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case healthMsg:
		if msg.err != nil {
			return m, m.setNotice("⚠ Backend unreachable — check that the API is running")
		}
		return m, m.setNotice("✓ Connected to backend")

	case catalogMsg:
		if msg.err != nil {
			m.ops[opCatalog] = opStatus{phase: phaseFailed, note: "model catalog unavailable"}
			return m, nil
		}
		m.setCatalog(msg.models)
		m.ops[opCatalog] = opStatus{phase: phaseDone}
		return m, nil

	case uploadDoneMsg:
		if msg.err != nil {
			m.ops[opUpload] = opStatus{phase: phaseFailed, note: "upload failed"}
			return m, m.setNotice("✗ Upload failed: " + shortErr(msg.err))
		}
		m.sess.AddDocuments(upload.Describe(msg.files, "processed"), msg.res.Chapters)
		m.clampChapterSelections()
		m.staged = nil
		m.rejected = nil
		m.transcriptDirty = true
		m.ops[opUpload] = opStatus{phase: phaseDone}
		return m, m.setNotice(fmt.Sprintf("✓ %s (%d chunks)", msg.res.Message, msg.res.NumChunks))

	case queryDoneMsg:
		if msg.err != nil {
			m.sess.FailAnswer(msg.userID)
			m.ops[opQuery] = opStatus{phase: phaseFailed, note: "query failed"}
			m.transcriptDirty = true
			return m, m.setNotice("✗ Query failed: " + shortErr(msg.err))
		}
		m.sess.ResolveAnswer(msg.userID, msg.res)
		m.ops[opQuery] = opStatus{phase: phaseDone}
		m.transcriptDirty = true
		return m, nil

	case quizDoneMsg:
		if msg.err != nil {
			m.ops[opQuiz] = opStatus{phase: phaseFailed, note: "generation failed"}
			return m, m.setNotice("✗ Quiz generation failed: " + shortErr(msg.err))
		}
		m.sess.SetQuiz(msg.chapter, msg.res)
		m.ops[opQuiz] = opStatus{phase: phaseDone}
		return m, nil

	case clearDoneMsg:
		if msg.err != nil {
			m.ops[opClear] = opStatus{phase: phaseFailed, note: "clear failed"}
			return m, m.setNotice("✗ Clear failed: " + shortErr(msg.err))
		}
		// Documents and chapters reset together, only after backend success.
		m.sess.ClearData()
		m.chapterIndex = 0
		m.quizChapterIndex = 0
		m.transcriptDirty = true
		m.ops[opClear] = opStatus{phase: phaseDone}
		return m, m.setNotice("✓ All data cleared")

	case quizSavedMsg:
		if msg.err != nil {
			return m, m.setNotice("✗ Save failed: " + shortErr(msg.err))
		}
		return m, m.setNotice("✓ Quiz saved to " + msg.path)

	case copiedMsg:
		if msg.err != nil {
			return m, m.setNotice("✗ Clipboard unavailable")
		}
		return m, m.setNotice("✓ Answer copied")

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, m.updateComponents(msg)
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pending clear confirmation swallows the next keypress.
	if m.confirmClear {
		m.confirmClear = false
		if msg.String() == "y" {
			m.ops[opClear] = opStatus{phase: phasePending, note: "clearing"}
			return m, m.clearCmd()
		}
		return m, m.setNotice("Clear cancelled")
	}

	switch msg.String() {
	case "ctrl+c":
		m.history.save()
		return m, tea.Quit
	case "tab":
		m.switchTab((m.tab + 1) % 3)
		return m, nil
	case "shift+tab":
		m.switchTab((m.tab + 2) % 3)
		return m, nil
	case "ctrl+b":
		m.sidebarVisible = !m.sidebarVisible
		m.resize()
		return m, nil
	case "ctrl+p":
		if len(m.modelKeys) > 0 {
			m.modelIndex = (m.modelIndex + 1) % len(m.modelKeys)
			m.sess.Model = m.modelKeys[m.modelIndex]
		}
		return m, nil
	case "ctrl+x":
		m.confirmClear = true
		return m, nil
	}

	switch m.tab {
	case tabUpload:
		return m.handleUploadKey(msg)
	case tabChat:
		return m.handleChatKey(msg)
	case tabQuiz:
		return m.handleQuizKey(msg)
	}
	return m, nil
}

func (m *model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		files, rejected := upload.Select([]string{path})
		m.staged = append(m.staged, files...)
		m.rejected = append(m.rejected, rejected...)
		m.pathInput.SetValue("")
		return m, nil
	case "ctrl+u":
		if len(m.staged) == 0 {
			return m, m.setNotice("Nothing staged — add a PDF path first")
		}
		m.ops[opUpload] = opStatus{phase: phasePending, note: fmt.Sprintf("uploading %d file(s)", len(m.staged))}
		return m, m.uploadCmd(m.staged)
	case "ctrl+d":
		m.staged = nil
		m.rejected = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.submitQuestion()
	case "alt+enter":
		m.composer.InsertString("\n")
		return m, nil
	case "ctrl+y":
		if answer, ok := m.sess.LastAnswer(); ok {
			return m, copyAnswerCmd(answer)
		}
		return m, nil
	case "ctrl+left":
		m.moveChapterFilter(-1)
		return m, nil
	case "ctrl+right":
		m.moveChapterFilter(1)
		return m, nil
	case "up":
		if strings.TrimSpace(m.composer.Value()) == "" {
			if prev, ok := m.history.prev(); ok {
				m.composer.SetValue(prev)
				m.composer.CursorEnd()
			}
			return m, nil
		}
	case "down":
		if m.history.browsing() {
			next, _ := m.history.next()
			m.composer.SetValue(next)
			m.composer.CursorEnd()
			return m, nil
		}
	case "pgup":
		m.transcript.HalfViewUp()
		return m, nil
	case "pgdown":
		m.transcript.HalfViewDown()
		return m, nil
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// submitQuestion implements the optimistic exchange: the user message is
// appended before the call resolves; blank input never issues a request.
func (m *model) submitQuestion() tea.Cmd {
	text := m.composer.Value()
	id, ok := m.sess.SubmitQuestion(text)
	if !ok {
		return nil
	}
	m.history.add(strings.TrimSpace(text))
	m.composer.Reset()
	m.transcriptDirty = true
	m.ops[opQuery] = opStatus{phase: phasePending, note: "thinking"}
	return m.queryCmd(id, text, m.selectedChapterFilter(), m.selectedModel())
}

func (m *model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left":
		m.moveQuizChapter(-1)
		return m, nil
	case "right":
		m.moveQuizChapter(1)
		return m, nil
	case "+", "=", "up":
		m.quizCount = session.ClampQuestionCount(m.quizCount + 1)
		return m, nil
	case "-", "down":
		m.quizCount = session.ClampQuestionCount(m.quizCount - 1)
		return m, nil
	case "g", "enter":
		chapter := m.quizChapter()
		if chapter == "" {
			return m, m.setNotice("Select a chapter first — upload documents to detect chapters")
		}
		m.ops[opQuiz] = opStatus{phase: phasePending, note: "generating"}
		return m, m.quizCmd(chapter, m.quizCount)
	case "s":
		if q := m.sess.Quiz; q != nil {
			return m, saveQuizCmd(q.Chapter, q.Questions, q.GeneratedAt)
		}
		return m, nil
	case "n":
		m.sess.DiscardQuiz()
		m.ops[opQuiz] = opStatus{phase: phaseIdle}
		return m, nil
	}
	return m, nil
}

func (m *model) switchTab(t tab) {
	m.tab = t
	m.pathInput.Blur()
	m.composer.Blur()
	switch t {
	case tabUpload:
		m.pathInput.Focus()
	case tabChat:
		m.composer.Focus()
	}
}

// clampChapterSelections keeps both pickers valid after the chapter list is
// replaced wholesale; a shrunken list resets a now-dangling selection.
func (m *model) clampChapterSelections() {
	if m.chapterIndex < 0 || m.chapterIndex >= len(m.chapterOptions()) {
		m.chapterIndex = 0
	}
	if m.quizChapterIndex < 0 || m.quizChapterIndex >= len(m.sess.Chapters) {
		m.quizChapterIndex = 0
	}
}

func (m *model) moveChapterFilter(delta int) {
	n := len(m.chapterOptions())
	m.chapterIndex = (m.chapterIndex + delta + n) % n
}

func (m *model) moveQuizChapter(delta int) {
	n := len(m.sess.Chapters)
	if n == 0 {
		return
	}
	m.quizChapterIndex = (m.quizChapterIndex + delta + n) % n
}

// setCatalog stores the fetched model mapping in deterministic key order and
// keeps the current selection when it is still present.
func (m *model) setCatalog(models map[string]api.ModelInfo) {
	m.models = models
	m.modelKeys = make([]string, 0, len(models))
	for k := range models {
		m.modelKeys = append(m.modelKeys, k)
	}
	sort.Strings(m.modelKeys)
	m.modelIndex = 0
	for i, k := range m.modelKeys {
		if k == m.sess.Model {
			m.modelIndex = i
			break
		}
	}
	if len(m.modelKeys) > 0 {
		m.sess.Model = m.modelKeys[m.modelIndex]
	}
}

func (m *model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return noticeExpiredMsg{seq: seq} })
}

func (m *model) updateComponents(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	cmds = append(cmds, cmd)
	m.transcript, cmd = m.transcript.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func shortErr(err error) string {
	s := err.Error()
	if len(s) > 120 {
		s = s[:117] + "..."
	}
	return s
}
