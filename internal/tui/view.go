package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/UzairRan/studymind-cli/internal/session"
)

const sidebarWidth = 30

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62"))

	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(sidebarWidth)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	userStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	answerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	noticeStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("10"))
)

func (m *model) View() string {
	if m.width == 0 {
		return "loading…"
	}
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	main := m.renderMain()
	if m.sidebarVisible {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main))
	} else {
		b.WriteString(main)
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *model) renderTabs() string {
	labels := []string{"1 Upload", "2 Chat", "3 Quiz"}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(l)
		} else {
			parts[i] = tabStyle.Render(l)
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return header + "  " + faintStyle.Render("StudyMind · "+m.cfg.BackendURL)
}

func (m *model) renderMain() string {
	switch m.tab {
	case tabUpload:
		return m.renderUpload()
	case tabChat:
		return m.renderChat()
	case tabQuiz:
		return m.renderQuiz()
	}
	return ""
}

func (m *model) mainWidth() int {
	w := m.width - 4
	if m.sidebarVisible {
		w -= sidebarWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m *model) mainHeight() int {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	return h
}

func (m *model) resize() {
	w := m.mainWidth() - 2
	m.pathInput.Width = w - 4
	m.composer.SetWidth(w)
	m.transcript.Width = w
	m.transcript.Height = m.mainHeight() - m.composer.Height() - 3
	if m.transcript.Height < 3 {
		m.transcript.Height = 3
	}
	m.transcriptDirty = true
}

func (m *model) renderUpload() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload PDF study notes"))
	b.WriteString("\n\n")
	b.WriteString("Type a path and press enter to stage it. PDF only, 200 MB per file.\n\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")

	if len(m.staged) > 0 {
		b.WriteString("Staged:\n")
		for _, f := range m.staged {
			b.WriteString(fmt.Sprintf("  • %s\n", f.Name))
		}
	}
	for _, r := range m.rejected {
		b.WriteString(errorStyle.Render(fmt.Sprintf("  ✗ %s: %s", r.Name, r.Reason)) + "\n")
	}
	if st := m.ops[opUpload]; st.phase == phasePending {
		b.WriteString("\n" + m.spin.View() + st.note + "\n")
	}
	if len(m.sess.Documents) > 0 {
		b.WriteString("\nUploaded documents:\n")
		for _, d := range m.sess.Documents {
			b.WriteString(fmt.Sprintf("  ✓ %s (%s) — %s\n", d.Name, d.Size, d.Status))
		}
	}
	b.WriteString("\n" + faintStyle.Render("enter stage · ctrl+u upload batch · ctrl+d discard staged"))
	return panelStyle.Width(m.mainWidth()).Height(m.mainHeight()).Render(b.String())
}

func (m *model) renderChat() string {
	if m.transcriptDirty {
		m.transcript.SetContent(m.renderTranscript())
		m.transcript.GotoBottom()
		m.transcriptDirty = false
	}
	head := fmt.Sprintf("Filter: %s", selectedStyle.Render(m.chapterLabel()))
	if st := m.ops[opQuery]; st.phase == phasePending {
		head += "   " + m.spin.View() + st.note
	}
	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(m.transcript.View())
	b.WriteString("\n")
	b.WriteString(m.composer.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter send · alt+enter newline · ctrl+←/→ filter · ctrl+y copy answer"))
	return panelStyle.Width(m.mainWidth()).Height(m.mainHeight()).Render(b.String())
}

func (m *model) renderTranscript() string {
	if len(m.sess.Messages) == 0 {
		return faintStyle.Render("No messages yet. Ask something about your uploaded notes.")
	}
	w := m.transcript.Width - 2
	if w < 20 {
		w = 20
	}
	var b strings.Builder
	for _, msg := range m.sess.Messages {
		switch msg.Role {
		case session.RoleUser:
			label := userStyle.Render("You:")
			switch msg.Status {
			case session.StatusPending:
				label += faintStyle.Render(" (waiting…)")
			case session.StatusFailed:
				label += errorStyle.Render(" (failed)")
			}
			b.WriteString(label + "\n")
			b.WriteString(wordwrap.String(msg.Content, w) + "\n\n")
		case session.RoleAssistant:
			b.WriteString(answerStyle.Render("StudyMind:") + faintStyle.Render(" ["+msg.Model+"]") + "\n")
			b.WriteString(wordwrap.String(msg.Content, w) + "\n")
			if len(msg.Sources) > 0 {
				for _, s := range msg.Sources {
					line := fmt.Sprintf("  ↳ %s, page %d", s.Source, s.Page)
					if s.Chapter != "" {
						line += " (" + s.Chapter + ")"
					}
					b.WriteString(faintStyle.Render(line) + "\n")
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *model) renderQuiz() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz generator"))
	b.WriteString("\n\n")

	chapter := m.quizChapter()
	if chapter == "" {
		b.WriteString(faintStyle.Render("No chapters available — upload documents first.") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("Chapter: %s  (←/→ to change)\n", selectedStyle.Render(chapter)))
	}
	b.WriteString(fmt.Sprintf("Questions: %s  (+/- to change, 1-10)\n\n", selectedStyle.Render(fmt.Sprintf("%d", m.quizCount))))

	if st := m.ops[opQuiz]; st.phase == phasePending {
		b.WriteString(m.spin.View() + st.note + "\n")
	}
	if q := m.sess.Quiz; q != nil {
		w := m.mainWidth() - 4
		b.WriteString(faintStyle.Render(fmt.Sprintf("Generated for %q by %s", q.Chapter, q.Model)) + "\n\n")
		b.WriteString(wordwrap.String(q.Questions, w))
		b.WriteString("\n")
	}
	b.WriteString("\n" + faintStyle.Render("g generate · s save to file · n new quiz"))
	return panelStyle.Width(m.mainWidth()).Height(m.mainHeight()).Render(b.String())
}

func (m *model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("StudyMind") + "\n\n")
	b.WriteString(fmt.Sprintf("Documents: %d\n", len(m.sess.Documents)))
	b.WriteString(fmt.Sprintf("Chapters:  %d\n\n", len(m.sess.Chapters)))

	b.WriteString(titleStyle.Render("Model") + "\n")
	if len(m.modelKeys) == 0 {
		if m.ops[opCatalog].phase == phaseFailed {
			b.WriteString(errorStyle.Render("catalog unavailable") + "\n")
		} else {
			b.WriteString(faintStyle.Render("loading…") + "\n")
		}
	}
	for i, k := range m.modelKeys {
		line := k
		if info, ok := m.models[k]; ok && info.Name != "" {
			line = info.Name
		}
		if i == m.modelIndex {
			b.WriteString(selectedStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n" + faintStyle.Render("ctrl+p model · ctrl+b hide\nctrl+x clear all data"))
	return sidebarStyle.Height(m.mainHeight()).Render(b.String())
}

func (m *model) renderFooter() string {
	if m.confirmClear {
		return errorStyle.Render("Clear ALL uploaded data? Press y to confirm, any other key to cancel.")
	}
	if m.notice != "" {
		return noticeStyle.Render(m.notice)
	}
	ordered := []struct {
		op    operation
		label string
	}{{opUpload, "upload"}, {opQuery, "query"}, {opQuiz, "quiz"}, {opClear, "clear"}}
	var parts []string
	for _, o := range ordered {
		if st := m.ops[o.op]; st.phase == phasePending {
			parts = append(parts, m.spin.View()+o.label+": "+st.note)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "  ·  ")
	}
	return faintStyle.Render("tab switch panel · ctrl+c quit")
}
