package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/upload"
)

// AllChapters is the sentinel shown in chapter pickers. Selecting it means
// the question is unscoped: the chapter filter sent to the backend is nil.
const AllChapters = "All Chapters"

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Status tracks the lifecycle of a user message. A message starts pending
// when submitted optimistically and becomes answered or failed once its
// exchange resolves, so a failed question stays visibly distinct.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAnswered Status = "answered"
	StatusFailed   Status = "failed"
)

// Message is one entry of the append-only chat history. Assistant messages
// carry the answer's source citations and the responding model.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Sources   []api.Source
	Model     string
	CreatedAt time.Time
	Status    Status
}

// Quiz is the most recent generation result. At most one is held at a time.
type Quiz struct {
	Chapter     string
	Questions   string
	Model       string
	GeneratedAt time.Time
}

// Session owns all transient client-side state: uploaded document
// descriptors, detected chapters, the selected model, the chat history, and
// the current quiz. Everything lives in memory for the page-session
// equivalent of one program run.
type Session struct {
	Documents []upload.Document
	Chapters  []string
	Model     string
	Messages  []Message
	Quiz      *Quiz

	now func() time.Time
}

// New returns an empty session with the given default model selection.
func New(model string) *Session {
	return &Session{Model: model, now: time.Now}
}

// AddDocuments appends one descriptor per uploaded file, in submission order,
// and replaces the chapter list wholesale with the server-reported set.
func (s *Session) AddDocuments(docs []upload.Document, chapters []string) {
	s.Documents = append(s.Documents, docs...)
	s.Chapters = chapters
}

// ClearData resets documents and chapters together. Chapter labels must not
// outlive the documents that produced them.
func (s *Session) ClearData() {
	s.Documents = nil
	s.Chapters = nil
}

// SubmitQuestion appends a pending user message and returns its ID. Empty or
// whitespace-only input is rejected without mutating history; callers must
// not issue a network call when ok is false.
func (s *Session) SubmitQuestion(content string) (id string, ok bool) {
	if strings.TrimSpace(content) == "" {
		return "", false
	}
	id = uuid.NewString()
	s.Messages = append(s.Messages, Message{
		ID:        id,
		Role:      RoleUser,
		Content:   content,
		CreatedAt: s.now(),
		Status:    StatusPending,
	})
	return id, true
}

// ResolveAnswer marks the user message answered and appends the assistant
// reply, completing the two-append exchange.
func (s *Session) ResolveAnswer(userID string, res *api.QueryResult) {
	s.setStatus(userID, StatusAnswered)
	s.Messages = append(s.Messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   res.Answer,
		Sources:   res.Sources,
		Model:     res.ModelUsed,
		CreatedAt: s.now(),
		Status:    StatusAnswered,
	})
}

// FailAnswer marks the user message failed. The message stays in history;
// there is no rollback.
func (s *Session) FailAnswer(userID string) {
	s.setStatus(userID, StatusFailed)
}

func (s *Session) setStatus(id string, st Status) {
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages[i].Status = st
			return
		}
	}
}

// LastAnswer returns the most recent assistant message content, if any.
func (s *Session) LastAnswer() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// SetQuiz replaces the held quiz wholesale.
func (s *Session) SetQuiz(chapter string, res *api.QuizResult) {
	s.Quiz = &Quiz{
		Chapter:     chapter,
		Questions:   res.Questions,
		Model:       res.ModelUsed,
		GeneratedAt: s.now(),
	}
}

// DiscardQuiz drops the current quiz without refetching.
func (s *Session) DiscardQuiz() {
	s.Quiz = nil
}

// ChapterFilter maps the picker selection to the wire value: the AllChapters
// sentinel (or empty selection) becomes nil, anything else is sent verbatim.
func ChapterFilter(selected string) *string {
	if selected == "" || selected == AllChapters {
		return nil
	}
	return &selected
}

// ClampQuestionCount bounds a quiz question count to the inclusive [1,10]
// range enforced by the input control.
func ClampQuestionCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}
