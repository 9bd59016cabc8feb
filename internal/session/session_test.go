package session

import (
	"testing"
	"time"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/upload"
)

func newTestSession() *Session {
	s := New("gemini-1.5-flash")
	s.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestSubmitQuestionRejectsBlankInput(t *testing.T) {
	s := newTestSession()
	for _, input := range []string{"", "   ", "\n\t  \n"} {
		if _, ok := s.SubmitQuestion(input); ok {
			t.Errorf("SubmitQuestion(%q) accepted blank input", input)
		}
	}
	if len(s.Messages) != 0 {
		t.Fatalf("history mutated by blank input: %d messages", len(s.Messages))
	}
}

func TestSuccessfulExchangeAppendsExactlyTwo(t *testing.T) {
	s := newTestSession()
	id, ok := s.SubmitQuestion("What is entropy?")
	if !ok {
		t.Fatal("valid question rejected")
	}
	if len(s.Messages) != 1 {
		t.Fatalf("expected optimistic user append, got %d messages", len(s.Messages))
	}
	if s.Messages[0].Status != StatusPending {
		t.Fatalf("user message should start pending, got %s", s.Messages[0].Status)
	}

	res := &api.QueryResult{
		Answer:    "A measure of disorder.",
		Sources:   []api.Source{{Source: "notes.pdf", Page: 12, Chapter: "Chapter 2"}},
		ModelUsed: "gemini-1.5-pro",
	}
	s.ResolveAnswer(id, res)

	if len(s.Messages) != 2 {
		t.Fatalf("expected exactly 2 messages after exchange, got %d", len(s.Messages))
	}
	user, assistant := s.Messages[0], s.Messages[1]
	if user.Role != RoleUser || user.Content != "What is entropy?" {
		t.Fatalf("user message wrong: %+v", user)
	}
	if user.Status != StatusAnswered {
		t.Fatalf("user message not marked answered: %s", user.Status)
	}
	if assistant.Role != RoleAssistant || assistant.Content != res.Answer {
		t.Fatalf("assistant message wrong: %+v", assistant)
	}
	if assistant.Model != "gemini-1.5-pro" {
		t.Fatalf("assistant model = %q, want gemini-1.5-pro", assistant.Model)
	}
	if len(assistant.Sources) != 1 || assistant.Sources[0].Source != "notes.pdf" {
		t.Fatalf("assistant sources wrong: %+v", assistant.Sources)
	}
}

func TestFailedExchangeKeepsUserMessage(t *testing.T) {
	s := newTestSession()
	id, _ := s.SubmitQuestion("Will this fail?")
	s.FailAnswer(id)

	if len(s.Messages) != 1 {
		t.Fatalf("expected 1 message after failure, got %d", len(s.Messages))
	}
	if s.Messages[0].Status != StatusFailed {
		t.Fatalf("user message not marked failed: %s", s.Messages[0].Status)
	}
}

func TestChapterFilterSentinel(t *testing.T) {
	if got := ChapterFilter(AllChapters); got != nil {
		t.Fatalf("AllChapters should map to nil, got %q", *got)
	}
	if got := ChapterFilter(""); got != nil {
		t.Fatalf("empty selection should map to nil, got %q", *got)
	}
	got := ChapterFilter("Chapter 3")
	if got == nil || *got != "Chapter 3" {
		t.Fatalf("chapter should pass verbatim, got %v", got)
	}
}

func TestClampQuestionCount(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {5, 5}, {10, 10}, {11, 10}, {100, 10},
	}
	for _, c := range cases {
		if got := ClampQuestionCount(c.in); got != c.want {
			t.Errorf("ClampQuestionCount(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestAddDocumentsAppendsAndReplacesChapters(t *testing.T) {
	s := newTestSession()
	s.AddDocuments(
		[]upload.Document{{Name: "a.pdf", Size: "1.00 MB", Status: "processed"}},
		[]string{"Chapter 1"},
	)
	s.AddDocuments(
		[]upload.Document{
			{Name: "b.pdf", Size: "2.00 MB", Status: "processed"},
			{Name: "c.pdf", Size: "3.00 MB", Status: "processed"},
		},
		[]string{"Chapter 1", "Chapter 2"},
	)

	wantNames := []string{"a.pdf", "b.pdf", "c.pdf"}
	if len(s.Documents) != len(wantNames) {
		t.Fatalf("documents = %d, want %d", len(s.Documents), len(wantNames))
	}
	for i, w := range wantNames {
		if s.Documents[i].Name != w {
			t.Errorf("document[%d] = %s, want %s (submission order)", i, s.Documents[i].Name, w)
		}
	}
	if len(s.Chapters) != 2 {
		t.Fatalf("chapters should be replaced wholesale, got %v", s.Chapters)
	}
}

func TestClearDataResetsBothLists(t *testing.T) {
	s := newTestSession()
	s.AddDocuments([]upload.Document{{Name: "a.pdf"}}, []string{"Chapter 1"})
	s.ClearData()
	if len(s.Documents) != 0 || len(s.Chapters) != 0 {
		t.Fatalf("clear must reset both lists: docs=%d chapters=%d", len(s.Documents), len(s.Chapters))
	}
}

func TestQuizReplacedWholesale(t *testing.T) {
	s := newTestSession()
	s.SetQuiz("Chapter 1", &api.QuizResult{Questions: "Q1", ModelUsed: "gemini-1.5-flash"})
	s.SetQuiz("Chapter 2", &api.QuizResult{Questions: "Q2", ModelUsed: "gemini-1.5-pro"})
	if s.Quiz == nil || s.Quiz.Questions != "Q2" || s.Quiz.Chapter != "Chapter 2" {
		t.Fatalf("quiz not replaced: %+v", s.Quiz)
	}
	s.DiscardQuiz()
	if s.Quiz != nil {
		t.Fatal("quiz not discarded")
	}
}

func TestLastAnswer(t *testing.T) {
	s := newTestSession()
	if _, ok := s.LastAnswer(); ok {
		t.Fatal("empty session should have no answer")
	}
	id, _ := s.SubmitQuestion("q")
	s.ResolveAnswer(id, &api.QueryResult{Answer: "first", ModelUsed: "m"})
	id2, _ := s.SubmitQuestion("q2")
	s.ResolveAnswer(id2, &api.QueryResult{Answer: "second", ModelUsed: "m"})
	got, ok := s.LastAnswer()
	if !ok || got != "second" {
		t.Fatalf("LastAnswer = %q, %v; want second", got, ok)
	}
}
