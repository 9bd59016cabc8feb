package tui

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/UzairRan/studymind-cli/internal/utils"
)

const historyLimit = 200

// inputHistory keeps previously submitted questions for up/down recall in the
// composer, persisted under ~/.studymind/history.
type inputHistory struct {
	entries []string
	index   int
	path    string
}

func loadInputHistory() *inputHistory {
	h := &inputHistory{}
	home, err := os.UserHomeDir()
	if err != nil {
		return h
	}
	dir := filepath.Join(home, ".studymind")
	_ = os.MkdirAll(dir, 0o755)
	h.path = filepath.Join(dir, "history")

	f, err := os.Open(h.path)
	if err != nil {
		return h
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.index = len(h.entries)
	return h
}

func (h *inputHistory) add(entry string) {
	// Entries are stored one per line, so multi-line questions are flattened.
	entry = strings.Join(strings.Fields(entry), " ")
	if entry == "" {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > historyLimit {
		h.entries = h.entries[len(h.entries)-historyLimit:]
	}
	h.index = len(h.entries)
}

func (h *inputHistory) prev() (string, bool) {
	if h.index == 0 || len(h.entries) == 0 {
		return "", false
	}
	h.index--
	return h.entries[h.index], true
}

func (h *inputHistory) next() (string, bool) {
	if h.index >= len(h.entries) {
		return "", false
	}
	h.index++
	if h.index == len(h.entries) {
		return "", false
	}
	return h.entries[h.index], true
}

func (h *inputHistory) browsing() bool {
	return h.index < len(h.entries)
}

func (h *inputHistory) save() {
	if h.path == "" || len(h.entries) == 0 {
		return
	}
	_ = utils.SafeWriteFile(h.path, []byte(strings.Join(h.entries, "\n")+"\n"))
}
