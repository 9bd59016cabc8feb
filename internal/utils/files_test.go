package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestQuizFileName(t *testing.T) {
	at := time.Date(2026, 8, 23, 14, 30, 5, 0, time.UTC)
	got := QuizFileName("Chapter 2: Thermodynamics", at)
	want := "quiz_Chapter_2__Thermodynamics_2026-08-23_143005.txt"
	if got != want {
		t.Fatalf("QuizFileName = %q, want %q", got, want)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Chapter 1", "Chapter_1"},
		{`a/b\c:d`, "a_b_c_d"},
		{"   ", "untitled"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := SanitizeName(c.in); got != c.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSafeWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := SafeWriteFile(path, []byte("hello")); err != nil {
		t.Fatalf("SafeWriteFile: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "hello" {
		t.Fatalf("read back: %q, %v", b, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
}
