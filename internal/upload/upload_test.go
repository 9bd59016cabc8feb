package upload

import (
	"os"
	"path/filepath"
	"testing"
)

func writePDF(t *testing.T, dir, name string, body []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestSelectAcceptsValidPDFsInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writePDF(t, dir, "a.pdf", []byte("%PDF-1.4 first"))
	b := writePDF(t, dir, "b.pdf", []byte("%PDF-1.7 second"))

	files, rejected := Select([]string{a, b})
	if len(rejected) != 0 {
		t.Fatalf("unexpected rejections: %+v", rejected)
	}
	if len(files) != 2 || files[0].Name != "a.pdf" || files[1].Name != "b.pdf" {
		t.Fatalf("submission order not preserved: %+v", files)
	}
}

func TestSelectRejectsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	notPDF := writePDF(t, dir, "notes.txt", []byte("plain text"))
	fakePDF := writePDF(t, dir, "fake.pdf", []byte("not a pdf at all"))
	empty := writePDF(t, dir, "empty.pdf", nil)
	missing := filepath.Join(dir, "gone.pdf")
	valid := writePDF(t, dir, "real.pdf", []byte("%PDF-1.5 ok"))

	files, rejected := Select([]string{notPDF, fakePDF, empty, missing, valid})
	if len(files) != 1 || files[0].Name != "real.pdf" {
		t.Fatalf("expected only real.pdf accepted, got %+v", files)
	}
	if len(rejected) != 4 {
		t.Fatalf("expected 4 rejections, got %+v", rejected)
	}
	for _, r := range rejected {
		if r.Reason == "" {
			t.Errorf("rejection for %s has no reason", r.Name)
		}
	}
}

func TestSelectRejectsTruncatedHeaderCleanly(t *testing.T) {
	dir := t.TempDir()
	short := writePDF(t, dir, "short.pdf", []byte("%PD"))
	exact := writePDF(t, dir, "exact.pdf", []byte("%PDF-"))

	files, rejected := Select([]string{short, exact})
	if len(files) != 1 || files[0].Name != "exact.pdf" {
		t.Fatalf("a file holding exactly the magic bytes should pass: %+v", files)
	}
	if len(rejected) != 1 || rejected[0].Name != "short.pdf" {
		t.Fatalf("expected short.pdf rejected, got %+v", rejected)
	}
	if rejected[0].Reason != "missing PDF header" {
		t.Fatalf("reason = %q, want missing PDF header", rejected[0].Reason)
	}
}

func TestDescribeFormatsSizes(t *testing.T) {
	dir := t.TempDir()
	body := make([]byte, 1048576)
	copy(body, []byte("%PDF-1.4"))
	path := writePDF(t, dir, "notes.pdf", body)

	files, rejected := Select([]string{path})
	if len(rejected) != 0 || len(files) != 1 {
		t.Fatalf("select: files=%+v rejected=%+v", files, rejected)
	}
	docs := Describe(files, "processed")
	if len(docs) != 1 {
		t.Fatalf("expected 1 descriptor, got %d", len(docs))
	}
	d := docs[0]
	if d.Name != "notes.pdf" || d.Size != "1.00 MB" || d.Status != "processed" {
		t.Fatalf("descriptor = %+v, want {notes.pdf 1.00 MB processed}", d)
	}
}
