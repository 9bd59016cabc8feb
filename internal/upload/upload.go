package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/UzairRan/studymind-cli/internal/api"
	"github.com/UzairRan/studymind-cli/internal/utils"
)

// MaxFileSize is the per-file ceiling enforced before any network call.
const MaxFileSize = 200 << 20 // 200 MiB

var pdfMagic = []byte("%PDF-")

// Document describes one successfully uploaded file as shown to the user.
// Descriptors are never mutated after creation; they only disappear when all
// data is cleared together with the chapter list.
type Document struct {
	Name   string
	Size   string
	Status string
}

// Rejection records a file that failed client-side validation.
type Rejection struct {
	Name   string
	Reason string
}

// Select validates candidate paths and splits them into an upload batch and
// per-file rejections. Order of accepted files follows the input order.
// Rejected files never reach the network.
func Select(paths []string) ([]api.UploadFile, []Rejection) {
	var accepted []api.UploadFile
	var rejected []Rejection
	for _, p := range paths {
		name := filepath.Base(p)
		if err := validate(p); err != nil {
			rejected = append(rejected, Rejection{Name: name, Reason: err.Error()})
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			rejected = append(rejected, Rejection{Name: name, Reason: err.Error()})
			continue
		}
		accepted = append(accepted, api.UploadFile{Name: name, Path: p, Size: info.Size()})
	}
	return accepted, rejected
}

// Describe builds the document descriptors appended to shared state after a
// successful batch upload, one per file in submission order.
func Describe(files []api.UploadFile, status string) []Document {
	docs := make([]Document, len(files))
	for i, f := range files {
		docs[i] = Document{Name: f.Name, Size: utils.FormatFileSize(f.Size), Status: status}
	}
	return docs
}

func validate(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("not a PDF file")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory")
	}
	if info.Size() > MaxFileSize {
		return fmt.Errorf("exceeds 200 MB limit (%s)", utils.FormatFileSize(info.Size()))
	}
	if info.Size() == 0 {
		return fmt.Errorf("file is empty")
	}
	return sniff(path)
}

// sniff checks the PDF magic bytes so mislabeled files are caught before the
// backend wastes a parse on them.
func sniff(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	buf := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return fmt.Errorf("missing PDF header")
		}
		return fmt.Errorf("read header: %w", err)
	}
	if string(buf) != string(pdfMagic) {
		return fmt.Errorf("missing PDF header")
	}
	return nil
}
