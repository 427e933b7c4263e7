// Package extract turns uploaded documents into plain text. PDF, DOCX and
// ODT files go through tabula; plain-text formats are read directly. No
// other part of the system looks at file formats.
package extract

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/tsawler/tabula"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNoText reports that a document was read successfully but yielded no
// text. Fatal for the run: there is nothing to chunk.
var ErrNoText = errors.New("no text could be extracted from document")

// FromUpload extracts text from an uploaded file. The filename's extension
// selects the decoder; the content is consumed from r.
func FromUpload(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".md":
		return fromPlainText(r)
	case ".pdf", ".docx", ".odt":
		return fromDocument(ext, r)
	default:
		return "", status.Errorf(codes.InvalidArgument, "unsupported file type %q", ext)
	}
}

func fromPlainText(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", status.Errorf(codes.Internal, "read upload: %v", err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// fromDocument spools the upload to a temp file because tabula reads from
// paths, then extracts.
func fromDocument(ext string, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "faq-upload-*"+ext)
	if err != nil {
		return "", status.Errorf(codes.Internal, "spool upload: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", status.Errorf(codes.Internal, "spool upload: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return "", status.Errorf(codes.Internal, "spool upload: %v", err)
	}

	text, warnings, err := tabula.Open(tmp.Name()).Text()
	if err != nil {
		return "", status.Errorf(codes.Internal, "extract document: %v", err)
	}
	for _, w := range warnings {
		logger.Info("extraction warning", zap.String("message", w.Message))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
