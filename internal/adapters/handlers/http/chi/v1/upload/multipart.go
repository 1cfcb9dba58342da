package upload

import (
	"errors"
	"fmt"
	"io"
	"med-voice/internal/core/domain"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// audioFieldName is the reserved multipart field carrying the binary payload
const audioFieldName = "audio"

// maxScalarFieldSize bounds non-file form values
const maxScalarFieldSize = 4 << 10

// audioForm is the result of streaming one multipart request: scalar fields
// plus the audio part staged to a local temp file.
type audioForm struct {
	Fields   map[string]string
	TempPath string
	Filename string
	MimeType string
	Size     int64
}

// Remove deletes the staged temp file, if any
func (f *audioForm) Remove() {
	if f.TempPath != "" {
		os.Remove(f.TempPath)
	}
}

// readAudioForm streams the multipart body: scalar fields are collected, the
// audio part is written to a temp file under stagingDir. The file handle is
// closed on every exit path. Field order in the body does not matter.
func readAudioForm(r *http.Request, stagingDir string) (*audioForm, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingAudioPart, err)
	}

	if err := os.MkdirAll(filepath.Join(stagingDir, "uploads"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}

	form := &audioForm{Fields: make(map[string]string)}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			form.Remove()
			return nil, fmt.Errorf("failed to read multipart body: %w", err)
		}

		if part.FormName() == audioFieldName && part.FileName() != "" {
			if stageErr := stageAudioPart(form, part, stagingDir); stageErr != nil {
				part.Close()
				form.Remove()
				return nil, stageErr
			}
			part.Close()
			continue
		}

		value, readErr := io.ReadAll(io.LimitReader(part, maxScalarFieldSize))
		part.Close()
		if readErr != nil {
			form.Remove()
			return nil, fmt.Errorf("failed to read form field %q: %w", part.FormName(), readErr)
		}
		form.Fields[part.FormName()] = string(value)
	}

	if form.TempPath == "" {
		return nil, domain.ErrMissingAudioPart
	}
	return form, nil
}

func stageAudioPart(form *audioForm, part *multipart.Part, stagingDir string) error {
	form.Filename = filepath.Base(part.FileName())
	form.MimeType = part.Header.Get("Content-Type")

	tempPath := filepath.Join(stagingDir, "uploads",
		fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(form.Filename)))

	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create staging file: %w", err)
	}

	size, err := io.Copy(out, part)
	if err != nil {
		out.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write audio to staging: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close staging file: %w", err)
	}

	form.TempPath = tempPath
	form.Size = size
	return nil
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
