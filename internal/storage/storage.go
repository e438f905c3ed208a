package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrUnexpectedField = errors.New("unexpected upload field")
	ErrInvalidFileType = errors.New("invalid file type for this field")
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
)

const MaxFileSize = 5 * 1024 * 1024

// Field allow-lists: images for logos and avatars, PDF only for CVs.
var (
	imageFields = map[string]bool{"company_logo": true, "logo": true, "profile_image": true}
	pdfFields   = map[string]bool{"cv": true}

	allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp"}

	fieldNamePattern = regexp.MustCompile(`[^\w-]+`)
)

// Store persists uploaded files on local disk under generated unique names.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save validates the upload against the field's allow-list by sniffing the
// actual content, then writes it under a generated filename and returns that
// filename as the reference to store.
func (s *Store) Save(field string, fh *multipart.FileHeader) (string, error) {
	if !imageFields[field] && !pdfFields[field] {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedField, field)
	}
	if fh.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)
	if err := checkFieldType(field, mtype); err != nil {
		return "", err
	}

	base := fieldNamePattern.ReplaceAllString(field, "")
	name := fmt.Sprintf("%s-%s%s", base, uuid.New().String(), mtype.Extension())
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to persist upload: %w", err)
	}
	return name, nil
}

func checkFieldType(field string, mtype *mimetype.MIME) error {
	if pdfFields[field] {
		if mtype.Is("application/pdf") {
			return nil
		}
		return ErrInvalidFileType
	}
	for _, allowed := range allowedImageTypes {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return ErrInvalidFileType
}

// StripCVPrefix removes a legacy "cv/" path prefix from stored CV references
// so clients always see a bare filename.
func StripCVPrefix(link *string) *string {
	if link == nil {
		return nil
	}
	trimmed := strings.TrimPrefix(*link, "cv/")
	return &trimmed
}
