package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShivChilu/chicken-shop/internal/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrNotAnImage = domain.Validation("No file uploaded or file must be an image")

// UploadedFile describes a stored image and where it is served from.
type UploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type UploadService struct {
	dir       string
	urlPrefix string
}

func NewUploadService(dir, urlPrefix string) *UploadService {
	return &UploadService{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// SaveImage stores src under a generated name. The content, not the
// client-declared type, decides whether it is an image.
func (s *UploadService) SaveImage(originalName string, src io.Reader) (*UploadedFile, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 || !strings.HasPrefix(mimetype.Detect(head).String(), "image/") {
		return nil, ErrNotAnImage
	}

	ext := filepath.Ext(filepath.Base(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), src)); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close upload: %w", err)
	}

	return &UploadedFile{Filename: name, URL: s.urlPrefix + "/" + name}, nil
}
