package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type osFileSource struct {
	root string
}

// NewFileSource returns a [FileSource] reading from the local file system.
// With root set, paths are confined to it: they must be relative and must
// not climb out through "..".
func NewFileSource(root string) FileSource {
	return &osFileSource{root: strings.TrimSpace(root)}
}

// ReadBytes implements [FileSource]. A missing file maps to
// [ErrFileNotFound].
func (s *osFileSource) ReadBytes(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFileNotFound)
	}
	if s.root != "" {
		if !filepath.IsLocal(path) {
			return nil, fmt.Errorf("%w: %s", ErrPathOutsideRoot, path)
		}
		path = filepath.Join(s.root, path)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// DetectMimeType guesses the content type of an attachment from its
// extension, falling back to content sniffing.
func DetectMimeType(name string, data []byte) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}
