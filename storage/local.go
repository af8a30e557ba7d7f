package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diwashkafle/mygadgetnepal/models"
)

// DiskStore keeps images on the local filesystem and serves them from
// baseURL + /uploads/. The file name doubles as the storage-native FileID.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Upload(name string, r io.Reader) (Object, error) {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return Object{}, models.ExternalServiceError{Op: "image upload", Err: err}
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitize(name))
	savePath := filepath.Join(s.dir, filename)

	f, err := os.Create(savePath)
	if err != nil {
		return Object{}, models.ExternalServiceError{Op: "image upload", Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(savePath)
		return Object{}, models.ExternalServiceError{Op: "image upload", Err: err}
	}

	return Object{
		URL:    fmt.Sprintf("%s/uploads/%s", s.baseURL, filename),
		FileID: filename,
	}, nil
}

func (s *DiskStore) Delete(fileID string) error {
	// Reject anything that could escape the upload directory.
	if fileID == "" || fileID != filepath.Base(fileID) {
		return models.ExternalServiceError{Op: "image delete", Err: fmt.Errorf("invalid file id %q", fileID)}
	}
	if err := os.Remove(filepath.Join(s.dir, fileID)); err != nil {
		return models.ExternalServiceError{Op: "image delete", Err: err}
	}
	return nil
}

func (s *DiskStore) DeleteByURL(url string) error {
	const marker = "/uploads/"
	idx := strings.LastIndex(url, marker)
	if idx < 0 {
		return models.ExternalServiceError{Op: "image delete", Err: fmt.Errorf("unrecognized image url %q", url)}
	}
	return s.Delete(url[idx+len(marker):])
}

// sanitize strips the path and whitespace from a client-supplied filename.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
