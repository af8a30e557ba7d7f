// Package storage abstracts the object store that holds product and banner
// images. Upload and delete are fallible, best-effort calls with no retry
// policy; callers must not assume exactly-once delivery.
package storage

import "io"

// Object describes a stored image. FileID is the storage-native reference;
// URL is what gets embedded in catalog rows.
type Object struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
}

type ImageStore interface {
	Upload(name string, r io.Reader) (Object, error)
	Delete(fileID string) error
	// DeleteByURL removes an object addressed by its public URL. Catalog
	// rows embed URLs only, so the storage reference has to be derived
	// from the URL shape.
	DeleteByURL(url string) error
}
