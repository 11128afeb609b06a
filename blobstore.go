// In-memory blob handles for image bytes that entered the current session
// (generated images, pasted files). A blob: reference is only meaningful
// while the session that minted it is alive.
package main

import "github.com/google/uuid"

const blobScheme = "blob:"

type blobEntry struct {
	data        []byte
	contentType string
}

// BlobStore maps temporary blob: handles to raw bytes. Like the token
// registry it is owned by one editing session and never shared.
type BlobStore struct {
	entries map[string]blobEntry
}

func NewBlobStore() *BlobStore {
	return &BlobStore{entries: make(map[string]blobEntry)}
}

// Put stores bytes and returns a fresh blob: handle for them.
func (s *BlobStore) Put(data []byte, contentType string) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ref := blobScheme + "coursepack/" + uuid.NewString()
	s.entries[ref] = blobEntry{data: data, contentType: contentType}
	return ref
}

// Get resolves a blob: handle. ok is false for unknown or expired handles.
func (s *BlobStore) Get(ref string) (data []byte, contentType string, ok bool) {
	if s == nil {
		return nil, "", false
	}
	e, ok := s.entries[ref]
	return e.data, e.contentType, ok
}
