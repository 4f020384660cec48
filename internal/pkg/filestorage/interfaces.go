package filestorage

import (
	"mime/multipart"
)

// StoredFile describes a file saved by a FileStorage
type StoredFile struct {
	URL  string // Public URL or relative path the file is served from
	Path string // Location relative to the storage root, used for deletion
	Name string // Original filename
	Size int64  // Size in bytes
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath saves an upload under a subdirectory
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (*StoredFile, error)

	// DeleteFile removes a file by its storage path
	DeleteFile(path string) error
}
