// Package vault abstracts the host application's document store. The core
// only consumes and produces text; all scheduling, locking, and conflict
// handling belong to the host.
package vault

import (
	"context"
	"time"
)

// Kind discriminates the outcome of a List call.
type Kind int

const (
	// KindFolder means the path is a folder and Files holds its documents.
	KindFolder Kind = iota
	// KindNotFound means nothing exists at the path.
	KindNotFound
	// KindNotAFolder means the path exists but is a document.
	KindNotAFolder
)

// File identifies one markdown document in the vault.
type File struct {
	Path    string // vault-relative path, forward slashes
	Name    string // base name including extension
	ModTime time.Time
}

// ListResult is the explicit outcome of listing a folder. Callers branch
// on Kind instead of probing the path type at runtime.
type ListResult struct {
	Kind  Kind
	Files []File
}

// Vault is the storage collaborator consumed from the host environment.
type Vault interface {
	// Read returns the text of the document at path.
	Read(ctx context.Context, path string) (string, error)
	// Write stores text at path, overwriting any existing document.
	Write(ctx context.Context, path string, content string) error
	// Delete removes the document at path. Deleting a missing document
	// is not an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether a document exists at path.
	Exists(ctx context.Context, path string) (bool, error)
	// List returns the markdown documents directly inside folder.
	List(ctx context.Context, folder string) (ListResult, error)
	// FolderExists reports whether folder exists and is a folder.
	FolderExists(ctx context.Context, folder string) (bool, error)
	// CreateFolder creates folder and any missing parents.
	CreateFolder(ctx context.Context, folder string) error
}

// MostRecentlyModified returns the file with the newest ModTime, or false
// when files is empty.
func MostRecentlyModified(files []File) (File, bool) {
	if len(files) == 0 {
		return File{}, false
	}
	latest := files[0]
	for _, f := range files[1:] {
		if f.ModTime.After(latest.ModTime) {
			latest = f
		}
	}
	return latest, true
}
