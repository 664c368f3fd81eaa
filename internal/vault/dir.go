package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is a Vault backed by a directory on the local filesystem. Vault
// paths are slash-separated and relative to the root.
type Dir struct {
	root string
}

// NewDir creates a Dir rooted at the given directory.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) abs(p string) string {
	return filepath.Join(d.root, filepath.FromSlash(p))
}

func (d *Dir) Read(ctx context.Context, p string) (string, error) {
	data, err := os.ReadFile(d.abs(p))
	if err != nil {
		return "", fmt.Errorf("reading document %s: %w", p, err)
	}
	return string(data), nil
}

func (d *Dir) Write(ctx context.Context, p string, content string) error {
	if err := os.WriteFile(d.abs(p), []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", p, err)
	}
	return nil
}

func (d *Dir) Delete(ctx context.Context, p string) error {
	if err := os.Remove(d.abs(p)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting document %s: %w", p, err)
	}
	return nil
}

func (d *Dir) Exists(ctx context.Context, p string) (bool, error) {
	info, err := os.Stat(d.abs(p))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking document %s: %w", p, err)
	}
	return !info.IsDir(), nil
}

// List returns the markdown documents directly inside folder. Subfolders
// are not descended into.
func (d *Dir) List(ctx context.Context, folder string) (ListResult, error) {
	entries, err := os.ReadDir(d.abs(folder))
	if errors.Is(err, fs.ErrNotExist) {
		return ListResult{Kind: KindNotFound}, nil
	}
	if err != nil {
		// ReadDir fails with ENOTDIR when the path is a file; the exact
		// error is platform-dependent, so classify via stat.
		if info, statErr := os.Stat(d.abs(folder)); statErr == nil && !info.IsDir() {
			return ListResult{Kind: KindNotAFolder}, nil
		}
		return ListResult{}, fmt.Errorf("listing folder %s: %w", folder, err)
	}

	result := ListResult{Kind: KindFolder}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		result.Files = append(result.Files, File{
			Path:    path.Join(folder, entry.Name()),
			Name:    entry.Name(),
			ModTime: info.ModTime(),
		})
	}
	return result, nil
}

func (d *Dir) FolderExists(ctx context.Context, folder string) (bool, error) {
	info, err := os.Stat(d.abs(folder))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking folder %s: %w", folder, err)
	}
	return info.IsDir(), nil
}

func (d *Dir) CreateFolder(ctx context.Context, folder string) error {
	if err := os.MkdirAll(d.abs(folder), 0o755); err != nil {
		return fmt.Errorf("creating folder %s: %w", folder, err)
	}
	return nil
}
