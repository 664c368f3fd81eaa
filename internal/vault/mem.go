package vault

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// Mem is an in-memory Vault for tests. Write order determines ModTime
// unless SetModTime overrides it.
type Mem struct {
	mu      sync.Mutex
	docs    map[string]string
	mtimes  map[string]time.Time
	folders map[string]bool
	clock   time.Time
}

// NewMem creates an empty in-memory vault.
func NewMem() *Mem {
	return &Mem{
		docs:    make(map[string]string),
		mtimes:  make(map[string]time.Time),
		folders: make(map[string]bool),
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *Mem) Read(ctx context.Context, p string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.docs[p]
	if !ok {
		return "", fmt.Errorf("reading document %s: not found", p)
	}
	return content, nil
}

func (m *Mem) Write(ctx context.Context, p string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[p] = content
	m.clock = m.clock.Add(time.Minute)
	m.mtimes[p] = m.clock
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.folders[dir] = true
	}
	return nil
}

func (m *Mem) Delete(ctx context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, p)
	delete(m.mtimes, p)
	return nil
}

func (m *Mem) Exists(ctx context.Context, p string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[p]
	return ok, nil
}

func (m *Mem) List(ctx context.Context, folder string) (ListResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, isDoc := m.docs[folder]; isDoc {
		return ListResult{Kind: KindNotAFolder}, nil
	}
	if !m.folders[folder] {
		return ListResult{Kind: KindNotFound}, nil
	}
	result := ListResult{Kind: KindFolder}
	for p := range m.docs {
		if path.Dir(p) != folder || !strings.HasSuffix(p, ".md") {
			continue
		}
		result.Files = append(result.Files, File{
			Path:    p,
			Name:    path.Base(p),
			ModTime: m.mtimes[p],
		})
	}
	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Name < result.Files[j].Name
	})
	return result, nil
}

func (m *Mem) FolderExists(ctx context.Context, folder string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.folders[folder], nil
}

func (m *Mem) CreateFolder(ctx context.Context, folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for dir := folder; dir != "." && dir != "/" && dir != ""; dir = path.Dir(dir) {
		m.folders[dir] = true
	}
	return nil
}

// SetModTime overrides a document's modification time.
func (m *Mem) SetModTime(p string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mtimes[p] = t
}
