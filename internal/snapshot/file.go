// Package snapshot реализует локальное сохранение снимков состояния дашборда.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mmeshcher/dashboard-system/internal/model"
)

// ErrNoSnapshot возвращается, когда сохранённого снимка нет или он
// записан более новой версией схемы.
var ErrNoSnapshot = errors.New("snapshot not found")

// FileRepository хранит снимок состояния в одном JSON-файле.
// Запись атомарная: сначала во временный файл, затем переименование.
type FileRepository struct {
	path string
}

// NewFileRepository создаёт репозиторий снимков по указанному пути.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load читает сохранённый снимок. Если файла нет либо снимок записан
// более новой схемой, возвращается ErrNoSnapshot: вызывающий стартует
// с состоянием по умолчанию.
func (r *FileRepository) Load() (model.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Snapshot{}, ErrNoSnapshot
		}
		return model.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}

	if snap.SchemaVersion > model.SchemaVersion {
		return model.Snapshot{}, ErrNoSnapshot
	}

	return snap, nil
}

// Save записывает снимок на диск, заменяя предыдущий.
func (r *FileRepository) Save(snap model.Snapshot) error {
	snap.SchemaVersion = model.SchemaVersion

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
