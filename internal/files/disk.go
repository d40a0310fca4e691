package files

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fuelops/dispensing-service/internal/util"
)

// DiskStore хранит вложения в каталоге на диске под сгенерированными
// именами; владеет файлами единолично
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore { return &DiskStore{root: root} }

// Save записывает данные под новым uuid-именем с исходным расширением.
// Запись идёт во временный файл с последующим rename: под итоговым именем
// либо появляется целый файл, либо ничего.
func (s *DiskStore) Save(data []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.New().String() + util.SafeExt(originalName)

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write attachment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close attachment: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.root, name)); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("publish attachment: %w", err)
	}
	return name, nil
}

// Delete удаляет файл по ссылке best-effort: используется только как
// компенсация, поэтому ошибки не возвращаются, чтобы не затирать исходную
func (s *DiskStore) Delete(ref string) {
	if ref == "" {
		return
	}
	err := os.Remove(filepath.Join(s.root, filepath.Base(ref)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("files: delete %s: %v", ref, err)
	}
}

// Path возвращает абсолютный путь файла по его ссылке
func (s *DiskStore) Path(ref string) string {
	return filepath.Join(s.root, filepath.Base(ref))
}
