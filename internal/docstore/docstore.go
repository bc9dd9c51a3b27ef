package docstore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store кладет загруженные документы в bucket-каталог под случайными именами
// и отдает публичные URL. Оригинальное имя файла сохраняется только
// в строке заказа.
type Store struct {
	root    string
	baseURL string
}

func New(root, baseURL string) (*Store, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create documents root: %w", err)
	}
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save записывает содержимое документа под рандомизированным именем,
// расширение берется из оригинального. Возвращает публичный URL.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	fullPath := filepath.Join(s.root, objectName)

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create document %s: %w", objectName, err)
	}

	_, err = io.Copy(f, r)
	closeErr := f.Close()
	if err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("write document %s: %w", objectName, err)
	}
	if closeErr != nil {
		return "", fmt.Errorf("close document %s: %w", objectName, closeErr)
	}

	return s.publicURL(objectName), nil
}

func (s *Store) publicURL(objectName string) string {
	return s.baseURL + path.Join("/", url.PathEscape(objectName))
}

// Handler-у статики нужен корень хранилища.
func (s *Store) Root() string {
	return s.root
}
