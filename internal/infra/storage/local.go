package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// LocalPhotoStore は商品写真をローカルディスクの固定ディレクトリへ保存する。
// 保存名は元ファイル名をサニタイズしたもの。同名は黙って上書きする（重複排除はしない）。
type LocalPhotoStore struct {
	root string
}

func NewLocalPhotoStore(root string) *LocalPhotoStore {
	return &LocalPhotoStore{root: root}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename は元ファイル名からパス要素と危険な文字を落とす。
func SanitizeFilename(name string) string {
	//ブラウザによってはフルパスが来るので両方のベース名を取る
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// Save は写真を書き込んで保存パスを返す。
func (s *LocalPhotoStore) Save(filename string, r io.Reader) (string, error) {
	clean := SanitizeFilename(filename)
	if clean == "" {
		return "", fmt.Errorf("storage: empty filename after sanitize")
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir %s: %w", s.root, err)
	}

	full := filepath.Join(s.root, clean)
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", clean, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", clean, err)
	}

	//DBにはURL風の相対パスで持つ
	return path.Join(filepath.ToSlash(s.root), clean), nil
}
