package vault

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keyFile    = ".key"
	itemSuffix = ".sealed"
	nonceSize  = 24
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ErrCorrupt is returned when a sealed item cannot be opened.
var ErrCorrupt = errors.New("vault item is corrupt or was sealed with another key")

// FileStore keeps each item in its own file under dir, sealed with
// NaCl secretbox. The 32-byte key lives in dir/.key with mode 0600 and is
// created on first use.
type FileStore struct {
	dir string

	mu  sync.Mutex
	key *[32]byte
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create vault dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) GetItem(key string) (string, bool, error) {
	path, err := f.itemPath(key)
	if err != nil {
		return "", false, err
	}
	sealed, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}

	secret, err := f.secret()
	if err != nil {
		return "", false, err
	}
	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", false, ErrCorrupt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, secret)
	if !ok {
		return "", false, ErrCorrupt
	}
	return string(plain), true, nil
}

func (f *FileStore) SetItem(key, value string) error {
	path, err := f.itemPath(key)
	if err != nil {
		return err
	}
	secret, err := f.secret()
	if err != nil {
		return err
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(value), &nonce, secret)
	return writeFileAtomic(path, sealed)
}

func (f *FileStore) DeleteItem(key string) error {
	path, err := f.itemPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) itemPath(key string) (string, error) {
	if !validKey.MatchString(key) || key == keyFile {
		return "", fmt.Errorf("invalid vault key %q", key)
	}
	return filepath.Join(f.dir, key+itemSuffix), nil
}

// secret loads or creates the sealing key.
func (f *FileStore) secret() (*[32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.key != nil {
		return f.key, nil
	}

	path := filepath.Join(f.dir, keyFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(data) != 32 {
			return nil, fmt.Errorf("vault key %s has %d bytes, want 32", path, len(data))
		}
	case errors.Is(err, fs.ErrNotExist):
		data = make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, data); err != nil {
			return nil, fmt.Errorf("generate vault key: %w", err)
		}
		if err := writeFileAtomic(path, data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read vault key: %w", err)
	}

	f.key = new([32]byte)
	copy(f.key[:], data)
	return f.key, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
