package vault

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "vault"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestCredentials(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			creds := NewCredentials(store)

			if ok, err := creds.Has(); err != nil || ok {
				t.Fatalf("Has on empty vault = %v, %v", ok, err)
			}
			if err := creds.Clear(); err != nil {
				t.Errorf("Clear on empty vault should be a no-op, got %v", err)
			}

			if err := creds.Save("a@example.com", "first-pass"); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if err := creds.Save("b@example.com", "second-pass"); err != nil {
				t.Fatalf("overwriting Save failed: %v", err)
			}

			email, password, ok, err := creds.Load()
			if err != nil || !ok {
				t.Fatalf("Load = %v, %v", ok, err)
			}
			if email != "b@example.com" || password != "second-pass" {
				t.Errorf("Load = %q/%q, want the last saved pair", email, password)
			}

			if err := creds.Clear(); err != nil {
				t.Fatalf("Clear failed: %v", err)
			}
			if _, _, ok, _ := creds.Load(); ok {
				t.Error("expected no credentials after Clear")
			}
		})
	}
}

func TestLoadRequiresBothHalves(t *testing.T) {
	store := NewMemoryStore()
	store.SetItem(KeyEmail, "a@example.com")

	if _, _, ok, _ := NewCredentials(store).Load(); ok {
		t.Error("Load should fail with only an email stored")
	}
}

func TestFileStoreSealsAtRest(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := store.SetItem(KeyPassword, "hunter2-secret"); err != nil {
		t.Fatalf("SetItem failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, KeyPassword+itemSuffix))
	if err != nil {
		t.Fatalf("reading sealed item: %v", err)
	}
	if bytes.Contains(raw, []byte("hunter2-secret")) {
		t.Error("item stored in plaintext")
	}

	info, err := os.Stat(filepath.Join(dir, keyFile))
	if err != nil {
		t.Fatalf("key file missing: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key file mode = %o, want 600", perm)
	}

	// A fresh store over the same directory reads the same key.
	reopened, _ := NewFileStore(dir)
	got, ok, err := reopened.GetItem(KeyPassword)
	if err != nil || !ok || got != "hunter2-secret" {
		t.Errorf("GetItem after reopen = %q, %v, %v", got, ok, err)
	}
}

func TestFileStoreDetectsTampering(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileStore(dir)
	store.SetItem(KeyEmail, "a@example.com")

	path := filepath.Join(dir, KeyEmail+itemSuffix)
	raw, _ := os.ReadFile(path)
	raw[len(raw)-1] ^= 0xff
	os.WriteFile(path, raw, 0o600)

	if _, _, err := store.GetItem(KeyEmail); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	store, _ := NewFileStore(t.TempDir())
	for _, key := range []string{"", "../escape", "a/b", keyFile} {
		if err := store.SetItem(key, "x"); err == nil {
			t.Errorf("SetItem(%q) should fail", key)
		}
	}
}
