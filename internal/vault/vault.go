// Package vault keeps the email and password used for biometric sign-in
// in secure storage.
package vault

import (
	"fmt"
	"sync"
)

// Keys under which the credential pair is stored.
const (
	KeyEmail    = "userEmail"
	KeyPassword = "userPassword"
)

// Store is a secure key-value store.
type Store interface {
	// GetItem returns the value for key and whether it exists.
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	// DeleteItem removes key. Deleting a missing key is not an error.
	DeleteItem(key string) error
}

// Credentials is the saved email and password pair.
type Credentials struct {
	store Store
}

func NewCredentials(store Store) *Credentials {
	return &Credentials{store: store}
}

// Save stores the pair, replacing any previous one.
func (c *Credentials) Save(email, password string) error {
	if err := c.store.SetItem(KeyEmail, email); err != nil {
		return fmt.Errorf("save email: %w", err)
	}
	if err := c.store.SetItem(KeyPassword, password); err != nil {
		return fmt.Errorf("save password: %w", err)
	}
	return nil
}

// Load returns the saved pair. ok is false unless both halves exist.
func (c *Credentials) Load() (email, password string, ok bool, err error) {
	email, hasEmail, err := c.store.GetItem(KeyEmail)
	if err != nil {
		return "", "", false, fmt.Errorf("load email: %w", err)
	}
	password, hasPassword, err := c.store.GetItem(KeyPassword)
	if err != nil {
		return "", "", false, fmt.Errorf("load password: %w", err)
	}
	if !hasEmail || !hasPassword || email == "" || password == "" {
		return "", "", false, nil
	}
	return email, password, true, nil
}

// Has reports whether a complete pair is saved.
func (c *Credentials) Has() (bool, error) {
	_, _, ok, err := c.Load()
	return ok, err
}

// Clear removes the pair. It is a no-op when nothing is saved.
func (c *Credentials) Clear() error {
	if err := c.store.DeleteItem(KeyEmail); err != nil {
		return fmt.Errorf("clear email: %w", err)
	}
	if err := c.store.DeleteItem(KeyPassword); err != nil {
		return fmt.Errorf("clear password: %w", err)
	}
	return nil
}

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (m *MemoryStore) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryStore) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryStore) DeleteItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
