package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/storage"
)

var store storage.Storage
var path string

func TestMain(m *testing.M) {
	var err error
	path, err = os.MkdirTemp("", "filestore")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}

	store, err = New(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
	}

	code := m.Run()
	if err = os.RemoveAll(path); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
	os.Exit(code)
}

func TestNewRejectsFile(t *testing.T) {
	file := filepath.Join(path, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(file)

	if _, err := New(file); !errors.Is(err, storage.ErrNotDir) {
		t.Errorf("expected %s, got %v", storage.ErrNotDir, err)
	}
}

func TestNewCreatesRoot(t *testing.T) {
	root := filepath.Join(path, "nested", "root")
	if _, err := New(root); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		t.Errorf("expected %s to be a directory", root)
	}
}

func TestCreate(t *testing.T) {
	cases := []struct {
		Casename string
		Name     string
		Content  string
		Err      error
	}{
		{"create file", "f1.txt", "hello, world!", nil},
		{"create duplicate file", "f1.txt", "hello, world!", storage.ErrAlreadyExists},
		{"path traversal", "../escape", "nope", storage.ErrInvalidName},
		{"nested path", "a/b", "nope", storage.ErrInvalidName},
		{"empty name", "", "nope", storage.ErrInvalidName},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := store.Create(strings.NewReader(c.Content), c.Name)
			if err != nil {
				if c.Err == nil {
					t.Error("unexpected error:", err)
				} else if !errors.Is(err, c.Err) {
					t.Errorf("unexpected error type.\nexpected: %s\ngot: %s\n", c.Err, err)
				}
				return
			}
			if c.Err != nil {
				t.Fatalf("expected error %s", c.Err)
			}

			content, err := store.Open(c.Name)
			if err != nil {
				t.Fatalf("failed to open file: %s", err)
			}
			if string(content) != c.Content {
				t.Errorf("expected \"%s\", got \"%s\"", c.Content, content)
			}
		})
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".upload-") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := store.Open("missing"); !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("expected %s, got %v", storage.ErrNotExist, err)
	}
}

func TestDelete(t *testing.T) {
	name := "moribundus"
	f, err := os.Create(filepath.Join(path, name))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	f.Close()

	if err = store.Delete(name); err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	err = store.Delete("none")
	if !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, storage.ErrNotExist)
	}
}
