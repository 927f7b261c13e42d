package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, ".env.local")
	second := filepath.Join(dir, ".env")
	if err := os.WriteFile(first, []byte("DOTENV_TEST_A=local\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("DOTENV_TEST_A=base\nDOTENV_TEST_B=base\nDOTENV_TEST_C=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_TEST_C", "env")
	t.Cleanup(func() {
		_ = os.Unsetenv("DOTENV_TEST_A")
		_ = os.Unsetenv("DOTENV_TEST_B")
	})

	loaded, err := LoadEnv(first, filepath.Join(dir, "missing.env"), second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 loaded files, got %v", loaded)
	}

	c := New().Prefix("DOTENV_TEST_")
	if got := c.MayString("A", ""); got != "local" {
		t.Fatalf("first file wins, got %q", got)
	}
	if got := c.MayString("B", ""); got != "base" {
		t.Fatalf("B = %q", got)
	}
	if got := c.MayString("C", ""); got != "env" {
		t.Fatalf("process env wins, got %q", got)
	}
}
