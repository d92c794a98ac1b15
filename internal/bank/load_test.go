package bank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalBankYAML = `
id: %s
name: Minimal Bank
categories:
  - id: cat
    name: Category
questions:
  - id: q1
    category: cat
    type: YES_NO
    text: Is there a policy?
    weight: 5
    correctAnswer: "yes"
tiers:
  - threshold: 50
    label: Good
    class: good
  - threshold: 0
    label: Poor
    class: poor
`

func writeBank(t *testing.T, dir, name, id string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := strings.Replace(minimalBankYAML, "%s", id, 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParse(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		b, err := Parse([]byte(strings.Replace(minimalBankYAML, "%s", "minimal", 1)))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if b.ID != "minimal" {
			t.Errorf("ID = %q, want minimal", b.ID)
		}
		if len(b.Questions) != 1 || b.Questions[0].CorrectAnswer != "yes" {
			t.Errorf("questions not decoded: %+v", b.Questions)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := Parse([]byte("id: [unclosed")); err == nil {
			t.Fatal("Parse() = nil error, want yaml failure")
		}
	})

	t.Run("structurally invalid bank", func(t *testing.T) {
		_, err := Parse([]byte("id: broken\nname: Broken"))
		if err == nil {
			t.Fatal("Parse() = nil error, want validation failure")
		}
	})
}

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	writeBank(t, dir, "alpha.yaml", "alpha")
	writeBank(t, dir, filepath.Join("sub", "beta.yml"), "beta")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	files, err := DiscoverFiles(dir)
	if err != nil {
		t.Fatalf("DiscoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("DiscoverFiles() = %v, want the two bank files", files)
	}
	for _, f := range files {
		if strings.HasSuffix(f, ".txt") {
			t.Errorf("non-bank file discovered: %s", f)
		}
	}
}

func TestLoadDir(t *testing.T) {
	t.Run("loads and indexes banks", func(t *testing.T) {
		dir := t.TempDir()
		writeBank(t, dir, "alpha.yaml", "alpha")
		writeBank(t, dir, "beta.yaml", "beta")

		r, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("LoadDir() error = %v", err)
		}
		if got := r.IDs(); len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
			t.Errorf("IDs() = %v, want [alpha beta]", got)
		}
		if b, ok := r.Get("alpha"); !ok || b.Name != "Minimal Bank" {
			t.Errorf("Get(alpha) = %+v, %v", b, ok)
		}
		if p := r.Path("beta"); !strings.HasSuffix(p, "beta.yaml") {
			t.Errorf("Path(beta) = %q", p)
		}
	})

	t.Run("duplicate bank ids abort the load", func(t *testing.T) {
		dir := t.TempDir()
		writeBank(t, dir, "one.yaml", "same")
		writeBank(t, dir, "two.yaml", "same")

		if _, err := LoadDir(dir); err == nil || !strings.Contains(err.Error(), "duplicate bank id") {
			t.Fatalf("LoadDir() error = %v, want duplicate id failure", err)
		}
	})

	t.Run("invalid bank aborts the load", func(t *testing.T) {
		dir := t.TempDir()
		writeBank(t, dir, "good.yaml", "good")
		if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\nname: Bad"), 0o644); err != nil {
			t.Fatalf("write bad: %v", err)
		}

		if _, err := LoadDir(dir); err == nil {
			t.Fatal("LoadDir() = nil error, want validation failure")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		if _, err := LoadDir(t.TempDir()); err == nil || !strings.Contains(err.Error(), "no bank definitions") {
			t.Fatalf("LoadDir(empty) error = %v, want no-definitions failure", err)
		}
	})
}
