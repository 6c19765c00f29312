package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, DefaultConfigFile)
		content := `baseURL: /docs
sections:
  - id: "#features"
    title: Features
    description: What the product does
    tags: [overview]
  - id: "#pricing"
    title: Pricing
    url: /pricing
pages:
  guides/install.md:
    tags: [setup, installation]
    title: Installation Guide
  drafts/wip.md:
    skip: true
ignorePatterns:
  - "vendor/*"
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}

		if len(f.Sections) != 2 {
			t.Fatalf("Sections length = %d, want 2", len(f.Sections))
		}
		if f.Sections[0].ID != "#features" {
			t.Errorf("first section ID = %q, want %q", f.Sections[0].ID, "#features")
		}
		if f.Sections[1].URL != "/pricing" {
			t.Errorf("second section URL = %q, want %q", f.Sections[1].URL, "/pricing")
		}
		if f.BaseURL != "/docs" {
			t.Errorf("BaseURL = %q, want %q", f.BaseURL, "/docs")
		}

		override, ok := f.PageOverrideFor("guides/install.md")
		if !ok {
			t.Fatal("expected override for guides/install.md")
		}
		if override.Title != "Installation Guide" {
			t.Errorf("override title = %q, want %q", override.Title, "Installation Guide")
		}
		if len(override.Tags) != 2 {
			t.Errorf("override tags length = %d, want 2", len(override.Tags))
		}

		skip, ok := f.PageOverrideFor("drafts/wip.md")
		if !ok || !skip.Skip {
			t.Error("expected skip override for drafts/wip.md")
		}

		if len(f.IgnorePatterns) != 1 {
			t.Errorf("IgnorePatterns length = %d, want 1", len(f.IgnorePatterns))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("sections: [unclosed"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("empty file gets non-nil pages map", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatal(err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if f.Pages == nil {
			t.Error("Pages map should be initialized")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yml")
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile(path, ""); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit path missing returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile("/nonexistent/path.yml", ""); got != "" {
			t.Errorf("FindConfigFile() = %q, want empty", got)
		}
	})

	t.Run("found in site root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		path := filepath.Join(root, DefaultConfigFile)
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindConfigFile("", root); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})
}

func TestPageOverrideFor(t *testing.T) {
	t.Parallel()

	t.Run("nil file", func(t *testing.T) {
		t.Parallel()

		var f *File
		if _, ok := f.PageOverrideFor("any.md"); ok {
			t.Error("nil file should report no override")
		}
	})

	t.Run("unknown path", func(t *testing.T) {
		t.Parallel()

		f := &File{Pages: map[string]PageOverride{"a.md": {}}}
		if _, ok := f.PageOverrideFor("b.md"); ok {
			t.Error("unknown path should report no override")
		}
	})
}
