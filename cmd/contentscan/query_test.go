package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// TestNewRelatedCmd tests the related command creation.
func TestNewRelatedCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRelatedCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "related <site-root> <document-id>" {
			t.Errorf("unexpected use %q", cmd.Use)
		}
	})

	t.Run("has flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"max", "json", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("requires exactly two args", func(t *testing.T) {
		t.Parallel()
		if err := cmd.Args(cmd, []string{"./site"}); err == nil {
			t.Error("expected error with one arg")
		}
		if err := cmd.Args(cmd, []string{"./site", "a.md"}); err != nil {
			t.Errorf("unexpected error with two args: %v", err)
		}
	})
}

// TestNewSuggestCmd tests the suggest command creation.
func TestNewSuggestCmd(t *testing.T) {
	t.Parallel()

	cmd := NewSuggestCmd()

	t.Run("has flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"max", "exclude", "json", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})

	t.Run("requires site root and a keyword", func(t *testing.T) {
		t.Parallel()
		if err := cmd.Args(cmd, []string{"./site"}); err == nil {
			t.Error("expected error without keywords")
		}
		if err := cmd.Args(cmd, []string{"./site", "widgets"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestNewSearchCmd tests the search command creation.
func TestNewSearchCmd(t *testing.T) {
	t.Parallel()

	cmd := NewSearchCmd()

	t.Run("has flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"max", "json", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

// TestRunRelatedCmd tests end-to-end related queries against a temp site.
func TestRunRelatedCmd(t *testing.T) {
	t.Run("finds related page", func(t *testing.T) {
		root := writeTestSite(t)

		cmd := NewRelatedCmd()
		cmd.SetArgs([]string{root, "guide.md"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown document is not an error", func(t *testing.T) {
		root := writeTestSite(t)

		cmd := NewRelatedCmd()
		cmd.SetArgs([]string{root, "no-such-page.md"})

		// An unknown ID degrades to an empty result with a logged
		// diagnostic; the command must not fail.
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing site root fails", func(t *testing.T) {
		cmd := NewRelatedCmd()
		cmd.SetArgs([]string{"/nonexistent/site", "guide.md"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for missing site root")
		}
	})
}

// TestRunSuggestCmd tests end-to-end suggestion queries.
func TestRunSuggestCmd(t *testing.T) {
	t.Run("keyword matches", func(t *testing.T) {
		root := writeTestSite(t)

		cmd := NewSuggestCmd()
		cmd.SetArgs([]string{root, "widget", "flange"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("json output", func(t *testing.T) {
		root := writeTestSite(t)

		cmd := NewSuggestCmd()
		cmd.SetArgs([]string{"--json", root, "widget"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// TestRunSearchCmd tests end-to-end full-text search.
func TestRunSearchCmd(t *testing.T) {
	t.Run("phrase match", func(t *testing.T) {
		root := writeTestSite(t)

		cmd := NewSearchCmd()
		cmd.SetArgs([]string{root, "flange wrench"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		root := writeTestSite(t)

		cmd := NewSearchCmd()
		cmd.SetArgs([]string{root, "zeppelin"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// TestNewSiteAnalyzer tests analyzer construction with config resolution.
func TestNewSiteAnalyzer(t *testing.T) {
	t.Run("explicit missing config file fails", func(t *testing.T) {
		cmd := NewRelatedCmd()
		if err := cmd.ParseFlags([]string{"-c", "/nonexistent/config.yaml"}); err != nil {
			t.Fatal(err)
		}

		if _, err := newSiteAnalyzer(cmd, t.TempDir(), quietLogger()); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("indexes sections from site config", func(t *testing.T) {
		root := writeTestSite(t)
		configContent := `sections:
  - id: "#widgets"
    title: Widgets
    body: All about widget assembly and flange maintenance.
    tags: [widgets]
`
		if err := os.WriteFile(filepath.Join(root, ".contentscan"), []byte(configContent), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewRelatedCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatal(err)
		}

		a, err := newSiteAnalyzer(cmd, root, quietLogger())
		if err != nil {
			t.Fatalf("newSiteAnalyzer() error = %v", err)
		}

		index, err := a.Index(context.Background())
		if err != nil {
			t.Fatalf("Index() error = %v", err)
		}
		if !index.Has("#widgets") {
			t.Error("expected section from config file to be indexed")
		}
		if index.Len() != 3 {
			t.Errorf("index size = %d, want 3", index.Len())
		}
	})
}
