package loader

import (
	"strings"
	"testing"
)

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("front matter and body", func(t *testing.T) {
		t.Parallel()

		src := []byte(`---
title: Installation Guide
description: How to install the tool
tags:
  - setup
  - installation
---

# Installing

Run the installer from the releases page.

## Requirements

A supported operating system.
`)
		page, err := parseMarkdown(src)
		if err != nil {
			t.Fatalf("parseMarkdown() error = %v", err)
		}

		if page.Title != "Installation Guide" {
			t.Errorf("Title = %q, want %q", page.Title, "Installation Guide")
		}
		if page.Description != "How to install the tool" {
			t.Errorf("Description = %q, want %q", page.Description, "How to install the tool")
		}
		if len(page.Tags) != 2 || page.Tags[0] != "setup" {
			t.Errorf("Tags = %v, want [setup installation]", page.Tags)
		}
		if !strings.Contains(page.Body, "Run the installer") {
			t.Errorf("Body missing paragraph text: %q", page.Body)
		}
		if !strings.Contains(page.Body, "Requirements") {
			t.Errorf("Body missing heading text: %q", page.Body)
		}
	})

	t.Run("no front matter falls back to headings", func(t *testing.T) {
		t.Parallel()

		src := []byte("# Quick Start\n\nGet going in five minutes.\n")
		page, err := parseMarkdown(src)
		if err != nil {
			t.Fatalf("parseMarkdown() error = %v", err)
		}

		if page.Title != "Quick Start" {
			t.Errorf("Title = %q, want %q", page.Title, "Quick Start")
		}
		if page.Description != "Get going in five minutes." {
			t.Errorf("Description = %q, want first paragraph", page.Description)
		}
	})

	t.Run("front matter title wins over heading", func(t *testing.T) {
		t.Parallel()

		src := []byte("---\ntitle: From Front Matter\n---\n# From Heading\n")
		page, err := parseMarkdown(src)
		if err != nil {
			t.Fatalf("parseMarkdown() error = %v", err)
		}
		if page.Title != "From Front Matter" {
			t.Errorf("Title = %q, want %q", page.Title, "From Front Matter")
		}
	})

	t.Run("invalid front matter yaml", func(t *testing.T) {
		t.Parallel()

		src := []byte("---\ntitle: [unclosed\n---\nbody\n")
		if _, err := parseMarkdown(src); err == nil {
			t.Error("expected error for invalid front matter")
		}
	})

	t.Run("unterminated fence treated as content", func(t *testing.T) {
		t.Parallel()

		src := []byte("---\nnot front matter at all\n")
		page, err := parseMarkdown(src)
		if err != nil {
			t.Fatalf("parseMarkdown() error = %v", err)
		}
		if page.Title != "" {
			t.Errorf("Title = %q, want empty", page.Title)
		}
	})

	t.Run("draft flag", func(t *testing.T) {
		t.Parallel()

		src := []byte("---\ndraft: true\n---\n# WIP\n")
		page, err := parseMarkdown(src)
		if err != nil {
			t.Fatalf("parseMarkdown() error = %v", err)
		}
		if !page.Draft {
			t.Error("Draft should be true")
		}
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()

		page, err := parseMarkdown([]byte(""))
		if err != nil {
			t.Fatalf("parseMarkdown() error = %v", err)
		}
		if page.Title != "" || page.Body != "" {
			t.Errorf("empty source should yield empty page, got %+v", page)
		}
	})
}
