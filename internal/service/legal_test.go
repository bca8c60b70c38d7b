package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeLegalPage(t *testing.T, dir, slug, content string) {
	t.Helper()
	legalDir := filepath.Join(dir, "legal")
	require.NoError(t, os.MkdirAll(legalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(legalDir, slug+".md"), []byte(content), 0644))
}

func TestLegalServiceLoadsFrontmatterAndBody(t *testing.T) {
	dir := t.TempDir()
	writeLegalPage(t, dir, "terms", `---
title: Terms of Service
lastUpdated: 2026-08-01
---

## Usage

Be nice.
`)

	svc := NewLegalService(dir)
	require.NoError(t, svc.LoadPages())

	page, err := svc.Page("terms")
	require.NoError(t, err)
	require.Equal(t, "Terms of Service", page.Title)
	require.Equal(t, "terms", page.Slug)
	require.Equal(t, "August 1, 2026", page.LastUpdated)
	require.Contains(t, page.Content, "<h2")
	require.Contains(t, page.Content, "Be nice.")
}

func TestLegalServiceTitleFallsBackToSlug(t *testing.T) {
	dir := t.TempDir()
	writeLegalPage(t, dir, "privacy-policy", "Just a body, no frontmatter.\n")

	svc := NewLegalService(dir)
	page, err := svc.Page("privacy-policy")
	require.NoError(t, err)
	require.Equal(t, "Privacy Policy", page.Title)
	require.NotEmpty(t, page.LastUpdated)
}

func TestLegalServiceUnknownPage(t *testing.T) {
	svc := NewLegalService(t.TempDir())
	require.NoError(t, svc.LoadPages())

	_, err := svc.Page("cookies")
	require.Error(t, err)
}

func TestLegalServiceMissingDirectoryIsNotAnError(t *testing.T) {
	svc := NewLegalService(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, svc.LoadPages())
}
