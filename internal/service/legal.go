package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/monjauro/app/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type LegalPage struct {
	Title       string
	Slug        string
	Content     string
	LastUpdated string
}

// LegalService serves the funnel's terms/privacy pages from markdown
// files under <contentDir>/legal.
type LegalService struct {
	contentDir string
	pages      map[string]*LegalPage
}

func NewLegalService(contentDir string) *LegalService {
	return &LegalService{
		contentDir: filepath.Join(contentDir, "legal"),
		pages:      make(map[string]*LegalPage),
	}
}

func (s *LegalService) LoadPages() error {
	files, err := os.ReadDir(s.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read legal directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		page, err := s.loadPage(slug)
		if err != nil {
			return fmt.Errorf("failed to load page %s: %w", slug, err)
		}

		s.pages[slug] = page
	}

	return nil
}

func (s *LegalService) loadPage(slug string) (*LegalPage, error) {
	filePath := filepath.Join(s.contentDir, slug+".md")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	parser := markdown.NewParser()
	html, meta, err := parser.ParseWithFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	lastUpdated := parseUpdatedDate(meta["lastUpdated"])
	if lastUpdated == "" {
		// Fall back to the file's modification time
		info, err := os.Stat(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to get file info: %w", err)
		}
		lastUpdated = info.ModTime().Format("January 2, 2006")
	}

	return &LegalPage{
		Title:       title,
		Slug:        slug,
		Content:     string(html),
		LastUpdated: lastUpdated,
	}, nil
}

// Page reloads content so edits show up without a restart, then returns
// the page for slug.
func (s *LegalService) Page(slug string) (*LegalPage, error) {
	err := s.LoadPages()
	if err != nil {
		return nil, err
	}

	page, ok := s.pages[slug]
	if !ok {
		return nil, fmt.Errorf("page not found: %s", slug)
	}

	return page, nil
}

// parseUpdatedDate normalizes the frontmatter lastUpdated value.
func parseUpdatedDate(value any) string {
	var dateStr string

	switch v := value.(type) {
	case string:
		dateStr = v
	case time.Time:
		return v.Format("January 2, 2006")
	default:
		return ""
	}

	formats := []string{
		"2006-01-02",
		"January 2, 2006",
		time.RFC3339,
	}
	for _, format := range formats {
		t, err := time.Parse(format, dateStr)
		if err == nil {
			return t.Format("January 2, 2006")
		}
	}

	// Return as-is if parsing fails
	return dateStr
}
