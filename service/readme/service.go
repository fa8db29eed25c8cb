// Package readme rewrites relative markdown links to absolute repository URLs
// so the document renders correctly on the distribution channel. The rewrite
// must happen before the dev-version environment variable is set, keeping
// published links free of development version numbers.
package readme

import (
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"
)

// inline links and images: [text](target) / ![alt](target), optional title.
var linkPattern = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]+)((?:\s+"[^"]*")?)\)`)

type service struct {
	repoURL string
	ref     string
	input   string
	output  string
}

// Service rewrites a README for publication.
type Service interface {
	Process() error
	Rewrite(content string) string
	OutputPath() string
}

// NewService creates a new readme processor. An empty output means the input
// file is rewritten in place.
func NewService(repoURL, ref, input, output string) Service {
	if output == "" {
		output = input
	}
	return &service{
		repoURL: strings.TrimSuffix(repoURL, "/"),
		ref:     ref,
		input:   input,
		output:  output,
	}
}

// Process reads the input document, rewrites its links and writes the result
// to the output path.
func (s *service) Process() error {
	data, err := os.ReadFile(s.input)
	if err != nil {
		return fmt.Errorf("failed to read readme %s: %w", s.input, err)
	}
	rewritten := s.Rewrite(string(data))
	if err := os.WriteFile(s.output, []byte(rewritten), 0o644); err != nil {
		return fmt.Errorf("failed to write readme %s: %w", s.output, err)
	}
	return nil
}

// Rewrite returns content with every relative link target replaced by an
// absolute URL. Links that already carry a scheme, mail addresses and pure
// anchors are left untouched. Images point at raw content, everything else at
// the blob view.
func (s *service) Rewrite(content string) string {
	if s.repoURL == "" {
		return content
	}
	return linkPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		bang, text, target, title := parts[1], parts[2], parts[3], parts[4]
		if !isRelative(target) {
			return match
		}
		view := "blob"
		if bang == "!" {
			view = "raw"
		}
		clean := path.Clean(strings.TrimPrefix(target, "./"))
		abs := fmt.Sprintf("%s/%s/%s/%s", s.repoURL, view, s.ref, strings.TrimPrefix(clean, "/"))
		return fmt.Sprintf("%s[%s](%s%s)", bang, text, abs, title)
	})
}

func (s *service) OutputPath() string {
	return s.output
}

func isRelative(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") {
		return false
	}
	if strings.HasPrefix(target, "mailto:") {
		return false
	}
	if strings.Contains(target, "://") {
		return false
	}
	return true
}
