package shell

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// FindByPattern walks each path recursively (the roots themselves
// included) and returns every contained path whose full path matches at
// least one pattern. Patterns are compiled case-insensitively; an
// invalid pattern is reported as a warning and skipped. No input paths
// yields an empty result, not an error.
func (s *Shell) FindByPattern(paths []string, patterns []string) []string {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			s.console.Warn(fmt.Sprintf("Skipping invalid pattern %q: %v", p, err))
			continue
		}
		compiled = append(compiled, re)
	}
	return s.FindByRegexp(paths, compiled)
}

// FindByRegexp is FindByPattern for pre-compiled expressions, which
// pass through unchanged.
func (s *Shell) FindByRegexp(paths []string, patterns []*regexp.Regexp) []string {
	found := make([]string, 0)
	for _, root := range paths {
		// Unreadable or missing entries are skipped, not fatal.
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			for _, re := range patterns {
				if re.MatchString(path) {
					found = append(found, path)
					break
				}
			}
			return nil
		})
	}
	return found
}

// FindByExtension returns every path under paths whose name ends in one
// of the extensions, matched case-insensitively. A leading dot on an
// extension is optional.
func (s *Shell) FindByExtension(paths []string, extensions []string) []string {
	patterns := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(ext, ".")
		patterns = append(patterns, `\.`+regexp.QuoteMeta(ext)+`$`)
	}
	return s.FindByPattern(paths, patterns)
}
