package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ontologyExtensions are the file extensions a directory is scanned for.
var ontologyExtensions = []string{".nt", ".nq"}

// ResolvePaths expands patterns to ontology files.
// Supports both single-level wildcards (*) and recursive wildcards (**).
//
// Examples:
//   - "./ontologies/*.nt" → every .nt file in ./ontologies
//   - "./ontologies/**/*.nq" → every .nq file below ./ontologies
//   - "./ontologies" → every .nt and .nq file below ./ontologies
//   - "./pizza.nt" → ["<abs>/pizza.nt"]
//
// Returns absolute paths of regular files, each once, in pattern order.
func ResolvePaths(patterns []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}

		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	return resolved, nil
}

// resolvePattern expands a single pattern to files.
func resolvePattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return []string{absPath}, nil
		}

		// A directory stands for every ontology file below it
		files, err := globFiles(filepath.Join(absPath, "**", "*"), true)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no ontology files in directory: %s", absPath)
		}
		return files, nil
	}

	absPattern, err := makeAbsolutePattern(pattern)
	if err != nil {
		return nil, err
	}

	files, err := globFiles(absPattern, false)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	return files, nil
}

// globFiles returns the regular files matching an absolute pattern. With
// ontologyOnly set, files without an ontology extension are skipped.
func globFiles(absPattern string, ontologyOnly bool) ([]string, error) {
	// Use doublestar for ** support
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if ontologyOnly && !hasOntologyExtension(match) {
			continue
		}
		files = append(files, match)
	}
	return files, nil
}

func hasOntologyExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range ontologyExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// makeAbsolutePattern converts a relative pattern to absolute.
// Preserves glob characters in the pattern.
func makeAbsolutePattern(pattern string) (string, error) {
	if filepath.IsAbs(pattern) {
		return filepath.Clean(pattern), nil
	}

	globIdx := strings.IndexAny(pattern, "*?[{")
	if globIdx == -1 {
		return filepath.Abs(pattern)
	}

	// Split at the last separator before the first glob character
	dirPart, globPart := ".", "/"+pattern
	if lastSep := strings.LastIndexAny(pattern[:globIdx], "/"+string(filepath.Separator)); lastSep >= 0 {
		dirPart, globPart = pattern[:lastSep], pattern[lastSep:]
	}

	absDir, err := filepath.Abs(dirPart)
	if err != nil {
		return "", err
	}

	return absDir + filepath.FromSlash(globPart), nil
}
