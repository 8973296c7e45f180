package uasset

import (
	"fmt"
	"regexp"
)

// SearchOptions controls Search filtering.
type SearchOptions struct {
	// IgnoreCase makes Pattern and the key filters case-insensitive.
	IgnoreCase bool
	// ValuesOnly restricts Pattern matching to values; keys are still
	// subject to the include/exclude filters.
	ValuesOnly bool
	// IncludeKeys, when non-empty, keeps only entries whose key matches
	// at least one of the patterns.
	IncludeKeys []string
	// ExcludeKeys drops entries whose key matches any of the patterns.
	ExcludeKeys []string
}

// Search returns the entries of t whose key or value matches the
// regexp pattern, honoring the include/exclude key filters. Entry
// order is preserved.
func Search(t StringTable, pattern string, opts SearchOptions) (StringTable, error) {
	re, err := compilePattern(pattern, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	include, err := compilePatterns(opts.IncludeKeys, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}
	exclude, err := compilePatterns(opts.ExcludeKeys, opts.IgnoreCase)
	if err != nil {
		return nil, err
	}

	var out StringTable
	for _, e := range t {
		if len(include) > 0 && !anyMatch(include, e.Key) {
			continue
		}
		if anyMatch(exclude, e.Key) {
			continue
		}
		if (!opts.ValuesOnly && re.MatchString(e.Key)) || re.MatchString(e.Value) {
			out = append(out, e)
		}
	}
	return out, nil
}

func compilePattern(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("uasset: invalid search pattern: %w", err)
	}
	return re, nil
}

func compilePatterns(patterns []string, ignoreCase bool) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := compilePattern(p, ignoreCase)
		if err != nil {
			return nil, err
		}
		res = append(res, re)
	}
	return res, nil
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
