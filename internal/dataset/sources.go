package dataset

import "strings"

// sources collects candidate references from every column whose
// normalized header starts with "source", in header order. Duplicate
// URLs keep the first occurrence.
func (t *table) sources(record []string) []Source {
	var sources []Source
	seen := map[string]struct{}{}
	for index, key := range t.header {
		if !strings.HasPrefix(key, sourcePrefix) {
			continue
		}
		if index >= len(record) {
			continue
		}
		source, ok := parseSource(record[index])
		if !ok {
			continue
		}
		if _, dup := seen[source.URL]; dup {
			continue
		}
		seen[source.URL] = struct{}{}
		sources = append(sources, source)
	}
	return sources
}

// parseSource splits a source cell into name and URL. The cell holds
// either "Name|URL" or a bare URL; a missing name falls back to the
// URL itself.
func parseSource(cell string) (Source, bool) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return Source{}, false
	}
	name, url, found := strings.Cut(trimmed, "|")
	if !found {
		return Source{Name: trimmed, URL: trimmed}, true
	}
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if url == "" {
		return Source{}, false
	}
	if name == "" {
		name = url
	}
	return Source{Name: name, URL: url}, true
}
