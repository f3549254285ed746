// Package detect extracts likely human first names from imported team names.
package detect

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/clutchsports/clutchvault/schema"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggestThreshold is the minimum similarity for a fuzzy suggestion.
const suggestThreshold = 0.7

// maxSuggestionsPerToken caps fuzzy suggestions for a single token.
const maxSuggestionsPerToken = 3

// Detector matches tokens from team names against a first-name dictionary.
type Detector struct {
	names map[string]struct{}
	list  []string
}

// NewDetector builds a detector from the embedded dictionary.
func NewDetector() *Detector {
	return newFromLines(strings.Split(embeddedDictionary, "\n"))
}

// NewDetectorFromFile builds a detector from a user-supplied dictionary file,
// one name per line. Blank lines and lines starting with # are skipped.
func NewDetectorFromFile(path string) (*Detector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("dictionary %s is empty", path)
	}
	return newFromLines(lines), nil
}

func newFromLines(lines []string) *Detector {
	d := &Detector{names: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		name := strings.ToLower(strings.TrimSpace(line))
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if _, seen := d.names[name]; seen {
			continue
		}
		d.names[name] = struct{}{}
		d.list = append(d.list, name)
	}
	sort.Strings(d.list)
	return d
}

// Size returns the number of dictionary entries.
func (d *Detector) Size() int {
	return len(d.list)
}

// Detect returns the first names found in a single raw team name, in token
// order, capitalized. Duplicate tokens are reported once.
func (d *Detector) Detect(rawName string) []string {
	var detected []string
	seen := make(map[string]struct{})

	for _, token := range tokenize(rawName) {
		if _, ok := d.names[token]; !ok {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		detected = append(detected, capitalize(token))
	}
	return detected
}

// DetectAll scans a batch of raw team names and returns the unique detected
// first names in alphabetical order.
func (d *Detector) DetectAll(rawNames []string) []string {
	seen := make(map[string]struct{})
	for _, raw := range rawNames {
		for _, name := range d.Detect(raw) {
			seen[name] = struct{}{}
		}
	}

	all := make([]string, 0, len(seen))
	for name := range seen {
		all = append(all, name)
	}
	sort.Strings(all)
	return all
}

// Matches returns the per-name detection detail for raw team names indexed
// by the seasons they appeared in, sorted alphabetically by raw name. Names
// with no exact detection get fuzzy near-miss suggestions so the
// commissioner can spot typos.
func (d *Detector) Matches(seasonsByName map[string][]int) []schema.NameDetection {
	rawNames := make([]string, 0, len(seasonsByName))
	for raw := range seasonsByName {
		rawNames = append(rawNames, raw)
	}
	sort.Strings(rawNames)

	matches := make([]schema.NameDetection, 0, len(rawNames))
	for _, raw := range rawNames {
		detection := schema.NameDetection{
			RawName:  raw,
			Seasons:  append([]int(nil), seasonsByName[raw]...),
			Detected: d.Detect(raw),
		}
		if len(detection.Detected) == 0 {
			detection.Suggestions = d.suggestForTokens(raw)
		}
		matches = append(matches, detection)
	}
	return matches
}

// suggestForTokens collects fuzzy suggestions across every token of a raw
// name, deduplicated, in token order.
func (d *Detector) suggestForTokens(rawName string) []string {
	var suggestions []string
	seen := make(map[string]struct{})
	for _, token := range tokenize(rawName) {
		for _, suggestion := range d.Suggest(token, maxSuggestionsPerToken) {
			if _, dup := seen[suggestion]; dup {
				continue
			}
			seen[suggestion] = struct{}{}
			suggestions = append(suggestions, suggestion)
		}
	}
	return suggestions
}

// Suggest returns up to limit dictionary names that nearly match the token,
// ordered by similarity. Exact dictionary hits are excluded since those come
// back from Detect already.
func (d *Detector) Suggest(token string, limit int) []string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name       string
		similarity float64
	}
	var candidates []scored

	for _, name := range d.list {
		if name == token {
			continue
		}
		distance := fuzzy.LevenshteinDistance(token, name)
		maxLen := float64(max(len(token), len(name)))
		similarity := 1 - float64(distance)/maxLen
		if similarity >= suggestThreshold {
			candidates = append(candidates, scored{name: name, similarity: similarity})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].similarity != candidates[j].similarity {
			return candidates[i].similarity > candidates[j].similarity
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, capitalize(c.name))
	}
	return suggestions
}

// tokenize lowercases a raw name and splits it on the separators seen in
// imported team names and handles.
func tokenize(rawName string) []string {
	return strings.FieldsFunc(strings.ToLower(rawName), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '.' || r == '-' || r == '@'
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
