// Package textmatch isolates the "does this text contain phrase X" matching
// strategy behind a small interface so agents never build regexes themselves.
package textmatch

import (
	"regexp"
	"strings"
	"sync"
)

// Matcher answers phrase-containment questions over raw transcript text.
type Matcher interface {
	// Sentences returns every sentence of text containing phrase,
	// case-insensitively, with the terminating punctuation included.
	Sentences(text, phrase string) []string
	// CountWord counts word-bounded, case-insensitive occurrences of word.
	CountWord(text, word string) int
	// CountPhrase counts case-insensitive substring occurrences of phrase.
	CountPhrase(text, phrase string) int
	// Split breaks text into sentences, dropping fragments of <=10 chars.
	Split(text string) []string
}

// Regex is the default Matcher. Compiled patterns are cached per phrase
// since the same vocabularies are scanned over every transcript.
type Regex struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

func NewRegex() *Regex {
	return &Regex{cache: make(map[string]*regexp.Regexp)}
}

func (m *Regex) compiled(key, pattern string) *regexp.Regexp {
	m.mu.Lock()
	defer m.mu.Unlock()
	if re, ok := m.cache[key]; ok {
		return re
	}
	re := regexp.MustCompile(pattern)
	m.cache[key] = re
	return re
}

func (m *Regex) Sentences(text, phrase string) []string {
	re := m.compiled("s:"+phrase, `(?i)[^.!?]*`+regexp.QuoteMeta(phrase)+`[^.!?]*[.!?]`)
	var out []string
	for _, s := range re.FindAllString(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (m *Regex) CountWord(text, word string) int {
	re := m.compiled("w:"+word, `(?i)\b`+regexp.QuoteMeta(word)+`\b`)
	return len(re.FindAllStringIndex(text, -1))
}

func (m *Regex) CountPhrase(text, phrase string) int {
	return strings.Count(strings.ToLower(text), strings.ToLower(phrase))
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

func (m *Regex) Split(text string) []string {
	var out []string
	for _, s := range sentenceSplit.Split(text, -1) {
		if len(strings.TrimSpace(s)) > 10 {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
