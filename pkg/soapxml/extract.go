// Package soapxml extracts values from the semi-structured SOAP payloads
// returned by the Brink POS web services. The upstream responses are not
// always schema-valid XML, so extraction is tag-based and tolerant rather
// than a full parse.
package soapxml

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

var (
	patternMu    sync.RWMutex
	patternCache = map[string]*regexp.Regexp{}
)

// ErrEmptyDocument is returned when the input document is empty.
var ErrEmptyDocument = fmt.Errorf("soapxml: empty document")

// tagPattern matches <tag ...>inner</tag> case-insensitively, tolerating
// attributes and whitespace. Inner text is captured lazily so sibling
// elements never get merged into one match.
func tagPattern(tag string) *regexp.Regexp {
	patternMu.RLock()
	re, ok := patternCache[tag]
	patternMu.RUnlock()
	if ok {
		return re
	}

	quoted := regexp.QuoteMeta(tag)
	re = regexp.MustCompile(`(?is)<` + quoted + `(?:\s[^>]*)?>(.*?)</\s*` + quoted + `\s*>`)

	patternMu.Lock()
	patternCache[tag] = re
	patternMu.Unlock()

	return re
}

// ExtractScalar returns the trimmed inner text of the first occurrence of the
// given tag, or an empty string when the tag is absent. Only an empty input
// document is an error.
func ExtractScalar(doc, tag string) (string, error) {
	if strings.TrimSpace(doc) == "" {
		return "", ErrEmptyDocument
	}

	match := tagPattern(tag).FindStringSubmatch(doc)
	if match == nil {
		return "", nil
	}

	return strings.TrimSpace(match[1]), nil
}

// ExtractRepeated returns the full outer XML of every occurrence of the given
// element, non-overlapping and in document order. A document with no
// occurrences yields an empty slice, not an error.
func ExtractRepeated(doc, element string) ([]string, error) {
	if strings.TrimSpace(doc) == "" {
		return nil, ErrEmptyDocument
	}

	return tagPattern(element).FindAllString(doc, -1), nil
}
