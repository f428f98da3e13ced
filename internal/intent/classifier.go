package intent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerTurkish lowercases text with Turkish case mapping (İ→i, I→ı).
// A fresh Caser per call: cases.Caser is stateful and not goroutine-safe.
func lowerTurkish(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// upperTurkishFirst capitalizes the first rune with Turkish case mapping.
func upperTurkishFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	head := cases.Upper(language.Turkish).String(string(runes[0]))
	return head + string(runes[1:])
}

// Classifier decides the lexical category of a message by case-insensitive
// keyword-set membership. Pure function of the text; an armed pending slot
// overriding classification is the engine's concern, not the classifier's.
type Classifier struct {
	kw Keywords
}

// NewClassifier creates a classifier over the given immutable keyword lists.
func NewClassifier(kw Keywords) *Classifier {
	return &Classifier{kw: kw}
}

// Classify returns the highest-priority matching category.
// Priority is fixed: Summary > Delete > Complete > TaskLike > Plain.
func (c *Classifier) Classify(text string) Category {
	lowered := lowerTurkish(text)

	switch {
	case containsAny(lowered, c.kw.Summary):
		return CategorySummary
	case containsAny(lowered, c.kw.Delete):
		return CategoryDelete
	case containsAny(lowered, c.kw.Complete):
		return CategoryComplete
	case containsAny(lowered, c.kw.Task):
		return CategoryTaskLike
	}
	return CategoryPlain
}

func containsAny(lowered string, words []string) bool {
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
