package intent

import (
	"strings"
)

// PlaceholderTitle is used when nothing survives the filler stripping.
const PlaceholderTitle = "Görev."

// DefaultFillers returns the built-in imperative/filler words removed from
// task titles: polite requests, "remind me" forms, demonstrative pronouns
// and generic task nouns.
func DefaultFillers() []string {
	return []string{
		"bana", "beni", "bize", "bizim", "lütfen", "lutfen",
		"hatırlat", "hatirlat", "hatırlatma", "hatirlatma",
		"şunu", "şu", "bunu", "görev", "görevi",
	}
}

// Suffix rewrites mapping first-person future verb forms to passive task
// forms. Ordered: the accusative form must rewrite before its prefix.
var titleRewrites = [][2]string{
	{"yapacağımı", "yapılacak"},
	{"yapacağım", "yapılacak"},
	{"gideceğimi", "gidilecek"},
	{"gideceğim", "gidilecek"},
	{"tamamlayacağımı", "tamamlanacak"},
	{"tamamlayacağım", "tamamlanacak"},
	{"hazırlayacağımı", "hazırlanacak"},
	{"hazırlayacağım", "hazırlanacak"},
	{"göndereceğimi", "gönderilecek"},
	{"göndereceğim", "gönderilecek"},
}

// Normalizer canonicalizes a task phrase into a titled sentence. Purely
// textual: it expects the matched date phrase to be stripped already.
type Normalizer struct {
	fillers map[string]struct{}
}

// NewNormalizer creates a normalizer with the given filler word list.
func NewNormalizer(fillers []string) *Normalizer {
	set := make(map[string]struct{}, len(fillers))
	for _, w := range fillers {
		set[lowerTurkish(w)] = struct{}{}
	}
	return &Normalizer{fillers: set}
}

// Normalize lowercases, strips filler words, rewrites first-person future
// verb endings into passive forms, capitalizes and punctuates. An input
// reduced to nothing falls back to the placeholder title.
func (n *Normalizer) Normalize(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return PlaceholderTitle
	}

	lowered := lowerTurkish(text)

	kept := make([]string, 0, 8)
	for _, token := range strings.Fields(lowered) {
		if _, drop := n.fillers[strings.Trim(token, ",.;:!?")]; drop {
			continue
		}
		kept = append(kept, token)
	}
	cleaned := strings.Join(kept, " ")

	for _, rw := range titleRewrites {
		cleaned = strings.ReplaceAll(cleaned, rw[0], rw[1])
	}

	if strings.HasSuffix(cleaned, "yapmak") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "yapmak")) + " yapılacak"
	}
	if strings.HasSuffix(cleaned, "gitmek") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "gitmek")) + " gidilecek"
	}

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return PlaceholderTitle
	}

	cleaned = upperTurkishFirst(cleaned)
	if !strings.HasSuffix(cleaned, ".") && !strings.HasSuffix(cleaned, "!") && !strings.HasSuffix(cleaned, "?") {
		cleaned += "."
	}
	return cleaned
}
