package intent_test

import (
	"strings"
	"testing"

	"github.com/blc10/research-assistant/internal/intent"
)

func TestNormalize(t *testing.T) {
	normalizer := intent.NewNormalizer(intent.DefaultFillers())

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "Fillers stripped, capitalized, punctuated",
			raw:  "Bana  danışman toplantısını hatırlat",
			want: "Danışman toplantısını.",
		},
		{
			name: "First person future rewritten to passive",
			raw:  "raporu yarına kadar yapacağım",
			want: "Raporu yarına kadar yapılacak.",
		},
		{
			name: "Accusative future form rewritten",
			raw:  "sunumu hazırlayacağımı unutma",
			want: "Sunumu hazırlanacak unutma.",
		},
		{
			name: "Infinitive yapmak ending",
			raw:  "ödev yapmak",
			want: "Ödev yapılacak.",
		},
		{
			name: "Infinitive gitmek ending",
			raw:  "markete gitmek",
			want: "Markete gidilecek.",
		},
		{
			name: "Existing terminal punctuation kept",
			raw:  "raporu bitir!",
			want: "Raporu bitir!",
		},
		{
			name: "Turkish dotted capital",
			raw:  "istasyona uğra",
			want: "İstasyona uğra.",
		},
		{
			name: "Only fillers falls back to placeholder",
			raw:  "bana bunu hatırlat",
			want: intent.PlaceholderTitle,
		},
		{
			name: "Empty input falls back to placeholder",
			raw:  "   ",
			want: intent.PlaceholderTitle,
		},
		{
			name: "Filler with trailing comma still stripped",
			raw:  "lütfen, makaleyi oku",
			want: "Makaleyi oku.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizer.Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeStrippedDate(t *testing.T) {
	extractor := newTestExtractor(t)
	normalizer := intent.NewNormalizer(intent.DefaultFillers())

	text := "Bana yarın danışman toplantısını hatırlat"
	parsed, found := extractor.Extract(text, testNow())
	if !found {
		t.Fatalf("expected a date phrase in %q", text)
	}

	title := normalizer.Normalize(intent.StripPhrase(text, parsed.Phrase))
	if !strings.HasPrefix(title, "Danışman") {
		t.Errorf("title = %q, want prefix %q", title, "Danışman")
	}
	if !strings.HasSuffix(title, ".") {
		t.Errorf("title = %q, want terminal punctuation", title)
	}
	for _, w := range []string{"bana", "hatırlat", "yarın"} {
		if strings.Contains(strings.ToLower(title), w) {
			t.Errorf("title %q still contains %q", title, w)
		}
	}
}
