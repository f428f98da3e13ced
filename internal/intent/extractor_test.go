package intent_test

import (
	"testing"
	"time"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/pkg/datemath"
)

// testNow is a fixed Wednesday mid-day reference: May 1, 2024 12:00 UTC.
func testNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func newTestExtractor(t *testing.T) *intent.Extractor {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	return intent.NewExtractor(dates)
}

func TestExtract(t *testing.T) {
	extractor := newTestExtractor(t)
	now := testNow()

	tests := []struct {
		name       string
		text       string
		wantPhrase string
		wantAt     time.Time
		wantFound  bool
	}{
		{
			name:       "Tomorrow with clock time merges into one phrase",
			text:       "Bana yarın 15:00 danışman toplantısını hatırlat",
			wantPhrase: "yarın 15:00",
			wantAt:     time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Tomorrow alone lands mid-morning",
			text:       "yarın danışman toplantısı var",
			wantPhrase: "yarın",
			wantAt:     time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "ASCII variant yarin",
			text:       "yarin raporu bitir",
			wantPhrase: "yarin",
			wantAt:     time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Today with future clock time stays today",
			text:       "bugün 18:00 markete git",
			wantPhrase: "bugün 18:00",
			wantAt:     time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Clock time already past resolves to tomorrow",
			text:       "saat 10:00 toplantı",
			wantPhrase: "saat 10:00",
			wantAt:     time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Bare hour with saat prefix",
			text:       "saat 15 ara beni",
			wantPhrase: "saat 15",
			wantAt:     time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Weekday resolves to next future occurrence",
			text:       "cuma sunum provası",
			wantPhrase: "cuma",
			wantAt:     time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Same weekday resolves a week ahead",
			text:       "çarşamba tekrar dene",
			wantPhrase: "çarşamba",
			wantAt:     time.Date(2024, 5, 8, 9, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "This week resolves to Sunday 23:59",
			text:       "Bu hafta tez önerisini bitirmeyi hatırlat",
			wantPhrase: "Bu hafta",
			wantAt:     time.Date(2024, 5, 5, 23, 59, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "This month resolves to last day 23:59",
			text:       "bu ay makaleyi gönder",
			wantPhrase: "bu ay",
			wantAt:     time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:       "Last phrase wins when several dates appear",
			text:       "bugün değil yarın hatırlat",
			wantPhrase: "yarın",
			wantAt:     time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
			wantFound:  true,
		},
		{
			name:      "No date-like phrase",
			text:      "danışman toplantısını unutma",
			wantFound: false,
		},
		{
			name:      "Empty text",
			text:      "",
			wantFound: false,
		},
		{
			name:      "Day word embedded in a longer word is not a match",
			text:      "cumaya kadar bekle", // suffixed form, boundary rejects
			wantFound: false,
		},
		{
			name:      "Task id is not a clock time",
			text:      "görev #12",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractor.Extract(tt.text, now)
			if found != tt.wantFound {
				t.Fatalf("Extract(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if !tt.wantFound {
				return
			}
			if got.Phrase != tt.wantPhrase {
				t.Errorf("Extract(%q) phrase = %q, want %q", tt.text, got.Phrase, tt.wantPhrase)
			}
			if !got.At.Equal(tt.wantAt) {
				t.Errorf("Extract(%q) at = %v, want %v", tt.text, got.At, tt.wantAt)
			}
		})
	}
}

func TestStripPhrase(t *testing.T) {
	got := intent.StripPhrase("Bana yarın 15:00 toplantıyı hatırlat", "yarın 15:00")
	want := "Bana   toplantıyı hatırlat"
	if got != want {
		t.Errorf("StripPhrase = %q, want %q", got, want)
	}
}
