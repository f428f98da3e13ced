package intent_test

import (
	"testing"

	"github.com/blc10/research-assistant/internal/intent"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantMins int
		wantOK   bool
	}{
		{name: "Minutes", text: "30 dakika", wantMins: 30, wantOK: true},
		{name: "Minutes short form", text: "45 dk", wantMins: 45, wantOK: true},
		{name: "Hours", text: "2 saat", wantMins: 120, wantOK: true},
		{name: "Days", text: "1 gün", wantMins: 1440, wantOK: true},
		{name: "Days ASCII", text: "3 gun", wantMins: 4320, wantOK: true},
		{name: "No space between number and unit", text: "10dk", wantMins: 10, wantOK: true},
		{name: "Embedded in a sentence", text: "ertele 2 saat sonra", wantMins: 120, wantOK: true},
		{name: "No unit", text: "banana", wantOK: false},
		{name: "Number without unit", text: "15", wantOK: false},
		{name: "Empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := intent.ParseDuration(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseDuration(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got != tt.wantMins {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.text, got, tt.wantMins)
			}
		})
	}
}
