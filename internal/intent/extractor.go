package intent

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/blc10/research-assistant/pkg/datemath"
)

// ParsedDate is the result of a successful date/time search: the resolved
// instant and the exact matched substring, needed to strip it from the title.
type ParsedDate struct {
	Phrase string
	At     time.Time
}

// Extractor searches free text for Turkish date/time phrases and resolves
// them against a reference instant. It is a heuristic scanner, not a parser:
// a fixed set of patterns, future-preferring, and when several phrases occur
// the last one in reading order wins.
type Extractor struct {
	dates *datemath.Parser
}

// NewExtractor creates an extractor that resolves into the parser's timezone.
func NewExtractor(dates *datemath.Parser) *Extractor {
	return &Extractor{dates: dates}
}

// When only a day word is present the task lands mid-morning rather than
// midnight, so the reminder fires at a useful hour.
const defaultHour = 9

var (
	weekRe  = regexp.MustCompile(`(?i)bu hafta|this week`)
	monthRe = regexp.MustCompile(`(?i)bu ay|this month`)
	// Longer alternatives first: pazartesi before pazar, cumartesi before cuma.
	dayRe   = regexp.MustCompile(`(?i)bugün|bugun|yarın|yarin|pazartesi|salı|sali|çarşamba|carsamba|perşembe|persembe|cumartesi|cuma|pazar`)
	clockRe = regexp.MustCompile(`(?i)(?:saat\s*)?(\d{1,2})[:.](\d{2})`)
	hourRe  = regexp.MustCompile(`(?i)saat\s*(\d{1,2})`)
)

var weekdayNames = map[string]time.Weekday{
	"pazartesi": time.Monday,
	"salı":      time.Tuesday,
	"sali":      time.Tuesday,
	"çarşamba":  time.Wednesday,
	"carsamba":  time.Wednesday,
	"perşembe":  time.Thursday,
	"persembe":  time.Thursday,
	"cuma":      time.Friday,
	"cumartesi": time.Saturday,
	"pazar":     time.Sunday,
}

type matchKind int

const (
	matchDay matchKind = iota
	matchClock
	matchWeek
	matchMonth
)

// span is a single raw pattern hit before merging.
type span struct {
	kind       matchKind
	start, end int

	dayOffset int // matchDay: 0 bugün, 1 yarın
	isWeekday bool
	weekday   time.Weekday

	hour, min int // matchClock
}

// phrase is a merged, resolvable date phrase (a day word plus an adjacent
// clock time collapse into one).
type phrase struct {
	start, end int
	kind       matchKind

	hasDay    bool
	dayOffset int
	isWeekday bool
	weekday   time.Weekday

	hasClock  bool
	hour, min int
}

// Extract searches text for date/time phrases resolved against now.
// No match is a normal outcome, not an error.
func (e *Extractor) Extract(text string, now time.Time) (ParsedDate, bool) {
	spans := e.scan(text)
	if len(spans) == 0 {
		return ParsedDate{}, false
	}

	phrases := mergePhrases(text, spans)
	last := phrases[len(phrases)-1] // last phrase in reading order wins

	return ParsedDate{
		Phrase: text[last.start:last.end],
		At:     e.resolve(last, now),
	}, true
}

// scan collects every raw pattern hit with valid word boundaries,
// ordered by position.
func (e *Extractor) scan(text string) []span {
	var spans []span

	for _, loc := range weekRe.FindAllStringIndex(text, -1) {
		if wordBounded(text, loc[0], loc[1]) {
			spans = append(spans, span{kind: matchWeek, start: loc[0], end: loc[1]})
		}
	}
	for _, loc := range monthRe.FindAllStringIndex(text, -1) {
		if wordBounded(text, loc[0], loc[1]) {
			spans = append(spans, span{kind: matchMonth, start: loc[0], end: loc[1]})
		}
	}

	for _, loc := range dayRe.FindAllStringIndex(text, -1) {
		if !wordBounded(text, loc[0], loc[1]) {
			continue
		}
		word := lowerTurkish(text[loc[0]:loc[1]])
		s := span{kind: matchDay, start: loc[0], end: loc[1]}
		switch word {
		case "bugün", "bugun":
			s.dayOffset = 0
		case "yarın", "yarin":
			s.dayOffset = 1
		default:
			wd, ok := weekdayNames[word]
			if !ok {
				continue
			}
			s.isWeekday = true
			s.weekday = wd
		}
		spans = append(spans, s)
	}

	for _, loc := range clockRe.FindAllStringSubmatchIndex(text, -1) {
		if !wordBounded(text, loc[0], loc[1]) {
			continue
		}
		hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
		min, _ := strconv.Atoi(text[loc[4]:loc[5]])
		if hour > 23 || min > 59 {
			continue
		}
		spans = append(spans, span{kind: matchClock, start: loc[0], end: loc[1], hour: hour, min: min})
	}

	for _, loc := range hourRe.FindAllStringSubmatchIndex(text, -1) {
		if !wordBounded(text, loc[0], loc[1]) || overlapsAny(spans, loc[0], loc[1]) {
			continue
		}
		hour, _ := strconv.Atoi(text[loc[2]:loc[3]])
		if hour > 23 {
			continue
		}
		spans = append(spans, span{kind: matchClock, start: loc[0], end: loc[1], hour: hour})
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

// mergePhrases folds a day word followed by an adjacent clock time into one
// phrase ("yarın 15:00"); everything else maps one to one.
func mergePhrases(text string, spans []span) []phrase {
	var phrases []phrase

	for i := 0; i < len(spans); i++ {
		s := spans[i]
		p := phrase{start: s.start, end: s.end, kind: s.kind}

		switch s.kind {
		case matchDay:
			p.hasDay = true
			p.dayOffset = s.dayOffset
			p.isWeekday = s.isWeekday
			p.weekday = s.weekday
			if i+1 < len(spans) && spans[i+1].kind == matchClock && adjacent(text, s.end, spans[i+1].start) {
				next := spans[i+1]
				p.hasClock = true
				p.hour, p.min = next.hour, next.min
				p.end = next.end
				i++
			}
		case matchClock:
			p.hasClock = true
			p.hour, p.min = s.hour, s.min
		}

		phrases = append(phrases, p)
	}
	return phrases
}

// resolve turns a phrase into an absolute instant, preferring the future
// when the phrase alone does not pin down a day.
func (e *Extractor) resolve(p phrase, now time.Time) time.Time {
	switch p.kind {
	case matchWeek:
		return e.dates.EndOfWeek(now)
	case matchMonth:
		return e.dates.EndOfMonth(now)
	}

	hour, min := defaultHour, 0
	if p.hasClock {
		hour, min = p.hour, p.min
	}

	switch {
	case p.hasDay && p.isWeekday:
		day := e.dates.NextWeekday(now, p.weekday)
		return e.dates.At(day, 0, hour, min)
	case p.hasDay:
		return e.dates.At(now, p.dayOffset, hour, min)
	default:
		// Clock time without a day: today if still ahead, else tomorrow.
		at := e.dates.At(now, 0, hour, min)
		if !at.After(now) {
			at = e.dates.At(now, 1, hour, min)
		}
		return at
	}
}

// StripPhrase removes the matched date phrase from text, leaving the task
// wording for the normalizer.
func StripPhrase(text, phrase string) string {
	return strings.TrimSpace(strings.Replace(text, phrase, " ", 1))
}

// wordBounded reports whether text[start:end] is delimited by non-word runes.
// regexp's \b is ASCII-only and misfires next to Turkish letters, so the
// boundary check is done by hand.
func wordBounded(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func overlapsAny(spans []span, start, end int) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// adjacent reports whether only blank space separates two match offsets.
func adjacent(text string, end, start int) bool {
	if end > start {
		return false
	}
	return strings.TrimSpace(text[end:start]) == ""
}
