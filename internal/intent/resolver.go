package intent

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blc10/research-assistant/internal/model"
)

// Splitter for query/title tokens: any run of characters outside the ASCII
// word class extended with the Turkish letters.
var tokenSplitRe = regexp.MustCompile(`[^0-9A-Za-z_çğıöşüÇĞİÖŞÜ]+`)

// Generic task-reference words stripped from delete/complete requests
// before candidate matching.
var actionQueryNoiseRe = regexp.MustCompile(`(^| )(şu|bunu|şunu|bu|o|hatırlatma|hatirlatma|görev|görevi|hatırlatmayı|hatirlatmayi)( |$)`)

var taskIDTokenRe = regexp.MustCompile(`#?\d+`)

// Resolver scores open tasks against a free-text query for delete/complete
// disambiguation. Stateless; scores belong to the single request.
type Resolver struct{}

// NewResolver creates a candidate resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve ranks open tasks against query and returns at most limit of them.
// An empty query returns the first limit tasks unfiltered and unscored.
// Score = 3 for the query appearing verbatim in the title, plus one per
// shared token; zero-score tasks are dropped; ties rank tasks with a due
// date before tasks without one.
func (r *Resolver) Resolve(query string, openTasks []model.Task, limit int) []model.Task {
	if limit <= 0 || len(openTasks) == 0 {
		return nil
	}

	query = strings.TrimSpace(lowerTurkish(query))
	if query == "" {
		if len(openTasks) > limit {
			return openTasks[:limit]
		}
		return openTasks
	}

	queryTokens := tokenize(query)

	type scored struct {
		task  model.Task
		score int
	}
	var candidates []scored
	for _, task := range openTasks {
		title := lowerTurkish(task.Title)

		score := 0
		if strings.Contains(title, query) {
			score += 3
		}
		for token := range tokenize(title) {
			if _, ok := queryTokens[token]; ok {
				score++
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{task: task, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].task.DueAt != nil && candidates[j].task.DueAt == nil
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	result := make([]model.Task, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, c.task)
	}
	return result
}

// ExtractActionQuery strips the triggering action keywords, task-reference
// pronouns/nouns and any task-ID tokens from a delete/complete message,
// leaving the words that name the task.
func ExtractActionQuery(text string, actionWords []string) string {
	cleaned := lowerTurkish(text)
	for _, word := range actionWords {
		cleaned = strings.ReplaceAll(cleaned, word, " ")
	}

	// Looped: consecutive noise words share a separating space, which a
	// single replace pass would consume.
	for {
		next := actionQueryNoiseRe.ReplaceAllString(cleaned, " ")
		if next == cleaned {
			break
		}
		cleaned = next
	}

	cleaned = taskIDTokenRe.ReplaceAllString(cleaned, " ")
	return strings.Join(strings.Fields(cleaned), " ")
}

// tokenize splits text into the set of tokens longer than two characters.
func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range tokenSplitRe.Split(lowerTurkish(text), -1) {
		if len([]rune(token)) > 2 {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}
