package paper

import "github.com/blc10/research-assistant/internal/model"

// ScanOutput is the result of one feed scan run.
type ScanOutput struct {
	RunID     string // correlates log lines of one run
	Fetched   int    // papers returned by the feeds, duplicates included
	NewPapers int
	Analyzed  int
}

// DigestOutput is the material for the daily paper digest message.
type DigestOutput struct {
	Papers     []model.Paper
	NewCount   int
	ReadStreak int
}
