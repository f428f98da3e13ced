package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blc10/research-assistant/internal/paper"
	"github.com/blc10/research-assistant/internal/paper/repository"
	"github.com/blc10/research-assistant/pkg/gemini"
)

// Settings keys read and written by scan runs.
const (
	settingKeywords    = "paper_keywords"
	settingThesisTopic = "thesis_topic"
	settingLastScan    = "last_scan"
)

// candidate is one fetched paper regardless of feed.
type candidate struct {
	source      string
	sourceID    string
	title       string
	abstract    string
	url         string
	authors     string
	publishedAt string
}

func (uc *implUseCase) Scan(ctx context.Context) (paper.ScanOutput, error) {
	runID := uuid.NewString()
	now := time.Now().In(uc.dates.Location())

	keywords, err := uc.loadKeywords(ctx)
	if err != nil {
		return paper.ScanOutput{}, err
	}
	if len(keywords) == 0 {
		return paper.ScanOutput{}, paper.ErrNoKeywords
	}

	maxResults := uc.cfg.MaxPapersPerDay
	if maxResults <= 0 {
		maxResults = 200
	}

	// A feed failure costs that feed's papers, not the run.
	var candidates []candidate
	arxivPapers, err := uc.arxiv.Search(ctx, keywords, maxResults)
	if err != nil {
		uc.l.Warnf(ctx, "paper scan %s: arxiv fetch failed: %v", runID, err)
	}
	for _, p := range arxivPapers {
		candidates = append(candidates, candidate{
			source: "arxiv", sourceID: p.ID, title: p.Title, abstract: p.Abstract,
			url: p.URL, authors: p.Authors, publishedAt: p.PublishedAt,
		})
	}

	semanticPapers, err := uc.semantic.Search(ctx, keywords, maxResults)
	if err != nil {
		uc.l.Warnf(ctx, "paper scan %s: semantic scholar fetch failed: %v", runID, err)
	}
	for _, p := range semanticPapers {
		candidates = append(candidates, candidate{
			source: "semantic_scholar", sourceID: p.ID, title: p.Title, abstract: p.Abstract,
			url: p.URL, authors: p.Authors, publishedAt: p.PublishedAt,
		})
	}

	topic, err := uc.settings.Get(ctx, settingThesisTopic)
	if err != nil || topic == "" {
		topic = uc.cfg.ThesisTopic
	}

	out := paper.ScanOutput{RunID: runID, Fetched: len(candidates)}
	analysisBudget := uc.cfg.MaxPapersPerDay

	for _, c := range candidates {
		id, created, err := uc.repo.Store(ctx, repository.StoreOptions{
			Source:      c.source,
			SourceID:    c.sourceID,
			Title:       c.title,
			Abstract:    c.abstract,
			URL:         c.url,
			Authors:     c.authors,
			PublishedAt: c.publishedAt,
			FetchedAt:   now,
		})
		if err != nil {
			uc.l.Errorf(ctx, "paper scan %s: failed to store %s/%s: %v", runID, c.source, c.sourceID, err)
			continue
		}
		if !created {
			continue
		}
		out.NewPapers++

		if uc.llm == nil || analysisBudget <= 0 {
			continue
		}
		analysis, err := uc.llm.AnalyzePaper(ctx, gemini.AnalyzeInput{
			ThesisTopic: topic,
			Title:       c.title,
			Abstract:    c.abstract,
		})
		if err != nil {
			uc.l.Warnf(ctx, "paper scan %s: analysis failed for paper #%d: %v", runID, id, err)
			continue
		}
		if err := uc.repo.UpdateAnalysis(ctx, id, repository.AnalysisOptions{
			Relevance: analysis.Relevance,
			Summary:   analysis.Summary,
			Tags:      analysis.Tags,
		}); err != nil {
			uc.l.Errorf(ctx, "paper scan %s: failed to save analysis for paper #%d: %v", runID, id, err)
			continue
		}
		out.Analyzed++
		analysisBudget--
	}

	if err := uc.settings.Set(ctx, settingLastScan, now.UTC().Format(time.RFC3339)); err != nil {
		uc.l.Warnf(ctx, "paper scan %s: failed to record scan time: %v", runID, err)
	}

	uc.l.Infof(ctx, "paper scan %s: fetched=%d new=%d analyzed=%d", runID, out.Fetched, out.NewPapers, out.Analyzed)
	return out, nil
}

// loadKeywords prefers the stored comma-separated list over the config
// fallback.
func (uc *implUseCase) loadKeywords(ctx context.Context) ([]string, error) {
	stored, err := uc.settings.Get(ctx, settingKeywords)
	if err != nil {
		return nil, err
	}
	if stored == "" {
		return uc.cfg.PaperKeywords, nil
	}

	var keywords []string
	for _, kw := range strings.Split(stored, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	if len(keywords) == 0 {
		return uc.cfg.PaperKeywords, nil
	}
	return keywords, nil
}
