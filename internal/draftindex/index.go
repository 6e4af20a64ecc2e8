// Package draftindex keeps a VecLite index of saved drafts so new content
// can be checked against what was already written.
package draftindex

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdul-hamid-achik/veclite"
	"github.com/macaddy2/leadskylab/internal/content"
)

const draftsCollection = "drafts"

// Config holds configuration for the Index.
type Config struct {
	// Path to the VecLite database file (e.g., "data/drafts.veclite").
	Path string

	// ConfigPath is the path to veclite.yaml config file (optional).
	// If empty, searches ./veclite.yaml, ~/.veclite/config.yaml.
	ConfigPath string
}

// Index wraps a VecLite collection of drafts.
type Index struct {
	vecdb    *veclite.DB
	coll     *veclite.Collection
	embedder veclite.Embedder
}

// Match is a stored draft similar to a query.
type Match struct {
	VecLiteID  uint64
	DraftID    string
	ProductID  string
	Title      string
	Text       string
	Platform   content.Platform
	Similarity float32
}

// New opens or creates the drafts collection.
func New(cfg Config) (*Index, error) {
	vecliteCfg, err := veclite.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load veclite config: %w", err)
	}

	embedder, err := veclite.NewEmbedderFromConfig(vecliteCfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	vecdb, err := veclite.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open veclite db: %w", err)
	}

	coll, err := vecdb.CreateCollection(draftsCollection,
		veclite.WithDimension(embedder.Dimension()),
		veclite.WithDistanceType(veclite.DistanceCosine),
		veclite.WithHNSW(16, 200),
		veclite.WithTextIndex("title", "text", "platform"),
		veclite.WithEmbedder(embedder),
	)
	if err != nil {
		coll, err = vecdb.GetCollection(draftsCollection)
		if err != nil {
			vecdb.Close()
			return nil, fmt.Errorf("get collection: %w", err)
		}
	}

	slog.Debug("draft index opened",
		"path", cfg.Path,
		"provider", vecliteCfg.Embedder.Provider,
		"drafts", coll.Count(),
	)

	return &Index{
		vecdb:    vecdb,
		coll:     coll,
		embedder: embedder,
	}, nil
}

// Close closes the VecLite database.
func (x *Index) Close() error {
	if x.vecdb != nil {
		return x.vecdb.Close()
	}
	return nil
}

// InsertDraft embeds and stores a draft. Returns the VecLite record ID.
func (x *Index) InsertDraft(ctx context.Context, d content.Draft) (uint64, error) {
	id, err := x.coll.InsertText(d.Body, draftPayload(d))
	if err != nil {
		return 0, fmt.Errorf("insert draft %s: %w", d.ID, err)
	}
	return id, nil
}

// Similar finds drafts whose body is close to query.
func (x *Index) Similar(ctx context.Context, query string, k int) ([]Match, error) {
	results, err := x.coll.SearchText(query, veclite.TopK(k))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return toMatches(results), nil
}

// SimilarAbove is Similar restricted to matches scoring at least threshold.
func (x *Index) SimilarAbove(ctx context.Context, query string, threshold float32, k int) ([]Match, error) {
	results, err := x.coll.SearchText(query,
		veclite.TopK(k),
		veclite.Threshold(threshold),
	)
	if err != nil {
		return nil, fmt.Errorf("search with threshold: %w", err)
	}
	return toMatches(results), nil
}

// SimilarOnPlatform is Similar restricted to one platform.
func (x *Index) SimilarOnPlatform(ctx context.Context, query string, platform content.Platform, k int) ([]Match, error) {
	queryVec, err := x.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := x.coll.Search(queryVec,
		veclite.TopK(k),
		veclite.WithFilter(veclite.Equal("platform", string(platform))),
	)
	if err != nil {
		return nil, fmt.Errorf("search on %s: %w", platform, err)
	}
	return toMatches(results), nil
}

// Hybrid combines vector and BM25 text search.
func (x *Index) Hybrid(ctx context.Context, query string, k int) ([]Match, error) {
	queryVec, err := x.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := x.coll.HybridSearch(queryVec, query,
		veclite.TopK(k),
		veclite.WithVectorWeight(0.7),
		veclite.WithTextWeight(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}
	return toMatches(results), nil
}

// Count returns the number of indexed drafts.
func (x *Index) Count() int {
	return x.coll.Count()
}

// Stats returns statistics about the collection.
func (x *Index) Stats() veclite.CollectionStats {
	return x.coll.Stats()
}

// Sync persists pending changes to disk.
func (x *Index) Sync() error {
	return x.vecdb.Sync()
}

func draftPayload(d content.Draft) map[string]any {
	payload := map[string]any{
		"draft_id": d.ID,
		"title":    d.Title,
		"text":     d.Body,
		"platform": string(d.Platform),
		"tone":     string(d.Tone),
	}
	if d.ProductID != "" {
		payload["product_id"] = d.ProductID
	}
	return payload
}

func toMatches(results []veclite.Result) []Match {
	out := make([]Match, 0, len(results))
	for _, r := range results {
		out = append(out, matchFromPayload(r.Record.ID, r.Score, r.Record.Content, r.Record.Payload))
	}
	return out
}

func matchFromPayload(id uint64, score float32, body string, payload map[string]any) Match {
	m := Match{
		VecLiteID:  id,
		Similarity: score,
	}
	m.DraftID, _ = payload["draft_id"].(string)
	m.ProductID, _ = payload["product_id"].(string)
	m.Title, _ = payload["title"].(string)
	m.Text, _ = payload["text"].(string)
	if p, ok := payload["platform"].(string); ok {
		m.Platform = content.Platform(p)
	}
	if m.Text == "" {
		m.Text = body
	}
	return m
}
