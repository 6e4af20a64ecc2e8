package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/macaddy2/leadskylab/internal/content"
)

var (
	// ErrNotFound is returned when a product or draft does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition is returned when a status change breaks the content lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// DefaultListLimit caps ListDrafts when no limit is given.
const DefaultListLimit = 50

// DraftFilter narrows ListDrafts. Zero values match everything.
type DraftFilter struct {
	Status    content.Status
	ProductID string
	Platform  content.Platform
	Limit     int
}

// SaveProduct normalizes, validates and inserts a product profile.
// A missing ID is generated.
func (s *Store) SaveProduct(ctx context.Context, p content.ProductProfile) (content.ProductProfile, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return content.ProductProfile{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	err := s.CreateProduct(ctx, CreateProductParams{
		ID:             p.ID,
		Name:           p.Name,
		Url:            nullString(p.URL),
		Description:    p.Description,
		ValueProps:     encodeList(p.ValueProps),
		TargetAudience: nullString(p.TargetAudience),
		Keywords:       encodeList(p.Keywords),
		DefaultTone:    nullString(string(p.DefaultTone)),
		Competitors:    encodeList(p.Competitors),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	})
	if err != nil {
		return content.ProductProfile{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// FindProduct looks a product up by ID, then by case-insensitive name.
func (s *Store) FindProduct(ctx context.Context, idOrName string) (content.ProductProfile, error) {
	row, err := s.GetProduct(ctx, idOrName)
	if errors.Is(err, sql.ErrNoRows) {
		row, err = s.GetProductByName(ctx, idOrName)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return content.ProductProfile{}, fmt.Errorf("product %q: %w", idOrName, ErrNotFound)
	}
	if err != nil {
		return content.ProductProfile{}, fmt.Errorf("get product: %w", err)
	}
	return row.Profile()
}

// Products returns every product ordered by name.
func (s *Store) Products(ctx context.Context) ([]content.ProductProfile, error) {
	rows, err := s.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]content.ProductProfile, 0, len(rows))
	for _, row := range rows {
		p, err := row.Profile()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SaveDraft inserts a generated draft. Only drafts in StatusDraft are accepted.
func (s *Store) SaveDraft(ctx context.Context, d content.Draft) error {
	_, err := saveDraft(ctx, s.Queries, d)
	return err
}

// SaveDrafts inserts drafts in one transaction: either all are stored or
// none are. It returns the drafts with generated IDs and timestamps filled in.
func (s *Store) SaveDrafts(ctx context.Context, drafts ...content.Draft) ([]content.Draft, error) {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := s.Queries.WithTx(tx)
	saved := make([]content.Draft, 0, len(drafts))
	for _, d := range drafts {
		d, err := saveDraft(ctx, q, d)
		if err != nil {
			return nil, err
		}
		saved = append(saved, d)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit drafts: %w", err)
	}
	return saved, nil
}

func saveDraft(ctx context.Context, q *Queries, d content.Draft) (content.Draft, error) {
	if d.Status == "" {
		d.Status = content.StatusDraft
	}
	if d.Status != content.StatusDraft {
		return d, fmt.Errorf("save draft %s: status must be %s, got %s", d.ID, content.StatusDraft, d.Status)
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	err := q.CreateContent(ctx, CreateContentParams{
		ID:        d.ID,
		ProductID: nullString(d.ProductID),
		Title:     d.Title,
		Body:      d.Body,
		Platform:  string(d.Platform),
		Hashtags:  encodeList(d.Hashtags),
		Tone:      string(d.Tone),
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.CreatedAt,
	})
	if err != nil {
		return d, fmt.Errorf("create content %s: %w", d.ID, err)
	}
	return d, nil
}

// Draft returns a stored draft by ID.
func (s *Store) Draft(ctx context.Context, id string) (content.Draft, error) {
	row, err := s.GetContent(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return content.Draft{}, fmt.Errorf("draft %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return content.Draft{}, fmt.Errorf("get content: %w", err)
	}
	return row.Draft()
}

// ListDrafts returns drafts newest first.
func (s *Store) ListDrafts(ctx context.Context, f DraftFilter) ([]content.Draft, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.ListContents(ctx, ListContentsParams{
		Status:    string(f.Status),
		ProductID: f.ProductID,
		Platform:  string(f.Platform),
		Limit:     int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	out := make([]content.Draft, 0, len(rows))
	for _, row := range rows {
		d, err := row.Draft()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// TransitionDraft moves a draft to next if the lifecycle allows it.
func (s *Store) TransitionDraft(ctx context.Context, id string, next content.Status) (content.Draft, error) {
	d, err := s.Draft(ctx, id)
	if err != nil {
		return content.Draft{}, err
	}
	if d.Status.Terminal() {
		return content.Draft{}, fmt.Errorf("%w: draft %s is already %s", ErrInvalidTransition, id, d.Status)
	}
	if !d.Status.CanTransition(next) {
		return content.Draft{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Status, next)
	}

	n, err := s.UpdateContentStatus(ctx, UpdateContentStatusParams{
		Status:     string(next),
		UpdatedAt:  time.Now().UTC(),
		ID:         id,
		FromStatus: string(d.Status),
	})
	if err != nil {
		return content.Draft{}, fmt.Errorf("update content status: %w", err)
	}
	if n == 0 {
		return content.Draft{}, fmt.Errorf("%w: draft %s changed concurrently", ErrInvalidTransition, id)
	}

	d.Status = next
	return d, nil
}

// Summary counts the stored products and drafts.
type Summary struct {
	Products int64
	Drafts   int64
	ByStatus map[content.Status]int64
}

// Summary counts products and drafts per status.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var st Summary
	var err error
	if st.Products, err = s.CountProducts(ctx); err != nil {
		return Summary{}, fmt.Errorf("count products: %w", err)
	}
	if st.Drafts, err = s.CountContents(ctx); err != nil {
		return Summary{}, fmt.Errorf("count contents: %w", err)
	}
	rows, err := s.CountContentsByStatus(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count contents by status: %w", err)
	}
	st.ByStatus = make(map[content.Status]int64, len(rows))
	for _, row := range rows {
		st.ByStatus[content.Status(row.Status)] = row.Count
	}
	return st, nil
}

// Profile converts a row into a product profile.
func (p Product) Profile() (content.ProductProfile, error) {
	out := content.ProductProfile{
		ID:             p.ID,
		Name:           p.Name,
		URL:            p.Url.String,
		Description:    p.Description,
		TargetAudience: p.TargetAudience.String,
		DefaultTone:    content.Tone(p.DefaultTone.String),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	var err error
	if out.ValueProps, err = decodeList(p.ValueProps); err != nil {
		return content.ProductProfile{}, fmt.Errorf("decode value props of %s: %w", p.ID, err)
	}
	if out.Keywords, err = decodeList(p.Keywords); err != nil {
		return content.ProductProfile{}, fmt.Errorf("decode keywords of %s: %w", p.ID, err)
	}
	if out.Competitors, err = decodeList(p.Competitors); err != nil {
		return content.ProductProfile{}, fmt.Errorf("decode competitors of %s: %w", p.ID, err)
	}
	return out, nil
}

// Draft converts a row into a draft.
func (c Content) Draft() (content.Draft, error) {
	tags, err := decodeList(c.Hashtags)
	if err != nil {
		return content.Draft{}, fmt.Errorf("decode hashtags of %s: %w", c.ID, err)
	}
	return content.Draft{
		ID:        c.ID,
		ProductID: c.ProductID.String,
		Title:     c.Title,
		Body:      c.Body,
		Platform:  content.Platform(c.Platform),
		Hashtags:  tags,
		Tone:      content.Tone(c.Tone),
		Status:    content.Status(c.Status),
		CreatedAt: c.CreatedAt,
	}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func decodeList(data string) ([]string, error) {
	out := []string{}
	if data == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, err
	}
	return out, nil
}
