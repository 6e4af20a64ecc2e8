package db

import (
	"context"
	"testing"
	"time"

	"github.com/macaddy2/leadskylab/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() content.ProductProfile {
	return content.ProductProfile{
		Name:           "  Lumen ",
		URL:            "https://lumen.example",
		Description:    "A focus timer for remote teams.",
		ValueProps:     []string{"Cut meeting overload", " ", "Track deep work"},
		TargetAudience: "remote engineering managers",
		Keywords:       []string{"focus", ""},
		DefaultTone:    content.ToneFriendly,
		Competitors:    []string{"Clockwise"},
	}
}

func TestStore_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("save and find", func(t *testing.T) {
		store := NewTestStore(t)

		saved, err := store.SaveProduct(ctx, testProfile())
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, "Lumen", saved.Name)
		assert.Equal(t, []string{"Cut meeting overload", "Track deep work"}, saved.ValueProps)
		assert.Equal(t, []string{"focus"}, saved.Keywords)

		byID, err := store.FindProduct(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved.Name, byID.Name)
		assert.Equal(t, saved.URL, byID.URL)
		assert.Equal(t, saved.ValueProps, byID.ValueProps)
		assert.Equal(t, saved.Competitors, byID.Competitors)
		assert.Equal(t, content.ToneFriendly, byID.DefaultTone)
		assert.WithinDuration(t, saved.CreatedAt, byID.CreatedAt, time.Second)

		byName, err := store.FindProduct(ctx, "lumen")
		require.NoError(t, err)
		assert.Equal(t, saved.ID, byName.ID)
	})

	t.Run("not found", func(t *testing.T) {
		store := NewTestStore(t)
		_, err := store.FindProduct(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid profile", func(t *testing.T) {
		store := NewTestStore(t)
		_, err := store.SaveProduct(ctx, content.ProductProfile{Name: "No description"})
		assert.Error(t, err)

		count, err := store.CountProducts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("duplicate name", func(t *testing.T) {
		store := NewTestStore(t)
		_, err := store.SaveProduct(ctx, testProfile())
		require.NoError(t, err)
		_, err = store.SaveProduct(ctx, testProfile())
		assert.Error(t, err)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		store := NewTestStore(t)
		for _, name := range []string{"Zeta", "Alpha"} {
			_, err := store.SaveProduct(ctx, content.ProductProfile{Name: name, Description: "d"})
			require.NoError(t, err)
		}

		products, err := store.Products(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Alpha", products[0].Name)
		assert.Empty(t, products[0].ValueProps)
		assert.NotNil(t, products[0].ValueProps)
	})
}

func TestStore_Drafts(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		store := NewTestStore(t)
		product, err := store.SaveProduct(ctx, testProfile())
		require.NoError(t, err)

		d := content.NewDraft("Launch", "We are live!", content.PlatformTwitter, content.ToneBold, []string{"#launch"})
		d.ProductID = product.ID
		require.NoError(t, store.SaveDraft(ctx, d))

		got, err := store.Draft(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.Title, got.Title)
		assert.Equal(t, d.Body, got.Body)
		assert.Equal(t, content.PlatformTwitter, got.Platform)
		assert.Equal(t, content.ToneBold, got.Tone)
		assert.Equal(t, []string{"#launch"}, got.Hashtags)
		assert.Equal(t, content.StatusDraft, got.Status)
		assert.Equal(t, product.ID, got.ProductID)
	})

	t.Run("only drafts can be saved", func(t *testing.T) {
		store := NewTestStore(t)
		d := content.NewDraft("t", "b", content.PlatformEmail, content.ToneCasual, nil)
		d.Status = content.StatusPublished
		assert.Error(t, store.SaveDraft(ctx, d))
	})

	t.Run("unknown product is rejected", func(t *testing.T) {
		store := NewTestStore(t)
		d := content.NewDraft("t", "b", content.PlatformEmail, content.ToneCasual, nil)
		d.ProductID = "ghost"
		assert.Error(t, store.SaveDraft(ctx, d))
	})

	t.Run("batch save fills ids", func(t *testing.T) {
		store := NewTestStore(t)
		drafts := []content.Draft{
			{Title: "One", Body: "a", Platform: content.PlatformTwitter, Tone: content.ToneBold},
			{Title: "Two", Body: "b", Platform: content.PlatformEmail, Tone: content.ToneCasual},
		}

		saved, err := store.SaveDrafts(ctx, drafts...)
		require.NoError(t, err)
		require.Len(t, saved, 2)
		for _, d := range saved {
			assert.NotEmpty(t, d.ID)
			assert.Equal(t, content.StatusDraft, d.Status)
		}

		count, err := store.CountContents(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("batch save is all or nothing", func(t *testing.T) {
		store := NewTestStore(t)
		good := content.NewDraft("ok", "b", content.PlatformEmail, content.ToneCasual, nil)
		bad := content.NewDraft("bad", "b", content.PlatformEmail, content.ToneCasual, nil)
		bad.ProductID = "ghost"

		_, err := store.SaveDrafts(ctx, good, bad)
		require.Error(t, err)

		count, err := store.CountContents(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		_, err = store.Draft(ctx, good.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		store := NewTestStore(t)
		_, err := store.Draft(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list with filters", func(t *testing.T) {
		store := NewTestStore(t)
		base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		for i, p := range []content.Platform{content.PlatformTwitter, content.PlatformLinkedIn, content.PlatformTwitter} {
			d := content.NewDraft("t", "b", p, content.ToneCasual, nil)
			d.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, store.SaveDraft(ctx, d))
		}

		all, err := store.ListDrafts(ctx, DraftFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.True(t, all[0].CreatedAt.After(all[2].CreatedAt))

		twitter, err := store.ListDrafts(ctx, DraftFilter{Platform: content.PlatformTwitter})
		require.NoError(t, err)
		assert.Len(t, twitter, 2)

		limited, err := store.ListDrafts(ctx, DraftFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, limited, 1)

		_, err = store.TransitionDraft(ctx, all[0].ID, content.StatusReview)
		require.NoError(t, err)
		review, err := store.ListDrafts(ctx, DraftFilter{Status: content.StatusReview})
		require.NoError(t, err)
		require.Len(t, review, 1)
		assert.Equal(t, all[0].ID, review[0].ID)
	})
}

func TestStore_TransitionDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("full lifecycle", func(t *testing.T) {
		store := NewTestStore(t)
		d := content.NewDraft("t", "b", content.PlatformReddit, content.ToneInformative, nil)
		require.NoError(t, store.SaveDraft(ctx, d))

		for _, next := range []content.Status{
			content.StatusReview,
			content.StatusApproved,
			content.StatusScheduled,
			content.StatusPublished,
		} {
			updated, err := store.TransitionDraft(ctx, d.ID, next)
			require.NoError(t, err)
			assert.Equal(t, next, updated.Status)
		}

		got, err := store.Draft(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, content.StatusPublished, got.Status)
	})

	t.Run("reject from review", func(t *testing.T) {
		store := NewTestStore(t)
		d := content.NewDraft("t", "b", content.PlatformReddit, content.ToneInformative, nil)
		require.NoError(t, store.SaveDraft(ctx, d))

		_, err := store.TransitionDraft(ctx, d.ID, content.StatusReview)
		require.NoError(t, err)
		updated, err := store.TransitionDraft(ctx, d.ID, content.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, content.StatusRejected, updated.Status)

		_, err = store.TransitionDraft(ctx, d.ID, content.StatusReview)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Contains(t, err.Error(), "already rejected")
	})

	t.Run("skipping a step is invalid", func(t *testing.T) {
		store := NewTestStore(t)
		d := content.NewDraft("t", "b", content.PlatformReddit, content.ToneInformative, nil)
		require.NoError(t, store.SaveDraft(ctx, d))

		_, err := store.TransitionDraft(ctx, d.ID, content.StatusPublished)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		got, err := store.Draft(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, content.StatusDraft, got.Status)
	})

	t.Run("missing draft", func(t *testing.T) {
		store := NewTestStore(t)
		_, err := store.TransitionDraft(ctx, "missing", content.StatusReview)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_Summary(t *testing.T) {
	ctx := context.Background()
	store := NewTestStore(t)

	_, err := store.SaveProduct(ctx, testProfile())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		d := content.NewDraft("t", "b", content.PlatformTwitter, content.ToneCasual, nil)
		require.NoError(t, store.SaveDraft(ctx, d))
		if i == 0 {
			_, err := store.TransitionDraft(ctx, d.ID, content.StatusReview)
			require.NoError(t, err)
		}
	}

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Products)
	assert.Equal(t, int64(3), summary.Drafts)
	assert.Equal(t, int64(2), summary.ByStatus[content.StatusDraft])
	assert.Equal(t, int64(1), summary.ByStatus[content.StatusReview])
}
