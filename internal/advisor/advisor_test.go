package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/generative-ai-go/genai"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetwise/internal/dates"
	"budgetwise/internal/forecast"
	"budgetwise/internal/ledger"
	"budgetwise/internal/models"
)

func samplePrompt() Prompt {
	budget := &models.Budget{
		Base:          models.Base{ID: "budget-1"},
		OwnerID:       "owner-1",
		TotalAmount:   decimal.NewFromInt(3000),
		CurrentAmount: decimal.NewFromInt(2100),
		SavingsTarget: decimal.NewFromInt(500),
		StartDate:     dates.MustParse("2024-01-01"),
		EndDate:       dates.MustParse("2024-01-31"),
	}
	expenses := []models.Expense{
		{Category: "Food", Amount: decimal.NewFromInt(600), Date: dates.MustParse("2024-01-04")},
		{Category: "Travel", Amount: decimal.NewFromInt(300), Date: dates.MustParse("2024-01-08")},
	}
	subs := []models.Subscription{
		{Name: "Music", Amount: decimal.NewFromInt(10), Cycle: models.CycleMonthly, StartDate: dates.MustParse("2023-05-12")},
	}
	summary := ledger.Aggregate(expenses, subs, budget.StartDate, budget.EndDate)
	fc := forecast.Forecast(budget, expenses, subs, dates.MustParse("2024-01-10"))
	return NewPrompt(budget, summary, subs, fc)
}

func TestBuildPrompt(t *testing.T) {
	p := samplePrompt()

	text := BuildPrompt(p)

	assert.Contains(t, text, "Budget period: 2024-01-01 to 2024-01-31")
	assert.Contains(t, text, "Total budget: 3000.00")
	assert.Contains(t, text, "Savings target: 500.00")
	assert.Contains(t, text, "Spent so far (including subscriptions): 910.00")
	assert.Contains(t, text, "- Food: 600.00")
	assert.Contains(t, text, "- Music: 10.00 Monthly (Subscription)")
	assert.Contains(t, text, "Status: ")
	assert.NotContains(t, text, "Alert:")
}

func TestBuildPrompt_Empty(t *testing.T) {
	text := BuildPrompt(Prompt{Forecast: forecast.NoBudget()})

	assert.Contains(t, text, "Spending by category:\n- none recorded")
	assert.Contains(t, text, "Subscriptions:\n- none")
}

func TestGeminiGenerator_Unavailable(t *testing.T) {
	g := NewGeminiGenerator("", "")

	assert.False(t, g.IsAvailable())
	_, err := g.Generate(context.Background(), samplePrompt())
	assert.Error(t, err)

	var nilGen *GeminiGenerator
	assert.False(t, nilGen.IsAvailable())
	assert.True(t, NewGeminiGenerator("key", "").IsAvailable())
}

func TestResponseText(t *testing.T) {
	t.Run("joins text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("Cut dining out. "), genai.Text("Keep saving.\n")}},
			}},
		}
		text, err := responseText(resp)
		require.NoError(t, err)
		assert.Equal(t, "Cut dining out. Keep saving.", text)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := responseText(&genai.GenerateContentResponse{})
		assert.Error(t, err)
	})

	t.Run("blank text", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("  ")}}}},
		}
		_, err := responseText(resp)
		assert.Error(t, err)
	})
}

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, ttl), mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Hour)
	budget := &models.Budget{Base: models.Base{ID: "budget-1"}, OwnerID: "owner-1", Version: 3}
	key := Key(budget, nil)

	assert.Equal(t, "advice:owner-1:budget-1:3:0-0", key)

	_, found, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, key, "Spend less on food."))
	advice, found, err := cache.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Spend less on food.", advice)

	mr.FastForward(2 * time.Hour)
	_, found, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found, "advice should expire after the TTL")
}

func TestKey_ChangesWithSubscriptions(t *testing.T) {
	budget := &models.Budget{Base: models.Base{ID: "budget-1"}, OwnerID: "owner-1", Version: 3}
	at := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	gym := models.Subscription{Base: models.Base{ID: "s1", UpdatedAt: at}}
	music := models.Subscription{Base: models.Base{ID: "s2", UpdatedAt: at.Add(time.Hour)}}

	none := Key(budget, nil)
	one := Key(budget, []models.Subscription{gym})
	two := Key(budget, []models.Subscription{music, gym})

	assert.NotEqual(t, none, one)
	assert.NotEqual(t, one, two)
	assert.Equal(t, one, Key(budget, []models.Subscription{gym}))

	budget.Version++
	assert.NotEqual(t, two, Key(budget, []models.Subscription{music, gym}))
}

func TestRedisCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "advice:x")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}
