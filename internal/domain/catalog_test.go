package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Trends(t *testing.T) {
	t.Parallel()

	c := NewCatalog(SampleTrends(), SampleUpdates())

	assert.Len(t, c.Trends(""), 5)

	tech := c.Trends("technology")
	require.Len(t, tech, 1)
	assert.Equal(t, "AI-Enhanced Personalized Learning", tech[0].Title)

	assert.Empty(t, c.Trends("Astronomy"))
}

func TestCatalog_TrendCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	c := NewCatalog(SampleTrends(), nil)

	trend, err := c.Trend(1)
	require.NoError(t, err)
	trend.ResourcesRequired[0] = "mutated"
	trend.Adopted = true

	again, err := c.Trend(1)
	require.NoError(t, err)
	assert.Equal(t, "AI platform subscription", again.ResourcesRequired[0])
	assert.False(t, again.Adopted)
}

func TestCatalog_TrendNotFound(t *testing.T) {
	t.Parallel()

	c := NewCatalog(SampleTrends(), nil)

	_, err := c.Trend(99)
	assert.ErrorIs(t, err, ErrTrendNotFound)

	_, err = c.MarkTrendAdopted(99)
	assert.ErrorIs(t, err, ErrTrendNotFound)
}

func TestCatalog_MarkTrendAdopted(t *testing.T) {
	t.Parallel()

	c := NewCatalog(SampleTrends(), nil)

	trend, err := c.MarkTrendAdopted(3)
	require.NoError(t, err)
	assert.True(t, trend.Adopted)

	_, err = c.MarkTrendAdopted(3)
	assert.ErrorIs(t, err, ErrAlreadyAdopted)

	adopted := c.AdoptedTrends()
	require.Len(t, adopted, 1)
	assert.Equal(t, 3, adopted[0].ID)
}

func TestCatalog_UpdatesFilter(t *testing.T) {
	t.Parallel()

	c := NewCatalog(nil, SampleUpdates())
	_, err := c.MarkUpdateIntegrated(4)
	require.NoError(t, err)

	tests := []struct {
		name    string
		filter  UpdateFilter
		wantIDs []int
	}{
		{"all", UpdateFilter{}, []int{1, 2, 3, 4, 5}},
		{"high impact", UpdateFilter{Impact: ImpactHigh}, []int{1, 4}},
		{"category ignores case", UpdateFilter{Category: "curriculum"}, []int{2}},
		{"integrated", UpdateFilter{Integration: IntegrationIntegrated}, []int{4}},
		{"high and not integrated", UpdateFilter{Impact: ImpactHigh, Integration: IntegrationNotIntegrated}, []int{1}},
		{"no match", UpdateFilter{Category: "Pedagogy", Impact: ImpactLow}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []int
			for _, u := range c.Updates(tt.filter) {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalog_MarkUpdateIntegrated(t *testing.T) {
	t.Parallel()

	c := NewCatalog(nil, SampleUpdates())

	u, err := c.MarkUpdateIntegrated(2)
	require.NoError(t, err)
	assert.True(t, u.Integrated)

	_, err = c.MarkUpdateIntegrated(2)
	assert.ErrorIs(t, err, ErrAlreadyIntegrated)

	_, err = c.MarkUpdateIntegrated(42)
	assert.ErrorIs(t, err, ErrUpdateNotFound)

	_, err = c.Update(42)
	assert.ErrorIs(t, err, ErrUpdateNotFound)
}

func TestCatalog_ConcurrentAdoptionSucceedsOnce(t *testing.T) {
	t.Parallel()

	c := NewCatalog(SampleTrends(), nil)

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.MarkTrendAdopted(2); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
}

func TestParseIntegrationStatus(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]IntegrationStatus{
		"":               IntegrationAny,
		"All":            IntegrationAny,
		"integrated":     IntegrationIntegrated,
		"NOT_INTEGRATED": IntegrationNotIntegrated,
	} {
		got, err := ParseIntegrationStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseIntegrationStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidIntegrationStatus)
}
