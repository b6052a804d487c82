package stats_test

import (
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/stats"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newAggregator() *stats.Aggregator {
	return stats.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func created(year int, month time.Month, day int) string {
	return strconv.FormatInt(time.Date(year, month, day, 10, 0, 0, 0, time.UTC).Unix(), 10)
}

func acct(id string, createdAt, endDate string) domain.Account {
	return domain.Account{
		ID:        id,
		Name:      "Account " + id,
		Email:     id + "@example.com",
		Role:      "owner",
		CreatedAt: createdAt,
		EndDate:   endDate,
	}
}

func TestYearlyGrowth(t *testing.T) {
	g := newAggregator()

	t.Run("two years with data", func(t *testing.T) {
		// 4 registrations in 2023, 5 in 2024: (5-4)/4 = 25.00%
		accounts := []domain.Account{
			acct("1", created(2023, time.January, 1), ""),
			acct("2", created(2023, time.March, 1), ""),
			acct("3", created(2023, time.July, 1), ""),
			acct("4", created(2023, time.November, 1), ""),
			acct("5", created(2024, time.January, 1), ""),
			acct("6", created(2024, time.February, 1), ""),
			acct("7", created(2024, time.May, 1), ""),
			acct("8", created(2024, time.August, 1), ""),
			acct("9", created(2024, time.December, 1), ""),
		}

		growth := g.YearlyGrowth(accounts)
		require.NotNil(t, growth)
		assert.Equal(t, 25.00, *growth)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		// 3 in 2023, 4 in 2024: 33.333... -> 33.33
		accounts := []domain.Account{
			acct("1", created(2023, time.January, 1), ""),
			acct("2", created(2023, time.February, 1), ""),
			acct("3", created(2023, time.March, 1), ""),
			acct("4", created(2024, time.January, 1), ""),
			acct("5", created(2024, time.February, 1), ""),
			acct("6", created(2024, time.March, 1), ""),
			acct("7", created(2024, time.April, 1), ""),
		}

		growth := g.YearlyGrowth(accounts)
		require.NotNil(t, growth)
		assert.Equal(t, 33.33, *growth)
	})

	t.Run("negative growth", func(t *testing.T) {
		accounts := []domain.Account{
			acct("1", created(2023, time.January, 1), ""),
			acct("2", created(2023, time.February, 1), ""),
			acct("3", created(2024, time.January, 1), ""),
		}

		growth := g.YearlyGrowth(accounts)
		require.NotNil(t, growth)
		assert.Equal(t, -50.00, *growth)
	})

	t.Run("uses the two most recent years", func(t *testing.T) {
		accounts := []domain.Account{
			acct("1", created(2020, time.January, 1), ""),
			acct("2", created(2023, time.January, 1), ""),
			acct("3", created(2024, time.January, 1), ""),
			acct("4", created(2024, time.June, 1), ""),
		}

		growth := g.YearlyGrowth(accounts)
		require.NotNil(t, growth)
		assert.Equal(t, 100.00, *growth)
	})

	t.Run("nil with a single year", func(t *testing.T) {
		accounts := []domain.Account{
			acct("1", created(2024, time.January, 1), ""),
			acct("2", created(2024, time.June, 1), ""),
		}

		assert.Nil(t, g.YearlyGrowth(accounts))
	})

	t.Run("nil with no accounts", func(t *testing.T) {
		assert.Nil(t, g.YearlyGrowth(nil))
	})
}

func TestExpiredAndExpiringCounts(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("past", created(2024, time.January, 1), "2025-01-31"),
		acct("past-this-month", created(2024, time.January, 1), "2025-06-05"),
		acct("future-this-month", created(2024, time.January, 1), "2025-06-28"),
		acct("future", created(2024, time.January, 1), "2026-03-01"),
		acct("no-end", created(2024, time.January, 1), ""),
		acct("broken", created(2024, time.January, 1), "soon"),
	}

	assert.Equal(t, 2, g.ExpiredCount(accounts, testNow))
	assert.Equal(t, 2, g.ExpiringThisMonthCount(accounts, testNow))

	breakdown := g.StatusCounts(accounts, testNow)
	assert.Equal(t, 2, breakdown.Expired)
	// Active includes accounts with no (or unparseable) end date.
	assert.Equal(t, 4, breakdown.Active)
}

func TestSummarize(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("1", created(2023, time.January, 1), "2025-01-31"),
		acct("2", created(2023, time.May, 1), ""),
		acct("3", created(2024, time.February, 1), "2025-06-20"),
		acct("4", created(2024, time.August, 1), ""),
		acct("5", created(2024, time.October, 1), ""),
	}

	summary := g.Summarize(accounts, testNow)

	assert.Equal(t, 5, summary.Total)
	require.NotNil(t, summary.YearlyGrowth)
	assert.Equal(t, 50.00, *summary.YearlyGrowth)
	assert.Equal(t, 1, summary.ExpiredCount)
	assert.Equal(t, 1, summary.ExpiringThisMonth)
}

func TestGrowthSeries(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("1", created(2024, time.November, 3), ""),
		acct("2", created(2024, time.December, 9), ""),
		acct("3", created(2025, time.January, 2), ""),
		acct("4", created(2025, time.January, 20), ""),
		acct("5", created(2025, time.March, 8), ""),
	}

	t.Run("cumulative across the year boundary", func(t *testing.T) {
		points := g.GrowthSeries(accounts, 2025)

		// January 2025 starts from the two 2024 registrations.
		require.Len(t, points, 2)
		assert.Equal(t, stats.GrowthPoint{Date: "2025-01", Total: 4}, points[0])
		assert.Equal(t, stats.GrowthPoint{Date: "2025-03", Total: 5}, points[1])
	})

	t.Run("previous year", func(t *testing.T) {
		points := g.GrowthSeries(accounts, 2024)

		require.Len(t, points, 2)
		assert.Equal(t, stats.GrowthPoint{Date: "2024-11", Total: 1}, points[0])
		assert.Equal(t, stats.GrowthPoint{Date: "2024-12", Total: 2}, points[1])
	})

	t.Run("year without data is empty", func(t *testing.T) {
		assert.Empty(t, g.GrowthSeries(accounts, 2019))
	})
}

func TestDailyHistogram(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("1", created(2025, time.June, 1), ""),
		acct("2", created(2025, time.June, 1), ""),
		acct("3", created(2025, time.June, 15), ""),
		acct("4", created(2025, time.May, 15), ""),  // other month
		acct("5", created(2024, time.June, 15), ""), // other year
	}

	// June is month0 = 5.
	hist := g.DailyHistogram(accounts, 2025, 5)

	require.Len(t, hist, 30, "June has 30 days")
	assert.Equal(t, stats.DayCount{Day: "01", Count: 2}, hist[0])
	assert.Equal(t, stats.DayCount{Day: "15", Count: 1}, hist[14])
	assert.Equal(t, stats.DayCount{Day: "30", Count: 0}, hist[29])
}

func TestDailyHistogram_LeapFebruary(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("1", created(2024, time.February, 29), ""),
	}

	hist := g.DailyHistogram(accounts, 2024, 1)

	require.Len(t, hist, 29)
	assert.Equal(t, stats.DayCount{Day: "29", Count: 1}, hist[28])
}

func TestMonthlyHistogram(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("1", created(2025, time.January, 5), ""),
		acct("2", created(2025, time.January, 25), ""),
		acct("3", created(2025, time.June, 1), ""),
		acct("4", created(2024, time.June, 1), ""), // other year
	}

	hist := g.MonthlyHistogram(accounts, 2025)

	require.Len(t, hist, 12)
	assert.Equal(t, stats.MonthCount{Month: "Jan", Count: 2}, hist[0])
	assert.Equal(t, stats.MonthCount{Month: "Jun", Count: 1}, hist[5])
	assert.Equal(t, stats.MonthCount{Month: "Dec", Count: 0}, hist[11])
}

func TestUnparseableCreatedAtExcluded(t *testing.T) {
	g := newAggregator()

	accounts := []domain.Account{
		acct("ok", created(2025, time.June, 1), ""),
		acct("bad", "not-a-timestamp", ""),
	}

	assert.Nil(t, g.YearlyGrowth(accounts), "broken record must not count as a year")

	hist := g.DailyHistogram(accounts, 2025, 5)
	assert.Equal(t, 1, hist[0].Count)

	points := g.GrowthSeries(accounts, 2025)
	require.Len(t, points, 1)
	assert.Equal(t, 1, points[0].Total)
}
