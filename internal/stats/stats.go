// Package stats derives dashboard summary figures from account
// snapshots. Every function operates on the full snapshot, never the
// filtered or paginated view, and treats an unparseable date as
// "exclude this record and warn" rather than an error.
package stats

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
)

// Aggregator computes summary statistics over an account snapshot.
type Aggregator struct {
	logger *slog.Logger
}

// New creates an aggregator.
func New(logger *slog.Logger) *Aggregator {
	return &Aggregator{logger: logger.With("component", "stats")}
}

// Summary bundles the dashboard headline figures.
type Summary struct {
	Total             int      `json:"total"`
	YearlyGrowth      *float64 `json:"yearlyGrowth"`
	ExpiredCount      int      `json:"expiredAccountsCount"`
	ExpiringThisMonth int      `json:"totalExpiringAccounts"`
}

// GrowthPoint is one cumulative registration total at a year-month key.
type GrowthPoint struct {
	Date  string `json:"date"`
	Total int    `json:"totalUsers"`
}

// DayCount is the registration count for one day of a month.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// MonthCount is the registration count for one month of a year.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StatusBreakdown splits the account base into active and expired.
type StatusBreakdown struct {
	Active  int `json:"active"`
	Expired int `json:"expired"`
}

// Summarize computes the headline figures in one pass-friendly bundle.
func (g *Aggregator) Summarize(accounts []domain.Account, now time.Time) Summary {
	return Summary{
		Total:             len(accounts),
		YearlyGrowth:      g.YearlyGrowth(accounts),
		ExpiredCount:      g.ExpiredCount(accounts, now),
		ExpiringThisMonth: g.ExpiringThisMonthCount(accounts, now),
	}
}

// ExpiredCount counts accounts whose end date is strictly before now.
func (g *Aggregator) ExpiredCount(accounts []domain.Account, now time.Time) int {
	count := 0
	for i := range accounts {
		end, ok := g.endTime(&accounts[i])
		if ok && end.Before(now) {
			count++
		}
	}
	return count
}

// ExpiringThisMonthCount counts accounts whose end date falls in the
// current calendar month.
func (g *Aggregator) ExpiringThisMonthCount(accounts []domain.Account, now time.Time) int {
	count := 0
	for i := range accounts {
		end, ok := g.endTime(&accounts[i])
		if ok && end.Year() == now.Year() && end.Month() == now.Month() {
			count++
		}
	}
	return count
}

// StatusCounts splits the account base into active and expired, where
// active is everything not yet expired (including accounts with no end
// date at all).
func (g *Aggregator) StatusCounts(accounts []domain.Account, now time.Time) StatusBreakdown {
	expired := g.ExpiredCount(accounts, now)
	return StatusBreakdown{
		Active:  len(accounts) - expired,
		Expired: expired,
	}
}

// YearlyGrowth returns the percentage change in registrations between
// the two most recent calendar years with data, rounded to two decimal
// places, or nil when fewer than two years exist.
func (g *Aggregator) YearlyGrowth(accounts []domain.Account) *float64 {
	byYear := map[int]int{}
	for i := range accounts {
		created, ok := g.createdTime(&accounts[i])
		if !ok {
			continue
		}
		byYear[created.Year()]++
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	if len(years) < 2 {
		return nil
	}
	sort.Ints(years)

	latest := float64(byYear[years[len(years)-1]])
	previous := float64(byYear[years[len(years)-2]])
	if previous == 0 {
		return nil
	}

	growth := math.Round(((latest-previous)/previous)*100*100) / 100
	return &growth
}

// GrowthSeries returns the cumulative registration total at each
// year-month key, restricted to the selected year. The running total
// accumulates across the whole history, so January of a later year
// starts from everything registered before it.
func (g *Aggregator) GrowthSeries(accounts []domain.Account, year int) []GrowthPoint {
	type entry struct {
		key     string
		created time.Time
	}
	entries := make([]entry, 0, len(accounts))
	for i := range accounts {
		created, ok := g.createdTime(&accounts[i])
		if !ok {
			continue
		}
		entries = append(entries, entry{
			key:     fmt.Sprintf("%04d-%02d", created.Year(), int(created.Month())),
			created: created,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].created.Before(entries[j].created)
	})

	points := []GrowthPoint{}
	total := 0
	prefix := fmt.Sprintf("%04d-", year)
	for _, e := range entries {
		total++
		if len(e.key) < len(prefix) || e.key[:len(prefix)] != prefix {
			continue
		}
		if n := len(points); n > 0 && points[n-1].Date == e.key {
			points[n-1].Total = total
		} else {
			points = append(points, GrowthPoint{Date: e.key, Total: total})
		}
	}
	return points
}

// DailyHistogram counts registrations per day of the given month
// (month is 0-indexed). The result always has exactly as many entries
// as the month has days; days without registrations are zero.
func (g *Aggregator) DailyHistogram(accounts []domain.Account, year, month0 int) []DayCount {
	byDay := map[int]int{}
	for i := range accounts {
		created, ok := g.createdTime(&accounts[i])
		if !ok {
			continue
		}
		if created.Year() != year || int(created.Month())-1 != month0 {
			continue
		}
		byDay[created.Day()]++
	}

	days := daysInMonth(year, month0)
	out := make([]DayCount, 0, days)
	for d := 1; d <= days; d++ {
		out = append(out, DayCount{
			Day:   fmt.Sprintf("%02d", d),
			Count: byDay[d],
		})
	}
	return out
}

// MonthlyHistogram counts registrations per month of the given year,
// always returning twelve entries.
func (g *Aggregator) MonthlyHistogram(accounts []domain.Account, year int) []MonthCount {
	byMonth := map[time.Month]int{}
	for i := range accounts {
		created, ok := g.createdTime(&accounts[i])
		if !ok {
			continue
		}
		if created.Year() != year {
			continue
		}
		byMonth[created.Month()]++
	}

	out := make([]MonthCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthCount{
			Month: m.String()[:3],
			Count: byMonth[m],
		})
	}
	return out
}

// daysInMonth returns the day count of a 0-indexed month.
func daysInMonth(year, month0 int) int {
	first := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

func (g *Aggregator) createdTime(a *domain.Account) (time.Time, bool) {
	t, err := a.CreatedTime()
	if err != nil {
		g.logger.Warn("excluding account with unparseable created_at",
			"account_id", a.ID, "error", err)
		return time.Time{}, false
	}
	return t, true
}

func (g *Aggregator) endTime(a *domain.Account) (time.Time, bool) {
	if !a.HasEndDate() {
		return time.Time{}, false
	}
	t, err := a.EndTime()
	if err != nil {
		g.logger.Warn("excluding account with unparseable end_date",
			"account_id", a.ID, "error", err)
		return time.Time{}, false
	}
	return t, true
}
