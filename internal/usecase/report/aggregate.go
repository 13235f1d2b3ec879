package report

import (
	"math"
	"sort"
	"time"

	"sewa-backend/internal/domain/donation"
)

// TrendSelector picks the timestamp a donation is bucketed by. Supplier
// views group by creation, recipient views by acceptance.
type TrendSelector func(d donation.Donation) time.Time

func ByCreatedAt(d donation.Donation) time.Time { return d.CreatedAt }

func ByAcceptedAt(d donation.Donation) time.Time {
	if d.AcceptedAt != nil {
		return *d.AcceptedAt
	}
	return d.CreatedAt
}

// TrendShape selects the output layout of MonthlyTrend.
type TrendShape int

const (
	// ShapeSparse emits only months that appear, in order of first
	// appearance while iterating the input.
	ShapeSparse TrendShape = iota
	// ShapeFixed12 emits all twelve calendar months, January first,
	// zero-filled. Kept for the legacy hotel dashboard.
	ShapeFixed12
)

// MonthlyTrend folds donations into per-month buckets. One fold serves
// every view; callers vary only the timestamp selector and the shape.
func MonthlyTrend(ds []donation.Donation, sel TrendSelector, shape TrendShape) []MonthlyBucket {
	if shape == ShapeFixed12 {
		out := make([]MonthlyBucket, 12)
		for i := range out {
			out[i].Month = time.Month(i + 1).String()[:3]
		}
		for _, d := range ds {
			i := int(sel(d).Month()) - 1
			out[i].Donations++
			out[i].Servings += d.Servings
		}
		return out
	}

	idx := map[string]int{}
	var out []MonthlyBucket
	for _, d := range ds {
		m := sel(d).Month().String()[:3]
		i, ok := idx[m]
		if !ok {
			i = len(out)
			idx[m] = i
			out = append(out, MonthlyBucket{Month: m})
		}
		out[i].Donations++
		out[i].Servings += d.Servings
	}
	return out
}

// Presentation colors for the known food categories; anything else gets
// the fallback.
const (
	colorVeg      = "#10b981"
	colorNonVeg   = "#3b82f6"
	colorVegan    = "#8b5cf6"
	colorFallback = "#6b7280"
)

func categoryColor(foodType string) string {
	switch foodType {
	case donation.FoodTypeVeg:
		return colorVeg
	case donation.FoodTypeNonVeg:
		return colorNonVeg
	case donation.FoodTypeVegan:
		return colorVegan
	default:
		return colorFallback
	}
}

// CategoryBreakdown counts donations per food type in first-appearance
// order. Missing types land in the "Other" bucket.
func CategoryBreakdown(ds []donation.Donation) []CategoryCount {
	idx := map[string]int{}
	var out []CategoryCount
	for _, d := range ds {
		t := d.FoodType
		if t == "" {
			t = "Other"
		}
		i, ok := idx[t]
		if !ok {
			i = len(out)
			idx[t] = i
			out = append(out, CategoryCount{Type: t, Color: categoryColor(d.FoodType)})
		}
		out[i].Count++
	}
	return out
}

// PartnerKey yields the grouping identity and display name of a
// donation's counterpart. Grouping is by stable id where one exists, so
// two partners sharing a display name stay distinct.
type PartnerKey func(d donation.Donation) (key, name string)

func ByNgo(d donation.Donation) (string, string) {
	name := d.AcceptedByNgo
	if name == "" {
		name = "Unknown"
	}
	if d.AcceptedByNgoID != "" {
		return d.AcceptedByNgoID, name
	}
	return name, name
}

func ByHotel(d donation.Donation) (string, string) {
	name := d.HotelName
	if name == "" {
		name = "Unknown"
	}
	if d.HotelID != "" {
		return d.HotelID, name
	}
	return name, name
}

// PartnerBreakdown folds per-counterpart donation counts and servings,
// sorted by donation count descending. Ties fall back to servings, then
// first appearance, so the output is deterministic. topN <= 0 means no cap.
func PartnerBreakdown(ds []donation.Donation, key PartnerKey, topN int) []PartnerStats {
	type entry struct {
		PartnerStats
		order int
	}
	idx := map[string]int{}
	var entries []entry
	for _, d := range ds {
		k, name := key(d)
		i, ok := idx[k]
		if !ok {
			i = len(entries)
			idx[k] = i
			entries = append(entries, entry{PartnerStats: PartnerStats{Name: name}, order: i})
		}
		entries[i].Donations++
		entries[i].Servings += d.Servings
	}
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].Donations != entries[b].Donations {
			return entries[a].Donations > entries[b].Donations
		}
		if entries[a].Servings != entries[b].Servings {
			return entries[a].Servings > entries[b].Servings
		}
		return entries[a].order < entries[b].order
	})
	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	out := make([]PartnerStats, len(entries))
	for i, e := range entries {
		out[i] = e.PartnerStats
	}
	return out
}

// DistinctPartnerCount is the cardinality of counterpart identities,
// deduplicated by the stable key (id where available), not display name.
func DistinctPartnerCount(ds []donation.Donation, key PartnerKey) int {
	seen := map[string]struct{}{}
	for _, d := range ds {
		k, _ := key(d)
		seen[k] = struct{}{}
	}
	return len(seen)
}

// AreaDistribution folds servings per pickup area with each area's share
// of total servings, rounded to one decimal. A zero total yields all-zero
// percentages, never NaN.
func AreaDistribution(ds []donation.Donation) []AreaStats {
	idx := map[string]int{}
	var out []AreaStats
	total := 0
	for _, d := range ds {
		area := d.PickupAddress
		if area == "" {
			area = "Unknown"
		}
		i, ok := idx[area]
		if !ok {
			i = len(out)
			idx[area] = i
			out = append(out, AreaStats{Area: area})
		}
		out[i].Servings += d.Servings
		total += d.Servings
	}
	if total > 0 {
		for i := range out {
			out[i].Percentage = math.Round(float64(out[i].Servings)/float64(total)*1000) / 10
		}
	}
	return out
}

func sumServings(ds []donation.Donation) int {
	total := 0
	for _, d := range ds {
		total += d.Servings
	}
	return total
}

// periodStart maps a coarse period selector to the lower bound of the
// reporting window. Unrecognized selectors fall back to the epoch ("all
// time") on purpose; that is the established policy, not an error.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	case "quarter":
		return now.AddDate(0, -3, 0)
	case "year":
		return now.AddDate(-1, 0, 0)
	default:
		return time.Unix(0, 0).UTC()
	}
}
