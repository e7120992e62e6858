// Package stats derives chart-ready summaries from a snapshot of the
// record store.
//
// All functions are pure: they never touch storage, never mutate their
// inputs and are total over empty collections. Degenerate inputs
// produce empty results, never an error.
package stats

import (
	"sort"
	"strings"

	"github.com/namecard/backend/internal/directory"
	"github.com/namecard/backend/internal/models"
	"github.com/namecard/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Name and color of the synthetic bucket for contacts without a
// category.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "999999"
)

// CategoryData is one bucket of the category distribution chart.
type CategoryData struct {
	Name  string `json:"name" example:"Work"`
	Count int    `json:"count" example:"2"`
	Color string `json:"color" example:"007AFF"` // RGB hex without leading #
}

// Percentage returns the share of this bucket of the total passed in,
// in percent. A total of zero yields zero.
func (d CategoryData) Percentage(total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(d.Count)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(decimal.NewFromInt(100))
}

// CategoryDistribution counts contacts per category.
//
// Buckets appear in the order the categories are passed in, followed by
// a synthetic "Uncategorized" bucket for contacts without a category.
// Buckets with a count of zero are dropped, so the counts of the
// returned buckets always sum up to the number of input contacts.
func CategoryDistribution(contacts []models.Contact, categories []models.Category) []CategoryData {
	data := make([]CategoryData, 0, len(categories)+1)

	for _, category := range categories {
		count := 0
		for _, contact := range contacts {
			if contact.CategoryID != nil && *contact.CategoryID == category.ID {
				count++
			}
		}

		if count > 0 {
			data = append(data, CategoryData{
				Name:  category.Name,
				Count: count,
				Color: category.ColorHex,
			})
		}
	}

	uncategorized := 0
	for _, contact := range contacts {
		if contact.CategoryID == nil {
			uncategorized++
		}
	}

	if uncategorized > 0 {
		data = append(data, CategoryData{
			Name:  UncategorizedName,
			Count: uncategorized,
			Color: UncategorizedColor,
		})
	}

	return data
}

// TimeSeriesData is the number of contacts added in one calendar month.
type TimeSeriesData struct {
	Date   types.Month `json:"date" example:"2025-09-01T00:00:00Z"` // Start of the month
	Count  int         `json:"count" example:"3"`
	Period string      `json:"period" example:"Sep 2025"` // Human readable label for the month
}

// ContactsAddedOverTime groups contacts by the calendar month of their
// DateAdded, sorted ascending. Months without contacts produce no
// entry, the series is not zero-filled.
func ContactsAddedOverTime(contacts []models.Contact) []TimeSeriesData {
	counts := make(map[types.Month]int)
	for _, contact := range contacts {
		counts[types.MonthOf(contact.DateAdded)]++
	}

	data := make([]TimeSeriesData, 0, len(counts))
	for month, count := range counts {
		data = append(data, TimeSeriesData{
			Date:   month,
			Count:  count,
			Period: month.Label(),
		})
	}

	sort.Slice(data, func(i, j int) bool {
		return data[i].Date.Before(data[j].Date)
	})

	return data
}

// FieldCompletenessData reports for one contact field how many
// contacts have it filled in.
type FieldCompletenessData struct {
	Field          string `json:"field" example:"Email"`
	CompletedCount int    `json:"completedCount" example:"12"`
	TotalCount     int    `json:"totalCount" example:"17"`
}

// Percentage returns the completeness in percent, zero for an empty
// contact set.
func (d FieldCompletenessData) Percentage() decimal.Decimal {
	if d.TotalCount <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(d.CompletedCount)).
		Div(decimal.NewFromInt(int64(d.TotalCount))).
		Mul(decimal.NewFromInt(100))
}

// FieldCompleteness reports how many contacts have each of the five
// optional reachability fields filled in. An empty contact set yields
// an empty result, not five zero rows.
func FieldCompleteness(contacts []models.Contact) []FieldCompletenessData {
	if len(contacts) == 0 {
		return []FieldCompletenessData{}
	}

	fields := []struct {
		name  string
		value func(models.Contact) string
	}{
		{"Email", func(c models.Contact) string { return c.Email }},
		{"Phone", func(c models.Contact) string { return c.Phone }},
		{"Organization", func(c models.Contact) string { return c.Organization }},
		{"Website", func(c models.Contact) string { return c.Website }},
		{"Address", func(c models.Contact) string { return c.Address }},
	}

	data := make([]FieldCompletenessData, 0, len(fields))
	for _, field := range fields {
		completed := 0
		for _, contact := range contacts {
			if field.value(contact) != "" {
				completed++
			}
		}

		data = append(data, FieldCompletenessData{
			Field:          field.name,
			CompletedCount: completed,
			TotalCount:     len(contacts),
		})
	}

	return data
}

// ContactTypeData is one bucket of the directory type distribution.
type ContactTypeData struct {
	Type  string `json:"type" example:"Teacher"`
	Count int    `json:"count" example:"1"`
}

// TypeDistribution groups the people directory by person type. The
// type label is the singular of the directory group name ("Teachers"
// becomes "Teacher"), buckets are sorted by label.
func TypeDistribution(people []directory.Person) []ContactTypeData {
	counts := make(map[directory.PersonType]int)
	for _, person := range people {
		counts[person.Type]++
	}

	data := make([]ContactTypeData, 0, len(counts))
	for personType, count := range counts {
		data = append(data, ContactTypeData{
			Type:  strings.TrimSuffix(string(personType), "s"),
			Count: count,
		})
	}

	sort.Slice(data, func(i, j int) bool {
		return data[i].Type < data[j].Type
	})

	return data
}
