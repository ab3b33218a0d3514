// Package search implements the in-memory filter/sort/paginate pipeline
// applied to the full dog listing. It operates on a whole-table scan by
// design: the dataset is small and simplicity wins over indexing here.
package search

import (
	"net/url"
	"strconv"
	"strings"

	"pupper-backend/domain/entities"
	"pupper-backend/pkg/utils"
)

// Filters is the transient, request-scoped set of predicates for one
// listing request. A zero value means "not applied" for every field.
type Filters struct {
	Search  string
	State   string
	City    string
	Color   string
	Status  string
	Species string
	Shelter string
	Tags    string

	IsLabrador *bool

	MinWeight *float64
	MaxWeight *float64
	MinAge    *float64
	MaxAge    *float64

	MinWagCount   *int
	MaxGrowlCount *int

	EntryDateFrom string
	EntryDateTo   string
}

// ParseFilters extracts filter predicates from query parameters.
// Numeric parameters that fail to parse are ignored rather than
// rejected; empty parameters are never applied.
func ParseFilters(q url.Values) Filters {
	f := Filters{
		Search:        q.Get("search"),
		State:         q.Get("state"),
		City:          q.Get("city"),
		Color:         q.Get("color"),
		Status:        q.Get("status"),
		Species:       q.Get("species"),
		Shelter:       q.Get("shelter"),
		Tags:          q.Get("tags"),
		EntryDateFrom: q.Get("entry_date_from"),
		EntryDateTo:   q.Get("entry_date_to"),
	}

	f.MinWeight = parseFloat(q.Get("min_weight"))
	f.MaxWeight = parseFloat(q.Get("max_weight"))
	f.MinAge = parseFloat(q.Get("min_age"))
	f.MaxAge = parseFloat(q.Get("max_age"))
	f.MinWagCount = parseInt(q.Get("min_wag_count"))
	f.MaxGrowlCount = parseInt(q.Get("max_growl_count"))

	if raw := q.Get("is_labrador"); raw != "" {
		v := parseBool(raw)
		f.IsLabrador = &v
	}

	return f
}

// Apply returns the subset of dogs matching every supplied predicate
func Apply(dogs []entities.Dog, f Filters) []entities.Dog {
	filtered := make([]entities.Dog, 0, len(dogs))
	for _, dog := range dogs {
		if matches(dog, f) {
			filtered = append(filtered, dog)
		}
	}
	return filtered
}

func matches(d entities.Dog, f Filters) bool {
	if !matchesSearch(d, f.Search) {
		return false
	}

	if f.State != "" && !strings.EqualFold(d.State, f.State) {
		return false
	}
	if f.Status != "" && !strings.EqualFold(string(d.Status), f.Status) {
		return false
	}

	if !containsFold(d.City, f.City) {
		return false
	}
	if !containsFold(d.DogColor, f.Color) {
		return false
	}
	if !containsFold(d.DogSpecies, f.Species) {
		return false
	}
	if !containsFold(d.ShelterName, f.Shelter) {
		return false
	}

	if f.MinWeight != nil && d.DogWeight < *f.MinWeight {
		return false
	}
	if f.MaxWeight != nil && d.DogWeight > *f.MaxWeight {
		return false
	}

	age := dogAge(d)
	if f.MinAge != nil && age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && age > *f.MaxAge {
		return false
	}

	if f.MinWagCount != nil && d.WagCount < *f.MinWagCount {
		return false
	}
	if f.MaxGrowlCount != nil && d.GrowlCount > *f.MaxGrowlCount {
		return false
	}

	if f.IsLabrador != nil && d.IsLabrador != *f.IsLabrador {
		return false
	}

	if !matchesEntryDate(d, f.EntryDateFrom, f.EntryDateTo) {
		return false
	}

	if !matchesTags(d, f.Tags) {
		return false
	}

	return true
}

// matchesSearch is the free-text keyword predicate: the dog matches if
// the query appears, case-insensitively, in any searched field
func matchesSearch(d entities.Dog, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)

	searchable := []string{
		d.DogName,
		d.DogSpecies,
		d.DogDescription,
		d.DogColor,
		string(d.Status),
		d.ShelterName,
		d.City,
		d.State,
	}
	for _, field := range searchable {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesEntryDate applies inclusive day-granularity bounds. A bound or
// record date that does not parse leaves that side of the check
// unapplied.
func matchesEntryDate(d entities.Dog, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	entry, err := utils.ParseDate(d.ShelterEntryDate)
	if err != nil {
		return true
	}
	if from != "" {
		if fromDate, err := utils.ParseDate(from); err == nil && entry.Before(fromDate) {
			return false
		}
	}
	if to != "" {
		if toDate, err := utils.ParseDate(to); err == nil && entry.After(toDate) {
			return false
		}
	}
	return true
}

// matchesTags takes a comma-separated tag list and matches if any
// requested tag appears as a substring of the dog's tags
func matchesTags(d entities.Dog, raw string) bool {
	if raw == "" {
		return true
	}
	joined := strings.ToLower(strings.Join(d.Tags, " "))
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" && strings.Contains(joined, tag) {
			return true
		}
	}
	return false
}

func dogAge(d entities.Dog) float64 {
	if d.DogAgeYears > 0 {
		return d.DogAgeYears
	}
	return utils.AgeYears(d.DogBirthday)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Applied echoes every non-empty filter parameter as received,
// excluding the paging and sorting controls
func Applied(q url.Values) map[string]string {
	applied := make(map[string]string)
	for key, values := range q {
		switch key {
		case "page", "limit", "sort_by", "sort_order":
			continue
		}
		if len(values) > 0 && values[0] != "" {
			applied[key] = values[0]
		}
	}
	return applied
}
