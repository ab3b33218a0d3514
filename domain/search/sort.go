package search

import (
	"sort"
	"strings"
	"time"

	"pupper-backend/domain/entities"
	"pupper-backend/pkg/utils"
)

// Sort keys accepted by the listing endpoint
const (
	SortByCreatedAt   = "created_at"
	SortByUpdatedAt   = "updated_at"
	SortByName        = "dog_name"
	SortByAge         = "dog_age_years"
	SortByWeight      = "dog_weight"
	SortByWagCount    = "wag_count"
	SortByGrowlCount  = "growl_count"
	SortByEntryDate   = "shelter_entry_date"
	SortByBirthday    = "dog_birthday"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Sort orders dogs by a single key and direction, in place. The sort is
// stable: dogs with equal keys keep their input order. An unknown key
// falls back to creation time descending; the resolved key and order
// are returned so the response can echo what was actually applied.
func Sort(dogs []entities.Dog, sortBy, sortOrder string) (string, string) {
	sortBy = strings.ToLower(sortBy)
	sortOrder = strings.ToLower(sortOrder)

	if !knownSortKey(sortBy) {
		sortBy = SortByCreatedAt
		sortOrder = OrderDesc
	}
	if sortOrder != OrderAsc && sortOrder != OrderDesc {
		sortOrder = OrderDesc
	}

	less := lessFunc(dogs, sortBy)
	if sortOrder == OrderDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(dogs, less)

	return sortBy, sortOrder
}

func knownSortKey(key string) bool {
	switch key {
	case SortByCreatedAt, SortByUpdatedAt, SortByName, SortByAge,
		SortByWeight, SortByWagCount, SortByGrowlCount,
		SortByEntryDate, SortByBirthday:
		return true
	}
	return false
}

func lessFunc(dogs []entities.Dog, sortBy string) func(i, j int) bool {
	switch sortBy {
	case SortByWeight:
		return func(i, j int) bool { return dogs[i].DogWeight < dogs[j].DogWeight }
	case SortByAge:
		return func(i, j int) bool { return dogAge(dogs[i]) < dogAge(dogs[j]) }
	case SortByWagCount:
		return func(i, j int) bool { return dogs[i].WagCount < dogs[j].WagCount }
	case SortByGrowlCount:
		return func(i, j int) bool { return dogs[i].GrowlCount < dogs[j].GrowlCount }
	case SortByName:
		return func(i, j int) bool {
			return strings.ToLower(dogs[i].DogName) < strings.ToLower(dogs[j].DogName)
		}
	case SortByEntryDate:
		return func(i, j int) bool {
			return sortDate(dogs[i].ShelterEntryDate).Before(sortDate(dogs[j].ShelterEntryDate))
		}
	case SortByBirthday:
		return func(i, j int) bool {
			return sortDate(dogs[i].DogBirthday).Before(sortDate(dogs[j].DogBirthday))
		}
	case SortByUpdatedAt:
		// RFC3339 UTC timestamps order lexicographically
		return func(i, j int) bool { return dogs[i].UpdatedAt < dogs[j].UpdatedAt }
	default:
		return func(i, j int) bool { return dogs[i].CreatedAt < dogs[j].CreatedAt }
	}
}

// sortDate parses an MM/DD/YYYY field for ordering; malformed dates
// sort first
func sortDate(s string) time.Time {
	t, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}
