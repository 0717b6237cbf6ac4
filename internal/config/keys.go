package config

import "slices"

// valueKind is the YAML shape a top-level key must have.
type valueKind int

const (
	kindBool valueKind = iota
	kindMapping
	kindSequence
	kindInt
)

func (k valueKind) String() string {
	switch k {
	case kindBool:
		return "boolean"
	case kindMapping:
		return "mapping"
	case kindSequence:
		return "list"
	case kindInt:
		return "integer"
	default:
		return "unknown"
	}
}

type requiredKey struct {
	name string
	kind valueKind
}

// requiredKeys is checked in order; the first failure wins.
var requiredKeys = [...]requiredKey{
	{"remote", kindBool},
	{"experience_level", kindMapping},
	{"job_types", kindMapping},
	{"date", kindMapping},
	{"positions", kindSequence},
	{"locations", kindSequence},
	{"location_blacklist", kindSequence},
	{"distance", kindInt},
	{"company_blacklist", kindSequence},
	{"title_blacklist", kindSequence},
}

var (
	experienceLevelKeys = [...]string{
		"internship",
		"entry",
		"associate",
		"mid_senior_level",
		"director",
		"executive",
	}
	jobTypeKeys = [...]string{
		"full_time",
		"contract",
		"part_time",
		"temporary",
		"internship",
		"other",
		"volunteer",
	}
	dateFilterKeys    = [...]string{"all_time", "month", "week", "24_hours"}
	approvedDistances = [...]int{0, 5, 10, 25, 50, 100}
	stringListKeys    = [...]string{"positions", "locations"}
	blacklistKeys     = [...]string{"company_blacklist", "title_blacklist", "location_blacklist"}
)

// RequiredKeys returns the top-level keys of the work preferences document in validation order.
func RequiredKeys() []string {
	keys := make([]string, len(requiredKeys))
	for i, k := range requiredKeys {
		keys[i] = k.name
	}
	return keys
}

// ExperienceLevelKeys returns the experience level flags every document must set.
func ExperienceLevelKeys() []string { return slices.Clone(experienceLevelKeys[:]) }

// JobTypeKeys returns the job type flags every document must set.
func JobTypeKeys() []string { return slices.Clone(jobTypeKeys[:]) }

// DateFilterKeys returns the posting date flags every document must set.
func DateFilterKeys() []string { return slices.Clone(dateFilterKeys[:]) }

// ApprovedDistances returns the accepted search radii.
func ApprovedDistances() []int { return slices.Clone(approvedDistances[:]) }

// BlacklistKeys returns the optional keys that default to an empty list.
func BlacklistKeys() []string { return slices.Clone(blacklistKeys[:]) }

func isBlacklistKey(key string) bool {
	return slices.Contains(blacklistKeys[:], key)
}
