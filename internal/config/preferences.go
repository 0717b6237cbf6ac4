package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// WorkPreferences is a validated work preferences document.
type WorkPreferences struct {
	Remote            bool             `yaml:"remote"`
	ExperienceLevel   ExperienceLevels `yaml:"experience_level"`
	JobTypes          JobTypes         `yaml:"job_types"`
	Date              DateFilters      `yaml:"date"`
	Positions         []string         `yaml:"positions"`
	Locations         []string         `yaml:"locations"`
	Distance          int              `yaml:"distance"`
	CompanyBlacklist  []string         `yaml:"company_blacklist"`
	TitleBlacklist    []string         `yaml:"title_blacklist"`
	LocationBlacklist []string         `yaml:"location_blacklist"`
}

// ExperienceLevels holds one flag per seniority level.
type ExperienceLevels struct {
	Internship     bool `yaml:"internship"`
	Entry          bool `yaml:"entry"`
	Associate      bool `yaml:"associate"`
	MidSeniorLevel bool `yaml:"mid_senior_level"`
	Director       bool `yaml:"director"`
	Executive      bool `yaml:"executive"`
}

// Enabled returns the levels set to true, in declaration order.
func (e ExperienceLevels) Enabled() []string {
	return enabled(experienceLevelKeys[:], map[string]bool{
		"internship":       e.Internship,
		"entry":            e.Entry,
		"associate":        e.Associate,
		"mid_senior_level": e.MidSeniorLevel,
		"director":         e.Director,
		"executive":        e.Executive,
	})
}

// JobTypes holds one flag per employment type.
type JobTypes struct {
	FullTime   bool `yaml:"full_time"`
	Contract   bool `yaml:"contract"`
	PartTime   bool `yaml:"part_time"`
	Temporary  bool `yaml:"temporary"`
	Internship bool `yaml:"internship"`
	Other      bool `yaml:"other"`
	Volunteer  bool `yaml:"volunteer"`
}

// Enabled returns the job types set to true, in declaration order.
func (j JobTypes) Enabled() []string {
	return enabled(jobTypeKeys[:], map[string]bool{
		"full_time":  j.FullTime,
		"contract":   j.Contract,
		"part_time":  j.PartTime,
		"temporary":  j.Temporary,
		"internship": j.Internship,
		"other":      j.Other,
		"volunteer":  j.Volunteer,
	})
}

// DateFilters holds one flag per posting-date window.
type DateFilters struct {
	AllTime bool `yaml:"all_time"`
	Month   bool `yaml:"month"`
	Week    bool `yaml:"week"`
	Day     bool `yaml:"24_hours"`
}

// Enabled returns the date windows set to true, in declaration order.
func (d DateFilters) Enabled() []string {
	return enabled(dateFilterKeys[:], map[string]bool{
		"all_time": d.AllTime,
		"month":    d.Month,
		"week":     d.Week,
		"24_hours": d.Day,
	})
}

func enabled(order []string, flags map[string]bool) []string {
	out := make([]string, 0, len(order))
	for _, key := range order {
		if flags[key] {
			out = append(out, key)
		}
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	allowed := make([]string, len(approvedDistances))
	for i, d := range approvedDistances {
		allowed[i] = strconv.Itoa(d)
	}
	v.RegisterAlias("distance", "oneof="+strings.Join(allowed, " "))
	return v
}

// ValidateConfig loads the work preferences document at path and checks it
// against the schema. Checks run in a fixed order and stop at the first
// failure: required keys and their types, experience levels, job types, date
// filters, string lists, distance, then blacklists. Missing or null
// blacklists become empty lists.
func ValidateConfig(path string) (*WorkPreferences, error) {
	root, err := loadDocument(path)
	if err != nil {
		return nil, err
	}

	if err := checkRequiredKeys(path, root); err != nil {
		return nil, err
	}
	if err := checkFlags(path, root, "experience_level", experienceLevelKeys[:], "experience level"); err != nil {
		return nil, err
	}
	if err := checkFlags(path, root, "job_types", jobTypeKeys[:], "job type"); err != nil {
		return nil, err
	}
	if err := checkFlags(path, root, "date", dateFilterKeys[:], "date filter"); err != nil {
		return nil, err
	}
	for _, key := range stringListKeys {
		node, _ := lookup(root, key)
		if !allStrings(node) {
			return nil, schemaError(path, key, "list of strings",
				fmt.Sprintf("'%s' must be a list of strings", key))
		}
	}

	if err := checkDistance(path, root); err != nil {
		return nil, err
	}
	if err := checkBlacklists(path, root); err != nil {
		return nil, err
	}

	var prefs WorkPreferences
	if err := root.Decode(&prefs); err != nil {
		return nil, &Error{Kind: KindSchema, Path: path, Message: "failed to decode work preferences", Cause: err}
	}

	prefs.normalize()
	return &prefs, nil
}

func checkRequiredKeys(path string, root *yaml.Node) error {
	for _, rk := range requiredKeys {
		node, ok := lookup(root, rk.name)
		switch {
		case (!ok || isNull(node)) && isBlacklistKey(rk.name):
			continue
		case !ok:
			return schemaError(path, rk.name, rk.kind.String(),
				fmt.Sprintf("missing required key '%s'", rk.name))
		case !hasKind(node, rk.kind):
			return schemaError(path, rk.name, rk.kind.String(),
				fmt.Sprintf("invalid type for key '%s', expected %s", rk.name, rk.kind))
		}
	}
	return nil
}

func checkFlags(path string, root *yaml.Node, section string, keys []string, label string) error {
	mapping, _ := lookup(root, section)
	for _, key := range keys {
		node, ok := lookup(mapping, key)
		if !ok || !asBool(node) {
			return schemaError(path, section+"."+key, kindBool.String(),
				fmt.Sprintf("%s '%s' must be a boolean", label, key))
		}
	}
	return nil
}

func checkDistance(path string, root *yaml.Node) error {
	node, _ := lookup(root, "distance")
	expected := fmt.Sprint(approvedDistances)
	var distance int
	if err := node.Decode(&distance); err != nil {
		return &Error{Kind: KindSchema, Path: path, Key: "distance", Expected: expected,
			Message: fmt.Sprintf("invalid distance value '%s'", node.Value), Cause: err}
	}
	if err := validate.Var(distance, "distance"); err != nil {
		return schemaError(path, "distance", expected,
			fmt.Sprintf("invalid distance value '%d', must be one of %s", distance, expected))
	}
	return nil
}

func checkBlacklists(path string, root *yaml.Node) error {
	for _, key := range blacklistKeys {
		node, ok := lookup(root, key)
		if !ok || isNull(node) {
			continue
		}
		if !allStrings(node) {
			return schemaError(path, key, "list of strings",
				fmt.Sprintf("'%s' must be a list of strings", key))
		}
	}
	return nil
}

func (p *WorkPreferences) normalize() {
	for _, list := range []*[]string{
		&p.Positions,
		&p.Locations,
		&p.CompanyBlacklist,
		&p.TitleBlacklist,
		&p.LocationBlacklist,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}
