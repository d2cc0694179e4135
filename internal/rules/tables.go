package rules

import "github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"

// Entry is a keyed, labelled table row
type Entry struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Table is an ordered list of entries
type Table []Entry

// Get returns the entry for key
func (t Table) Get(key string) (Entry, bool) {
	for _, e := range t {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Has reports whether key is in the table
func (t Table) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Label returns the label for key, or the key itself when unknown
func (t Table) Label(key string) string {
	if e, ok := t.Get(key); ok {
		return e.Label
	}
	return key
}

// Keys returns the table keys in order
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for _, e := range t {
		keys = append(keys, e.Key)
	}
	return keys
}

// StatDef describes one attribute
type StatDef struct {
	Key   vagabond.StatKey `yaml:"key"`
	Label string           `yaml:"label"`
	Abbr  string           `yaml:"abbr"`
}

// SkillDef maps a skill to the stat it tests
type SkillDef struct {
	Key   string           `yaml:"key"`
	Label string           `yaml:"label"`
	Stat  vagabond.StatKey `yaml:"stat"`
}

// SaveDef maps a save to the pair of stats it subtracts
type SaveDef struct {
	Key   string             `yaml:"key"`
	Label string             `yaml:"label"`
	Stats []vagabond.StatKey `yaml:"stats"`
}

// Delivery is a spell delivery mode and its base mana cost
type Delivery struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Cost  int32  `yaml:"cost"`
}

// ArmorType carries the default rating and might requirement for a class of armor
type ArmorType struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Rating   int32  `yaml:"rating"`
	MightReq int32  `yaml:"might_req"`
}
