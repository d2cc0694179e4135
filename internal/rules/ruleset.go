// Package rules loads the Vagabond ruleset tables.
//
// A *Ruleset is the single source of truth for skill, save, delivery, armor and
// label lookups. It is passed explicitly to every function that needs a table.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
)

//go:embed vagabond.yaml
var embedded []byte

var (
	defaultOnce    sync.Once
	defaultRuleset *Ruleset
	defaultErr     error
)

// Ruleset holds every static table of the game
type Ruleset struct {
	Stats            []StatDef   `yaml:"stats"`
	Skills           []SkillDef  `yaml:"skills"`
	Saves            []SaveDef   `yaml:"saves"`
	Deliveries       []Delivery  `yaml:"deliveries"`
	Durations        Table       `yaml:"durations"`
	WeaponProperties Table       `yaml:"weapon_properties"`
	Grips            Table       `yaml:"grips"`
	ArmorTypes       []ArmorType `yaml:"armor_types"`
	Distances        Table       `yaml:"distances"`
	Statuses         Table       `yaml:"statuses"`
	Zones            Table       `yaml:"zones"`
	Sizes            Table       `yaml:"sizes"`
	BeingTypes       Table       `yaml:"being_types"`
	Classes          Table       `yaml:"classes"`
	Ancestries       Table       `yaml:"ancestries"`

	stats      map[vagabond.StatKey]StatDef
	skills     map[string]SkillDef
	saves      map[string]SaveDef
	deliveries map[string]Delivery
	armorTypes map[string]ArmorType
}

// Default returns the ruleset embedded in the binary
func Default() (*Ruleset, error) {
	defaultOnce.Do(func() {
		defaultRuleset, defaultErr = Parse(embedded)
	})
	return defaultRuleset, defaultErr
}

// MustDefault is Default that panics on a broken embedded table
func MustDefault() *Ruleset {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

// Load reads a ruleset override from path, or the embedded ruleset when path is empty
func Load(path string) (*Ruleset, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ruleset %s", path)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load ruleset %s", path)
	}
	return r, nil
}

// Parse decodes and validates a YAML ruleset
func Parse(data []byte) (*Ruleset, error) {
	var r Ruleset
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse ruleset yaml")
	}

	r.index()

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Ruleset) index() {
	r.stats = make(map[vagabond.StatKey]StatDef, len(r.Stats))
	for _, s := range r.Stats {
		r.stats[s.Key] = s
	}
	r.skills = make(map[string]SkillDef, len(r.Skills))
	for _, s := range r.Skills {
		r.skills[s.Key] = s
	}
	r.saves = make(map[string]SaveDef, len(r.Saves))
	for _, s := range r.Saves {
		r.saves[s.Key] = s
	}
	r.deliveries = make(map[string]Delivery, len(r.Deliveries))
	for _, d := range r.Deliveries {
		r.deliveries[d.Key] = d
	}
	r.armorTypes = make(map[string]ArmorType, len(r.ArmorTypes))
	for _, a := range r.ArmorTypes {
		r.armorTypes[a.Key] = a
	}
}

// Validate checks that every table is present and every cross reference resolves
func (r *Ruleset) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(r.Stats) == 0 {
		vb.Field("stats", "table is empty")
	}
	if len(r.stats) != len(r.Stats) {
		vb.Field("stats", "duplicate key")
	}
	for _, stat := range vagabond.AllStats {
		if _, ok := r.stats[stat]; !ok {
			vb.Fieldf("stats", "missing stat %s", stat)
		}
	}

	if len(r.Skills) == 0 {
		vb.Field("skills", "table is empty")
	}
	if len(r.skills) != len(r.Skills) {
		vb.Field("skills", "duplicate key")
	}
	for _, s := range r.Skills {
		if _, ok := r.stats[s.Stat]; !ok {
			vb.Fieldf(fmt.Sprintf("skills.%s", s.Key), "unknown stat %q", s.Stat)
		}
	}

	for _, key := range []string{vagabond.SaveEndure, vagabond.SaveReflex, vagabond.SaveWill} {
		if _, ok := r.saves[key]; !ok {
			vb.Fieldf("saves", "missing save %s", key)
		}
	}
	for _, s := range r.Saves {
		field := fmt.Sprintf("saves.%s", s.Key)
		if len(s.Stats) != 2 {
			vb.Fieldf(field, "expected 2 stats, got %d", len(s.Stats))
			continue
		}
		for _, stat := range s.Stats {
			if _, ok := r.stats[stat]; !ok {
				vb.Fieldf(field, "unknown stat %q", stat)
			}
		}
	}

	if len(r.Deliveries) == 0 {
		vb.Field("deliveries", "table is empty")
	}
	if len(r.deliveries) != len(r.Deliveries) {
		vb.Field("deliveries", "duplicate key")
	}
	for _, d := range r.Deliveries {
		if d.Cost < 0 {
			vb.Fieldf(fmt.Sprintf("deliveries.%s", d.Key), "cost must be non-negative, got %d", d.Cost)
		}
	}

	for _, key := range []string{vagabond.DurationInstant, vagabond.DurationFocus, vagabond.DurationContinual} {
		if !r.Durations.Has(key) {
			vb.Fieldf("durations", "missing duration %s", key)
		}
	}

	for _, a := range r.ArmorTypes {
		if a.Rating < 0 || a.MightReq < 0 {
			vb.Field(fmt.Sprintf("armor_types.%s", a.Key), "rating and might_req must be non-negative")
		}
	}

	return vb.Build()
}

// Stat returns the definition of a stat
func (r *Ruleset) Stat(key vagabond.StatKey) (StatDef, bool) {
	s, ok := r.stats[key]
	return s, ok
}

// HasStat reports whether key names a stat
func (r *Ruleset) HasStat(key string) bool {
	_, ok := r.stats[vagabond.StatKey(key)]
	return ok
}

// Skill returns the definition of a skill
func (r *Ruleset) Skill(key string) (SkillDef, bool) {
	s, ok := r.skills[key]
	return s, ok
}

// HasSkill reports whether key names a skill
func (r *Ruleset) HasSkill(key string) bool {
	_, ok := r.skills[key]
	return ok
}

// SkillLabel returns the display label of a skill, or the key when unknown
func (r *Ruleset) SkillLabel(key string) string {
	if s, ok := r.skills[key]; ok {
		return s.Label
	}
	return key
}

// Save returns the definition of a save
func (r *Ruleset) Save(key string) (SaveDef, bool) {
	s, ok := r.saves[key]
	return s, ok
}

// Delivery returns a spell delivery mode
func (r *Ruleset) Delivery(key string) (Delivery, bool) {
	d, ok := r.deliveries[key]
	return d, ok
}

// HasDelivery reports whether key names a delivery mode
func (r *Ruleset) HasDelivery(key string) bool {
	_, ok := r.deliveries[key]
	return ok
}

// ArmorType returns an armor class
func (r *Ruleset) ArmorType(key string) (ArmorType, bool) {
	a, ok := r.armorTypes[key]
	return a, ok
}

// HasArmorType reports whether key names an armor class
func (r *Ruleset) HasArmorType(key string) bool {
	_, ok := r.armorTypes[key]
	return ok
}
