// Package vagabond holds the data aggregates of the Vagabond ruleset.
//
// These are data-only structs. Every derived field (marked "derived") is
// recomputed by the engine package on each read and is never a source of truth.
package vagabond

// Stat is a single attribute
type Stat struct {
	Value int32 `json:"value"`
}

// Stats is the six-attribute stat block
type Stats struct {
	Might     Stat `json:"might"`
	Dexterity Stat `json:"dexterity"`
	Awareness Stat `json:"awareness"`
	Reason    Stat `json:"reason"`
	Presence  Stat `json:"presence"`
	Luck      Stat `json:"luck"`
}

// Value looks up a stat by key
func (s Stats) Value(key StatKey) (int32, bool) {
	switch key {
	case StatMight:
		return s.Might.Value, true
	case StatDexterity:
		return s.Dexterity.Value, true
	case StatAwareness:
		return s.Awareness.Value, true
	case StatReason:
		return s.Reason.Value, true
	case StatPresence:
		return s.Presence.Value, true
	case StatLuck:
		return s.Luck.Value, true
	default:
		return 0, false
	}
}

// Pool is a current/maximum pair. Max is derived for hp and luck.
type Pool struct {
	Value int32 `json:"value"`
	Max   int32 `json:"max"`
}

// Slots is the inventory capacity (derived)
type Slots struct {
	Max int32 `json:"max"`
}

// Speed is the movement tier (derived)
type Speed struct {
	Base   int32 `json:"base"`
	Crawl  int32 `json:"crawl"`
	Travel int32 `json:"travel"`
}

// Mana is a caster's pool. A zero Max means the actor is not a caster and
// SpendLimit stays nil.
type Mana struct {
	Value      int32  `json:"value"`
	Max        int32  `json:"max"`
	SpendLimit *int32 `json:"spend_limit,omitempty"` // derived
}

// HasPool reports whether the actor casts spells at all
func (m Mana) HasPool() bool {
	return m.Max > 0
}

// SaveValue is a derived save target
type SaveValue struct {
	Value int32 `json:"value"`
}

// Saves holds the three save targets (derived)
type Saves struct {
	Endure SaveValue `json:"endure"`
	Reflex SaveValue `json:"reflex"`
	Will   SaveValue `json:"will"`
}

// Value looks up a save by key
func (s Saves) Value(key string) (int32, bool) {
	switch key {
	case SaveEndure:
		return s.Endure.Value, true
	case SaveReflex:
		return s.Reflex.Value, true
	case SaveWill:
		return s.Will.Value, true
	default:
		return 0, false
	}
}

// Skill is a skill entry on a character sheet
type Skill struct {
	Stat       StatKey `json:"stat"`
	Trained    bool    `json:"trained"`
	Difficulty int32   `json:"difficulty"` // derived
}

// Actor is a character or NPC document
type Actor struct {
	ID       string    `json:"id"`
	Type     ActorType `json:"type"`
	Name     string    `json:"name"`
	PlayerID string    `json:"player_id,omitempty"`

	// Character fields
	Level      int32             `json:"level,omitempty"`
	ClassID    string            `json:"class_id,omitempty"`
	AncestryID string            `json:"ancestry_id,omitempty"`
	Skills     map[string]*Skill `json:"skills,omitempty"`
	Slots      Slots             `json:"slots"`
	Speed      Speed             `json:"speed"`
	Luck       Pool              `json:"luck"`
	Mana       Mana              `json:"mana"`
	Fatigue    int32             `json:"fatigue"`

	// NPC fields
	HitDice   int32  `json:"hit_dice,omitempty"`
	Zone      string `json:"zone,omitempty"`
	Size      string `json:"size,omitempty"`
	BeingType string `json:"being_type,omitempty"`

	Stats Stats `json:"stats"`
	HP    Pool  `json:"hp"`
	Saves Saves `json:"saves"`

	Spells  []*Spell  `json:"spells,omitempty"`
	Weapons []*Weapon `json:"weapons,omitempty"`
	Armor   []*Armor  `json:"armor,omitempty"`
	Perks   []*Perk   `json:"perks,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// IsCharacter reports whether the actor is a player character
func (a *Actor) IsCharacter() bool {
	return a.Type == ActorTypeCharacter
}

// FindSpell returns the embedded spell with the given ID
func (a *Actor) FindSpell(id string) *Spell {
	for _, s := range a.Spells {
		if s != nil && s.ID == id {
			return s
		}
	}
	return nil
}

// FindWeapon returns the embedded weapon with the given ID
func (a *Actor) FindWeapon(id string) *Weapon {
	for _, w := range a.Weapons {
		if w != nil && w.ID == id {
			return w
		}
	}
	return nil
}

// FindPerk returns the embedded perk with the given ID
func (a *Actor) FindPerk(id string) *Perk {
	for _, p := range a.Perks {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}
