package vagabond

// Spell is a spell known by an actor
type Spell struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Delivery   string `json:"delivery"`
	Duration   string `json:"duration"`
	DamageBase string `json:"damage_base,omitempty"`
	Effect     string `json:"effect,omitempty"`

	DeliveryCost int32 `json:"delivery_cost"` // derived
	HasDamage    bool  `json:"has_damage"`    // derived
}

// WeaponDamage is a weapon's damage die and flat bonus
type WeaponDamage struct {
	Die   string `json:"die"`
	Bonus int32  `json:"bonus,omitempty"`
}

// Weapon is a weapon carried by an actor
type Weapon struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Properties  []string     `json:"properties,omitempty"`
	Grip        string       `json:"grip,omitempty"`
	Damage      WeaponDamage `json:"damage"`
	AttackSkill string       `json:"attack_skill,omitempty"` // defaulted when empty
	Equipped    bool         `json:"equipped"`

	CanUseBrawl   bool `json:"can_use_brawl"`   // derived
	CanUseFinesse bool `json:"can_use_finesse"` // derived
	CanUseRanged  bool `json:"can_use_ranged"`  // derived
}

// HasProperty reports whether the weapon carries the property
func (w *Weapon) HasProperty(property string) bool {
	for _, p := range w.Properties {
		if p == property {
			return true
		}
	}
	return false
}

// Armor is armor carried by an actor. Rating and MightReq default from the
// armor type when left at zero.
type Armor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Rating   int32  `json:"rating"`
	MightReq int32  `json:"might_req"`
	Equipped bool   `json:"equipped"`
}

// PerkPrerequisites are the requirements for taking a perk
type PerkPrerequisites struct {
	Stats   map[StatKey]int32 `json:"stats,omitempty"`
	Trained []string          `json:"trained,omitempty"`
}

// Perk is a perk held by (or offered to) an actor
type Perk struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Prerequisites PerkPrerequisites `json:"prerequisites"`
}
