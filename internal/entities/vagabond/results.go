package vagabond

// CheckResult is the outcome of a resolved check. It is rendered and logged,
// never stored as an entity.
type CheckResult struct {
	Kind       CheckKind  `json:"kind"`
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Formula    string     `json:"formula"`
	Roll       int32      `json:"roll"` // face of the d20
	Dice       []int32    `json:"dice"`
	Total      int32      `json:"total"`
	Difficulty int32      `json:"difficulty"`
	ResultType ResultType `json:"result_type"`
	IsCrit     bool       `json:"is_crit"`
}

// DamageResult is a rolled damage expression
type DamageResult struct {
	Label   string  `json:"label"`
	Formula string  `json:"formula"`
	Dice    []int32 `json:"dice"`
	Total   int32   `json:"total"`
}

// CastQuote is the mana cost of a prospective cast and whether both
// spending gates would allow it
type CastQuote struct {
	SpellID    string `json:"spell_id"`
	Delivery   string `json:"delivery"`
	Duration   string `json:"duration"`
	DealDamage bool   `json:"deal_damage"`
	DamageDice int32  `json:"damage_dice"`
	ManaCost   int32  `json:"mana_cost"`
	// Allowed is false when a gate rejects the cast; Reason says which one.
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CastResult is the outcome of a successful cast
type CastResult struct {
	Quote         *CastQuote    `json:"quote"`
	ManaRemaining int32         `json:"mana_remaining"`
	Damage        *DamageResult `json:"damage,omitempty"`
}
