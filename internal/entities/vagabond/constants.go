package vagabond

// StatKey names one of the six attributes of a stat block
type StatKey string

// Stat keys
const (
	StatMight     StatKey = "might"
	StatDexterity StatKey = "dexterity"
	StatAwareness StatKey = "awareness"
	StatReason    StatKey = "reason"
	StatPresence  StatKey = "presence"
	StatLuck      StatKey = "luck"
)

// AllStats lists the stat keys in sheet order
var AllStats = []StatKey{
	StatMight,
	StatDexterity,
	StatAwareness,
	StatReason,
	StatPresence,
	StatLuck,
}

// ActorType distinguishes player characters from NPCs
type ActorType string

// Actor types
const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeNPC       ActorType = "npc"
)

// CheckKind is the kind of test resolved against a difficulty
type CheckKind string

// Check kinds
const (
	CheckKindSkill  CheckKind = "skill"
	CheckKindSave   CheckKind = "save"
	CheckKindAttack CheckKind = "attack"
)

// ResultType classifies a resolved check
type ResultType string

// Result types
const (
	ResultCrit ResultType = "crit"
	ResultPass ResultType = "pass"
	ResultFail ResultType = "fail"
)

// Save keys
const (
	SaveEndure = "endure"
	SaveReflex = "reflex"
	SaveWill   = "will"
)

// Skills that a weapon's properties can route an attack through
const (
	SkillMelee   = "melee"
	SkillBrawl   = "brawl"
	SkillFinesse = "finesse"
	SkillRanged  = "ranged"
)

// Weapon property keys that change the attack skill
const (
	PropertyBrawl   = "brawl"
	PropertyFinesse = "finesse"
	PropertyRanged  = "ranged"
)

// Spell durations
const (
	DurationInstant   = "instant"
	DurationFocus     = "focus"
	DurationContinual = "continual"
)
