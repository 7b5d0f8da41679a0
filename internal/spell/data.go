package spell

const (
	MagicDart ID = iota + 1
	Freeze
	ThrowFlame
	ThrowFrost
	StoneArrow
	Fireball
	BoltOfFire
	BoltOfCold
	LightningBolt
	IronShot
	LehudibsCrystalSpear
	Waterstrike
	OrbOfDestruction
	Glaciate
	ConjureBallLightning
	Smiting
	Marshlight
	SearingBreath
	Abjuration
	ConjureLivingSpells
	Confuse
	Slow
	Paralyse
	Haste
	Invisibility
	Blink
	SummonSmallMammal
	CallImp
	Sting
	PoisonArrow
	Pain
	SerpentOfHellBreath
	FireBreath
	ColdBreath
)

var table = map[ID]Def{
	MagicDart:            {Title: "Magic Dart", Schools: Conjuration, Level: 1, MinRange: LOSRadius, MaxRange: LOSRadius, PowerCap: 25, Zap: ZapMagicDart},
	Freeze:               {Title: "Freeze", Schools: Ice, Level: 1, MinRange: 1, MaxRange: 1, PowerCap: 25},
	ThrowFlame:           {Title: "Throw Flame", Schools: Fire, Level: 2, MinRange: 6, MaxRange: 6, PowerCap: 50, Zap: ZapThrowFlame},
	ThrowFrost:           {Title: "Throw Frost", Schools: Ice, Level: 2, MinRange: 6, MaxRange: 6, PowerCap: 50, Zap: ZapThrowFrost},
	StoneArrow:           {Title: "Stone Arrow", Schools: Conjuration | Earth, Level: 3, MinRange: 3, MaxRange: LOSRadius, PowerCap: 50, Zap: ZapStoneArrow},
	Fireball:             {Title: "Fireball", Schools: Conjuration | Fire, Level: 5, MinRange: 5, MaxRange: 5, PowerCap: 200, Zap: ZapFireball},
	BoltOfFire:           {Title: "Bolt of Fire", Schools: Conjuration | Fire, Level: 6, MinRange: 5, MaxRange: 5, PowerCap: 200, Zap: ZapBoltOfFire},
	BoltOfCold:           {Title: "Bolt of Cold", Schools: Conjuration | Ice, Level: 5, MinRange: 5, MaxRange: 5, PowerCap: 200, Zap: ZapBoltOfCold},
	LightningBolt:        {Title: "Lightning Bolt", Schools: Conjuration | Air, Level: 5, MinRange: 5, MaxRange: 5, PowerCap: 200, Zap: ZapLightningBolt},
	IronShot:             {Title: "Iron Shot", Schools: Conjuration | Earth, Level: 6, MinRange: 4, MaxRange: LOSRadius, PowerCap: 200, Zap: ZapIronShot},
	LehudibsCrystalSpear: {Title: "Lehudib's Crystal Spear", Schools: Conjuration | Earth, Level: 8, MinRange: 4, MaxRange: LOSRadius, PowerCap: 200, Zap: ZapCrystalSpear},
	Waterstrike:          {Title: "Waterstrike", Level: 4, MinRange: LOSRadius, MaxRange: LOSRadius},
	OrbOfDestruction:     {Title: "Orb of Destruction", Schools: Conjuration, Level: 7, MinRange: LOSRadius, MaxRange: LOSRadius, PowerCap: 200},
	Glaciate:             {Title: "Glaciate", Schools: Conjuration | Ice, Level: 9, MinRange: 6, MaxRange: 6, PowerCap: 200},
	ConjureBallLightning: {Title: "Conjure Ball Lightning", Schools: Conjuration | Air, Level: 6, Flags: SelfEnch, PowerCap: 200},
	Smiting:              {Title: "Smiting", Level: 4, MinRange: LOSRadius, MaxRange: LOSRadius},
	Marshlight:           {Title: "Marshlight", Schools: Conjuration | Fire, Level: 2, MinRange: 0, MaxRange: 0, PowerCap: 50, Zap: ZapFoxfire},
	SearingBreath:        {Title: "Searing Breath", Level: 5, Flags: Monster, MinRange: 5, MaxRange: 5, Zap: ZapSearingBreath},
	Abjuration:           {Title: "Abjuration", Schools: Summoning, Level: 3, PowerCap: 200},
	ConjureLivingSpells:  {Title: "Conjure Living Spells", Schools: Conjuration | Summoning, Level: 7, PowerCap: 200},
	Confuse:              {Title: "Confuse", Schools: Hexes, Level: 3, Flags: WLCheck, MinRange: LOSRadius, MaxRange: LOSRadius, PowerCap: 50},
	Slow:                 {Title: "Slow", Schools: Hexes, Level: 2, Flags: WLCheck, MinRange: LOSRadius, MaxRange: LOSRadius, PowerCap: 100},
	Paralyse:             {Title: "Paralyse", Schools: Hexes, Level: 4, Flags: WLCheck, MinRange: LOSRadius, MaxRange: LOSRadius, PowerCap: 100},
	Haste:                {Title: "Haste", Schools: Hexes, Level: 6, Flags: SelfEnch, MinRange: LOSRadius, MaxRange: LOSRadius, PowerCap: 200},
	Invisibility:         {Title: "Invisibility", Schools: Hexes, Level: 6, Flags: SelfEnch, PowerCap: 200},
	Blink:                {Title: "Blink", Schools: Translocation, Level: 2, Flags: SelfEnch},
	SummonSmallMammal:    {Title: "Summon Small Mammal", Schools: Summoning, Level: 1, Flags: MonsAbjure, PowerCap: 25},
	CallImp:              {Title: "Call Imp", Schools: Summoning, Level: 3, Flags: MonsAbjure, PowerCap: 100},
	Sting:                {Title: "Sting", Schools: Poison, Level: 1, MinRange: 6, MaxRange: 6, PowerCap: 25, Zap: ZapSting},
	PoisonArrow:          {Title: "Poison Arrow", Schools: Conjuration | Poison, Level: 6, MinRange: 5, MaxRange: 5, PowerCap: 200, Zap: ZapPoisonArrow},
	Pain:                 {Title: "Pain", Schools: Necromancy, Level: 1, Flags: WLCheck, MinRange: 4, MaxRange: LOSRadius, PowerCap: 25, Zap: ZapPain},
	SerpentOfHellBreath:  {Title: "Serpent of Hell Breath", Level: 5, Flags: Monster, Breaths: []ID{FireBreath, ColdBreath}},
	FireBreath:           {Title: "Fire Breath", Level: 5, Flags: Monster, MinRange: 5, MaxRange: 5, Zap: ZapFireBreath},
	ColdBreath:           {Title: "Cold Breath", Level: 5, Flags: Monster, MinRange: 5, MaxRange: 5, Zap: ZapColdBreath},
}

// tileBase is the first spell icon in the remote client's tile sheet.
const tileBase = 3000

// Tile returns the remote client's icon index for the spell.
func Tile(id ID) int {
	if !Valid(id) {
		return tileBase
	}
	return tileBase + int(id)
}
