package spell

import "dungeon-lore/internal/colour"

// Zap identifies the beam a spell fires. ZapNone means the spell is not a
// beam.
type Zap int

const (
	ZapNone Zap = iota
	ZapMagicDart
	ZapThrowFlame
	ZapThrowFrost
	ZapStoneArrow
	ZapFireball
	ZapBoltOfFire
	ZapBoltOfCold
	ZapLightningBolt
	ZapIronShot
	ZapCrystalSpear
	ZapSting
	ZapPoisonArrow
	ZapFoxfire
	ZapSearingBreath
	ZapFireBreath
	ZapColdBreath
	ZapPain
)

// damageCalc computes Num d (Base + pow*Mult/Div).
type damageCalc struct {
	Num, Base, Mult, Div int
}

type zapDef struct {
	colour colour.Colour
	damage damageCalc
}

var zaps = map[Zap]zapDef{
	ZapMagicDart:     {colour.LightMagenta, damageCalc{1, 3, 1, 5}},
	ZapThrowFlame:    {colour.Red, damageCalc{2, 4, 1, 10}},
	ZapThrowFrost:    {colour.White, damageCalc{2, 4, 1, 10}},
	ZapStoneArrow:    {colour.Brown, damageCalc{3, 7, 1, 8}},
	ZapFireball:      {colour.Red, damageCalc{3, 7, 1, 6}},
	ZapBoltOfFire:    {colour.ElementFire, damageCalc{6, 18, 1, 6}},
	ZapBoltOfCold:    {colour.White, damageCalc{6, 18, 1, 6}},
	ZapLightningBolt: {colour.ElementElectricity, damageCalc{3, 10, 3, 10}},
	ZapIronShot:      {colour.Cyan, damageCalc{9, 8, 1, 12}},
	ZapCrystalSpear:  {colour.White, damageCalc{10, 23, 1, 5}},
	ZapSting:         {colour.Green, damageCalc{1, 3, 1, 5}},
	ZapPoisonArrow:   {colour.LightGreen, damageCalc{6, 10, 1, 6}},
	ZapFoxfire:       {colour.LightRed, damageCalc{1, 4, 1, 15}},
	ZapSearingBreath: {colour.ElementFire, damageCalc{3, 10, 1, 8}},
	ZapFireBreath:    {colour.ElementFire, damageCalc{3, 8, 1, 10}},
	ZapColdBreath:    {colour.ElementIce, damageCalc{3, 8, 1, 10}},
	ZapPain:          {colour.LightMagenta, damageCalc{1, 4, 1, 5}},
}

// ZapFor returns the beam the spell fires, or ZapNone.
func ZapFor(id ID) Zap {
	d, _ := lookup(id)
	return d.Zap
}

// ZapDamage is the damage a monster's zap deals at power pow.
func ZapDamage(z Zap, pow int) Dice {
	zd, ok := zaps[z]
	if !ok {
		return Dice{}
	}
	c := zd.damage
	size := c.Base
	if c.Div > 0 {
		size += pow * c.Mult / c.Div
	}
	return Dice{Num: c.Num, Size: size}
}

// ZapColour is the colour the zap's beam is drawn in.
func ZapColour(z Zap) colour.Colour {
	if zd, ok := zaps[z]; ok {
		return zd.colour
	}
	return colour.ColUnknown
}

// FreezeDamage is Freeze's touch damage at power pow.
func FreezeDamage(pow int) Dice {
	return Dice{Num: 1, Size: 3 + pow/3}
}

// WaterstrikeDamage depends on the caster's hit dice, not power.
func WaterstrikeDamage(hd int) Dice {
	return Dice{Num: 3, Size: 7 + hd}
}

// OrbDamage is the damage an Orb of Destruction deals at the end of its
// flight.
func OrbDamage(pow int) Dice {
	return Dice{Num: 9, Size: pow / 4}
}

// GlaciateDamage is Glaciate's damage at the given distance from the
// caster.
func GlaciateDamage(pow, dist int) Dice {
	if dist < 1 {
		dist = 1
	}
	return Dice{Num: 7, Size: (66 + 3*pow) / 6 / dist}
}

// BallLightningHD is the hit dice of a ball lightning conjured at power pow.
func BallLightningHD(pow int) int {
	return max(1, pow/6)
}

// BallLightningDamage is the explosion damage of a ball lightning.
func BallLightningDamage(hd int) Dice {
	return Dice{Num: 3, Size: 5 + hd*5/4}
}
