package assets

import "dungeon-lore/internal/generate"

// AlphabetShops is the letter shop table: one keeper per letter and every
// item they might stock, all starting with that letter. Letters with fewer
// than five items never get a shop.
var AlphabetShops = []generate.LetterShop{
	{Letter: 'A', Keeper: "Agrik", Items: []string{
		"amulet of faith", "amulet of guardian spirit", "amulet of magic regeneration",
		"amulet of reflection", "amulet of the acrobat", "arbalest", "arrows",
		"axe", "athame", "amulet of regeneration",
	}},
	{Letter: 'B', Keeper: "Borgnjor", Items: []string{
		"bardiche", "battleaxe", "boomerangs", "book of air", "book of burglary",
		"book of cold", "book of fire", "boots", "broad axe", "buckler",
		"buckler of reflection",
	}},
	{Letter: 'C', Keeper: "Chuck", Items: []string{
		"cloak", "club", "crystal plate armour", "cloak of preservation",
		"chain mail", "crossbow", "cap", "condenser vane",
	}},
	{Letter: 'D', Keeper: "Dowan", Items: []string{
		"dagger", "demon blade", "demon trident", "demon whip", "dart",
		"dire flail", "dispersal", "dragon scales",
	}},
	{Letter: 'E', Keeper: "Edmund", Items: []string{
		"eveningstar", "executioner's axe",
	}},
	{Letter: 'F', Keeper: "Fannar", Items: []string{
		"falchion", "flail", "fire dragon scales", "figurine of a ziggurat",
		"fan of gales", "fur cloak",
	}},
	{Letter: 'G', Keeper: "Gastronok", Items: []string{
		"gloves", "glaive", "giant club", "giant spiked club", "great mace",
		"great sword", "gold dragon scales", "gloves of archery",
		"gell's gravitambourine",
	}},
	{Letter: 'H', Keeper: "Harold", Items: []string{
		"halberd", "hand axe", "hand cannon", "hat", "helmet", "horn of Geryon",
		"hat of the alchemist",
	}},
	{Letter: 'I', Keeper: "Ijyb", Items: []string{
		"iron shot", "ice dragon scales",
	}},
	{Letter: 'J', Keeper: "Jessica", Items: []string{
		"javelin",
	}},
	{Letter: 'K', Keeper: "Kirke", Items: []string{
		"katana", "kite shield",
	}},
	{Letter: 'L', Keeper: "Louise", Items: []string{
		"lajatang", "large rock", "leather armour", "long sword", "longbow",
		"lamp of fire", "lightning rod", "lantern of shadows",
	}},
	{Letter: 'M', Keeper: "Maurice", Items: []string{
		"mace", "morningstar", "manual of conjurations", "manual of fire magic",
		"manual of hexes", "manual of necromancy", "manual of summonings",
		"manual of translocations", "manual of air magic", "manual of earth magic",
		"manual of ice magic", "manual of poison magic", "mutagen", "moon troll leather armour",
		"mail of the robe", "magic staff", "mask of the dragon",
	}},
	{Letter: 'N', Keeper: "Nessos", Items: []string{
		"necklace of bones", "needles",
	}},
	{Letter: 'O', Keeper: "Okawaru", Items: []string{
		"orb of Zot", "orb of energy", "obsidian axe",
	}},
	{Letter: 'P', Keeper: "Psyche", Items: []string{
		"pearl dragon scales", "phial of floods", "plate armour", "potion of agility",
		"potion of berserk rage", "potion of brilliance", "potion of curing",
		"potion of heal wounds", "potion of haste", "potion of magic",
		"potion of might", "potion of resistance", "potion of ambrosia",
		"potion of cancellation", "potion of degeneration", "potion of experience",
		"potion of invisibility", "potion of lignification",
	}},
	{Letter: 'Q', Keeper: "Quackers", Items: []string{
		"quarterstaff", "quick blade", "quicksilver dragon scales", "quiver",
	}},
	{Letter: 'R', Keeper: "Rupert", Items: []string{
		"rapier", "ring mail", "robe", "ring of dexterity", "ring of evasion",
		"ring of flight", "ring of intelligence", "ring of protection",
		"ring of see invisible", "ring of strength", "ring of wizardry",
		"rune of Zot",
	}},
	{Letter: 'S', Keeper: "Snorg", Items: []string{
		"sabre", "scale mail", "scimitar", "scroll of amnesia", "scroll of blinking",
		"scroll of brand weapon", "scroll of enchant armour", "scroll of enchant weapon",
		"scroll of fear", "scroll of fog", "scroll of identify", "scroll of immolation",
		"scroll of magic mapping", "scroll of noise", "scroll of revelation",
		"scroll of silence", "scroll of summoning", "scroll of teleportation",
		"scroll of torment", "scroll of vulnerability", "shield", "shortbow",
		"short sword", "sling", "spear", "staff of air", "staff of cold",
		"staff of conjuration", "staff of death", "staff of earth", "staff of fire",
		"staff of poison", "stones", "storm dragon scales", "swamp dragon scales",
	}},
	{Letter: 'T', Keeper: "Terence", Items: []string{
		"trident", "triple crossbow", "triple sword", "troll leather armour",
		"tower shield", "tin of tremorstones", "throwing net",
	}},
	{Letter: 'U', Keeper: "Urug", Items: []string{
		"unknown potion",
	}},
	{Letter: 'V', Keeper: "Vashnia", Items: []string{
		"vampiric blade",
	}},
	{Letter: 'W', Keeper: "Wiglaf", Items: []string{
		"wand of acid", "wand of charming", "wand of digging", "wand of flame",
		"wand of iceblast", "wand of light", "wand of mindburst", "wand of paralysis",
		"wand of polymorph", "wand of quicksilver", "wand of roots", "war axe",
		"whip", "wyrmbane",
	}},
	{Letter: 'X', Keeper: "Xtahua", Items: []string{
		"xp potion",
	}},
	{Letter: 'Y', Keeper: "Yiuf", Items: []string{
		"yellow draconian scales",
	}},
	{Letter: 'Z', Keeper: "Zenata", Items: []string{
		"ziggurat figurine", "zweihander",
	}},
}
