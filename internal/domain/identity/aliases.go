package identity

// Static lookup data for well-known individuals. Keys and values are folded
// strings (lowercase, no diacritics). The tables are read-only; Normalize and
// ResolveDisplayName never mutate them.

// playerAliases maps known variants (surname only, initial+surname,
// nicknames) to one canonical folded key.
var playerAliases = map[string]string{
	// Lionel Messi
	"l messi":      "lionel messi",
	"leo messi":    "lionel messi",
	"lionel messi": "lionel messi",
	"messi":        "lionel messi",

	// Kylian Mbappé
	"k mbappe":      "kylian mbappe",
	"kylian mbappe": "kylian mbappe",
	"mbappe":        "kylian mbappe",

	// Cristiano Ronaldo
	"c ronaldo":         "cristiano ronaldo",
	"cristiano ronaldo": "cristiano ronaldo",
	"ronaldo":           "cristiano ronaldo",
	"cr":                "cristiano ronaldo",

	// Rayan Cherki
	"r cherki":     "rayan cherki",
	"rayan cherki": "rayan cherki",
	"cherki":       "rayan cherki",

	// Antoine Griezmann
	"a griezmann":       "antoine griezmann",
	"antoine griezmann": "antoine griezmann",
	"griezmann":         "antoine griezmann",

	// Neymar
	"neymar jr":     "neymar",
	"neymar junior": "neymar",
	"neymar":        "neymar",

	// Erling Haaland
	"e haaland":      "erling haaland",
	"erling haaland": "erling haaland",
	"haaland":        "erling haaland",

	// Vinicius Junior
	"vinicius jr":     "vinicius junior",
	"vinicius junior": "vinicius junior",
	"vini jr":         "vinicius junior",
	"vinicius":        "vinicius junior",

	// LeBron James
	"l james":      "lebron james",
	"lebron james": "lebron james",
	"james":        "lebron james",

	// Stephen Curry
	"s curry":       "stephen curry",
	"stephen curry": "stephen curry",
	"steph curry":   "stephen curry",
	"curry":         "stephen curry",
}

// driverAliases is the motorsport counterpart of playerAliases.
var driverAliases = map[string]string{
	// Max Verstappen
	"m verstappen":   "max verstappen",
	"max verstappen": "max verstappen",
	"verstappen":     "max verstappen",

	// Lewis Hamilton
	"l hamilton":     "lewis hamilton",
	"lewis hamilton": "lewis hamilton",
	"hamilton":       "lewis hamilton",

	// Charles Leclerc
	"c leclerc":       "charles leclerc",
	"charles leclerc": "charles leclerc",
	"leclerc":         "charles leclerc",

	// Lando Norris
	"l norris":     "lando norris",
	"lando norris": "lando norris",
	"norris":       "lando norris",

	// George Russell
	"g russell":      "george russell",
	"george russell": "george russell",
	"russell":        "george russell",

	// Carlos Sainz
	"c sainz":      "carlos sainz",
	"carlos sainz": "carlos sainz",
	"sainz":        "carlos sainz",

	// Fernando Alonso
	"f alonso":        "fernando alonso",
	"fernando alonso": "fernando alonso",
	"alonso":          "fernando alonso",

	// Sergio Pérez
	"s perez":      "sergio perez",
	"sergio perez": "sergio perez",
	"checo perez":  "sergio perez",
	"perez":        "sergio perez",
}

// initialFirstNames disambiguates "initial + surname" inputs that the alias
// table does not already cover, keyed by initial then surname.
var initialFirstNames = map[string]map[string]string{
	"m": {
		"mbappe": "kylian",
		"salah":  "mohamed",
	},
	"l": {
		"messi":  "lionel",
		"suarez": "luis",
		"modric": "luka",
	},
	"c": {
		"ronaldo": "cristiano",
		"mbappe":  "kylian",
	},
	"r": {
		"cherki": "rayan",
		"mahrez": "riyad",
	},
	"a": {
		"griezmann": "antoine",
		"mbappe":    "kylian",
	},
}

// canonicalPlayerNames maps a normalized key to the authoritative display
// string, restoring the diacritics and capitalization folding strips.
var canonicalPlayerNames = map[string]string{
	"lionel messi":      "Lionel Messi",
	"cristiano ronaldo": "Cristiano Ronaldo",
	"kylian mbappe":     "Kylian Mbappé",
	"neymar":            "Neymar Jr",
	"erling haaland":    "Erling Haaland",
	"vinicius junior":   "Vinicius Jr",
	"rayan cherki":      "Rayan Cherki",
	"antoine griezmann": "Antoine Griezmann",
	"lebron james":      "LeBron James",
	"stephen curry":     "Stephen Curry",
}

// canonicalDriverNames is the motorsport counterpart of canonicalPlayerNames.
var canonicalDriverNames = map[string]string{
	"max verstappen":  "Max Verstappen",
	"lewis hamilton":  "Lewis Hamilton",
	"charles leclerc": "Charles Leclerc",
	"lando norris":    "Lando Norris",
	"george russell":  "George Russell",
	"carlos sainz":    "Carlos Sainz",
	"fernando alonso": "Fernando Alonso",
	"sergio perez":    "Sergio Pérez",
}
