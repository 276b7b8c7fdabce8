// Package names resolves free-text Bhagavad Gita character names to their
// canonical forms using exact, substring, edit-distance, and phonetic
// matching.
package names

import "sort"

// Character holds one curated character entry. The set is static and
// never mutated at runtime.
type Character struct {
	PrimaryName string   `json:"primary_name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Role        string   `json:"role"`
}

// Characters is the hand-curated character database, keyed by the
// lowercase primary name.
var Characters = map[string]Character{
	// Divine personalities
	"krishna": {
		PrimaryName: "Krishna",
		Aliases:     []string{"Krsna", "Govinda", "Madhava", "Hari", "Vasudeva", "Keshava", "Mukunda"},
		Description: "The Supreme Personality of Godhead, speaker of the Bhagavad Gita",
		Role:        "Divine Charioteer and Spiritual Guide",
	},
	"arjuna": {
		PrimaryName: "Arjuna",
		Aliases:     []string{"Partha", "Dhananjaya", "Gudakesha", "Kaunteya", "Parantapa", "Bharata"},
		Description: "The mighty warrior prince and devotee of Lord Krishna",
		Role:        "Main Disciple and Prince of Kuru Dynasty",
	},

	// Pandavas
	"yudhishthira": {
		PrimaryName: "Yudhishthira",
		Aliases:     []string{"Dharmaraja", "Ajatashatru", "Bharata", "Pandava"},
		Description: "Eldest of the Pandava brothers, known for his righteousness",
		Role:        "Righteous King and Pandava Prince",
	},
	"bhima": {
		PrimaryName: "Bhima",
		Aliases:     []string{"Vrikodara", "Bhimasena", "Jarasandha-jit"},
		Description: "Second Pandava brother, known for his immense strength",
		Role:        "Mighty Warrior of the Pandavas",
	},
	"nakula": {
		PrimaryName: "Nakula",
		Aliases:     []string{"Madri-nandana"},
		Description: "One of the twin Pandava brothers, skilled in swordsmanship",
		Role:        "Pandava Prince and Warrior",
	},
	"sahadeva": {
		PrimaryName: "Sahadeva",
		Aliases:     []string{"Madri-suta"},
		Description: "Youngest Pandava brother, known for his wisdom and knowledge",
		Role:        "Pandava Prince and Strategist",
	},

	// Kauravas
	"duryodhana": {
		PrimaryName: "Duryodhana",
		Aliases:     []string{"Suyodhana", "Kaurava"},
		Description: "Eldest Kaurava brother and main antagonist of the Mahabharata",
		Role:        "Kaurava Prince and Rival to the Pandavas",
	},
	"dushasana": {
		PrimaryName: "Dushasana",
		Description: "Second Kaurava brother, known for dragging Draupadi",
		Role:        "Kaurava Prince",
	},

	// Teachers and sages
	"dronacharya": {
		PrimaryName: "Dronacharya",
		Aliases:     []string{"Drona", "Dronacarya"},
		Description: "Teacher of both Pandavas and Kauravas in military arts",
		Role:        "Royal Guru and Military Trainer",
	},
	"kripacharya": {
		PrimaryName: "Kripacharya",
		Aliases:     []string{"Kripa"},
		Description: "Teacher of the Kuru princes and a great warrior",
		Role:        "Royal Priest and Teacher",
	},

	// Elders and court
	"bhishma": {
		PrimaryName: "Bhishma",
		Aliases:     []string{"Devavrata", "Gangeya", "Shantanu-nandana"},
		Description: "Grandsire of the Kuru dynasty, took a vow of celibacy",
		Role:        "Elder Statesman and Commander of Kaurava Army",
	},
	"dhritarashtra": {
		PrimaryName: "Dhritarashtra",
		Description: "Blind king and father of the Kauravas",
		Role:        "King of Hastinapura",
	},
	"vidura": {
		PrimaryName: "Vidura",
		Aliases:     []string{"Kshatri"},
		Description: "Half-brother to Dhritarashtra, known for his wisdom",
		Role:        "Prime Minister and Advisor",
	},
	"sanjaya": {
		PrimaryName: "Sanjaya",
		Description: "Dhritarashtra's charioteer and minister, narrator of the Bhagavad Gita",
		Role:        "Narrator and Advisor",
	},
	"karna": {
		PrimaryName: "Karna",
		Aliases:     []string{"Radheya", "Vaikartana", "Sutaputra"},
		Description: "Eldest son of Kunti, raised by a charioteer, ally of Duryodhana",
		Role:        "Mighty Warrior and Kaurava Ally",
	},
	"drupada": {
		PrimaryName: "Drupada",
		Aliases:     []string{"Yajnasena"},
		Description: "King of Panchala, father of Draupadi and Dhrishtadyumna",
		Role:        "Ally of the Pandavas",
	},
	"draupadi": {
		PrimaryName: "Draupadi",
		Aliases:     []string{"Krishnaa", "Panchali", "Yajnaseni"},
		Description: "Wife of the Pandavas, daughter of King Drupada",
		Role:        "Queen of the Pandavas",
	},
	"shakuni": {
		PrimaryName: "Shakuni",
		Aliases:     []string{"Saubala"},
		Description: "Maternal uncle of Duryodhana, mastermind behind the dice game",
		Role:        "Kaurava Advisor and Strategist",
	},

	// Divine beings
	"indra": {
		PrimaryName: "Indra",
		Aliases:     []string{"Sakra", "Devaraja", "Purandara"},
		Description: "King of the Devas and father of Arjuna",
		Role:        "Vedic Deity",
	},
	"surya": {
		PrimaryName: "Surya",
		Aliases:     []string{"Vivasvan", "Aditya"},
		Description: "Sun god and father of Karna",
		Role:        "Solar Deity",
	},
	"yama": {
		PrimaryName: "Yama",
		Aliases:     []string{"Dharmaraja", "Mrityu"},
		Description: "God of death and justice, father of Yudhishthira",
		Role:        "Deity of Death and Dharma",
	},
	"vayu": {
		PrimaryName: "Vayu",
		Aliases:     []string{"Pavana", "Matali"},
		Description: "God of wind and father of Bhima",
		Role:        "Vedic Deity",
	},

	// Sages and rishis
	"vyasa": {
		PrimaryName: "Vyasa",
		Aliases:     []string{"Vedavyasa", "Krishna Dvaipayana"},
		Description: "Compiler of the Vedas and author of the Mahabharata",
		Role:        "Sage and Author",
	},
	"parashurama": {
		PrimaryName: "Parashurama",
		Aliases:     []string{"Bhargava", "Jamadagnya"},
		Description: "Sixth avatar of Vishnu, teacher of Bhishma, Drona, and Karna",
		Role:        "Warrior Sage",
	},

	// Other important characters
	"abhimanyu": {
		PrimaryName: "Abhimanyu",
		Aliases:     []string{"Arjuni", "Subhadra-nandana"},
		Description: "Son of Arjuna and Subhadra, married to Uttara",
		Role:        "Pandava Prince and Warrior",
	},
	"gandhari": {
		PrimaryName: "Gandhari",
		Description: "Wife of Dhritarashtra and mother of the Kauravas",
		Role:        "Queen Mother of the Kauravas",
	},
	"kunti": {
		PrimaryName: "Kunti",
		Aliases:     []string{"Pritha"},
		Description: "Mother of the Pandavas (except Sahadeva and Nakula)",
		Role:        "Mother of the Pandavas",
	},
	"madri": {
		PrimaryName: "Madri",
		Description: "Second wife of Pandu, mother of Nakula and Sahadeva",
		Role:        "Mother of the Pandava Twins",
	},
}

// commonMisspellings maps a known lowercase name or alias to
// misspellings seen in user queries. Variants resolve to the same
// canonical name as the key they extend.
var commonMisspellings = map[string][]string{
	"krishna": {"krsna", "krushna", "krishn", "krishana", "krisna", "krshna"},
	"krsna":   {"krishna", "krushna", "krishn", "krishana", "krisna", "krshna"},

	"arjuna": {"arjun", "arjoon", "arjoona", "arjunn"},

	"bhishma": {"bheeshma", "bheeshm", "bhishm", "bheesma", "bheeshmaa"},

	"duryodhana": {"duryodhan", "duryodhna", "duryodhanna"},

	"yudhishthira": {"yudhisthira", "yudhishtir", "yudhisthir", "dharmaraja"},

	"draupadi": {"dropadi", "panchali", "krishnaa"},

	"karna": {"karn", "karan", "karana", "radheya"},

	"dronacharya": {"drona", "dron", "dronacarya"},
}

// CharacterInfo looks a character up by any of their names or aliases,
// case-insensitively.
func CharacterInfo(name string) (Character, bool) {
	lower := lowerTrim(name)

	if c, ok := Characters[lower]; ok {
		return c, true
	}
	for _, c := range Characters {
		if lowerTrim(c.PrimaryName) == lower {
			return c, true
		}
	}
	for _, c := range Characters {
		for _, alias := range c.Aliases {
			if lowerTrim(alias) == lower {
				return c, true
			}
		}
	}
	return Character{}, false
}

// AllNames returns every primary name and alias in the database,
// sorted and deduplicated.
func AllNames() []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range Characters {
		for _, name := range append([]string{c.PrimaryName}, c.Aliases...) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}
