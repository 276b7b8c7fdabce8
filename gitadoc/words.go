package gitadoc

// CommonWords is the dictionary used by the corrector for split and merge
// decisions. It combines the most common English words, verb forms that
// show up in the translation prose, and domain vocabulary.
var CommonWords = map[string]bool{
	// Top common words
	"the": true, "be": true, "to": true, "of": true, "and": true,
	"a": true, "in": true, "that": true, "have": true, "i": true,
	"it": true, "for": true, "not": true, "on": true, "with": true,
	"he": true, "as": true, "you": true, "do": true, "at": true,
	"this": true, "but": true, "his": true, "by": true, "from": true,
	"they": true, "we": true, "say": true, "her": true, "she": true,
	"or": true, "an": true, "will": true, "my": true, "one": true,
	"all": true, "would": true, "there": true, "their": true, "what": true,
	"so": true, "up": true, "out": true, "if": true, "about": true,
	"who": true, "get": true, "which": true, "go": true, "me": true,
	"when": true, "make": true, "can": true, "like": true, "time": true,
	"no": true, "just": true, "him": true, "know": true, "take": true,
	"people": true, "into": true, "year": true, "your": true, "good": true,
	"some": true, "could": true, "them": true, "see": true, "other": true,
	"than": true, "then": true, "now": true, "look": true, "only": true,
	"come": true, "its": true, "over": true, "think": true, "also": true,
	"back": true, "after": true, "use": true, "two": true, "how": true,
	"our": true, "work": true, "first": true, "well": true, "way": true,
	"even": true, "new": true, "want": true, "because": true, "any": true,
	"these": true, "give": true, "day": true, "most": true, "us": true,
	"was": true, "were": true, "been": true, "being": true, "am": true,
	"are": true, "is": true, "has": true, "had": true, "having": true,
	"did": true, "does": true, "done": true, "doing": true,
	"said": true, "says": true, "saying": true, "made": true, "makes": true,
	"here": true, "where": true, "why": true, "each": true, "such": true,
	"much": true, "many": true, "few": true, "several": true,
	"between": true, "during": true, "before": true, "above": true,
	"below": true, "through": true, "under": true, "against": true,
	"within": true, "without": true, "shall": true, "may": true,
	"must": true, "should": true, "might": true, "ought": true,
	"need": true, "understand": true, "understanding": true,
	// Translation prose vocabulary
	"lord": true, "supreme": true, "personality": true, "godhead": true,
	"soul": true, "body": true, "mind": true, "spirit": true, "spiritual": true,
	"material": true, "world": true, "nature": true, "duty": true, "action": true,
	"actions": true, "reaction": true, "reactions": true, "knowledge": true,
	"devotion": true, "devotee": true, "devotional": true, "service": true,
	"serving": true, "offering": true, "sacrifice": true, "renunciation": true,
	"liberation": true, "meditation": true, "consciousness": true,
	"transcendental": true, "eternal": true, "imperishable": true,
	"perfection": true, "preparation": true, "purpose": true, "battle": true,
	"battlefield": true, "warrior": true, "king": true, "sage": true,
	"teacher": true, "disciple": true, "chapter": true, "verse": true,
	"text": true, "translation": true, "purport": true, "change": true,
	"perform": true, "performed": true, "attain": true, "attained": true,
	"worship": true, "surrender": true, "fruits": true, "senses": true,
	"intelligence": true, "living": true, "entity": true, "entities": true,
	// Domain vocabulary (transliterated terms kept lowercase)
	"karma": true, "dharma": true, "bhakti": true, "yoga": true,
	"krishna": true, "arjuna": true, "bhagavad": true, "gita": true,
	"veda": true, "vedas": true, "vedic": true, "upanishad": true,
	"bhagavan": true, "atman": true, "atma": true, "brahman": true,
	"moksha": true, "samsara": true, "maya": true, "prakriti": true,
	"purusha": true, "guna": true, "gunas": true, "jnana": true,
	"yogi": true, "yogin": true, "sankhya": true, "ishvara": true,
	"jiva": true, "mahatma": true, "mantra": true, "guru": true,
}

// shortFunctionWords are two-letter words that the error classifier never
// flags, regardless of frequency.
var shortFunctionWords = map[string]bool{
	"a": true, "i": true, "an": true, "at": true, "be": true, "by": true,
	"do": true, "go": true, "he": true, "hi": true, "in": true, "is": true,
	"it": true, "me": true, "my": true, "no": true, "of": true, "on": true,
	"or": true, "so": true, "to": true, "up": true, "us": true, "we": true,
}

// domainTerms are proper nouns and transliterated vocabulary that must
// never be classified as extraction errors. Matched case-insensitively.
var domainTerms = map[string]bool{
	"krishna": true, "arjuna": true, "bhagavad": true, "gita": true,
	"veda": true, "upanishad": true, "bhagavan": true, "atman": true,
	"atma": true, "brahman": true, "moksha": true, "samsara": true,
	"yoga": true, "yogi": true, "yogin": true, "sankhya": true,
	"jiva": true, "mahatma": true, "karma": true, "dharma": true,
	"bhakti": true, "jnana": true, "maya": true, "prakriti": true,
	"purusha": true, "guna": true, "ishvara": true, "soul": true,
	"bhishma": true, "duryodhana": true, "dronacharya": true, "karna": true,
	"vidura": true, "vyasa": true, "dhritarashtra": true, "gandhari": true,
	"kunti": true, "draupadi": true, "subhadra": true, "vasudeva": true,
	"devaki": true, "nanda": true, "yashoda": true, "balarama": true,
	"parikshit": true, "janaka": true, "valmiki": true, "vishnu": true,
	"shiva": true, "brahma": true, "lakshmi": true, "saraswati": true,
	"parvati": true, "durga": true, "kali": true, "hanuman": true,
	"garuda": true, "shesha": true, "indra": true, "agni": true,
	"vayu": true, "varuna": true, "yama": true, "kubera": true,
	"vishvamitra": true, "vasishtha": true, "bharata": true,
	"ramayana": true, "mahabharata": true, "pandava": true, "kaurava": true,
	"kuru": true, "panchala": true, "gandhara": true, "kamboja": true,
	"sindhu": true, "sauvira": true, "madra": true, "kekaya": true,
	"kosala": true, "videha": true,
}

// commonConcatenations maps extraction artifacts, both merged words and
// words broken by a stray space, to their repaired forms. Seeded by hand
// from recurring breakages in the source edition.
var commonConcatenations = map[string]string{
	"th is":        "this",
	"theBhagavad":  "the Bhagavad",
	"theGita":      "the Gita",
	"theLord":      "the Lord",
	"theSupreme":   "the Supreme",
	"acti ons":     "actions",
	"changeth is":  "change this",
	"perfecti on":  "perfection",
	"reacti ons":   "reactions",
	"preparati on": "preparation",
	"servi ng":     "serving",
	"offeri ng":    "offering",
	"donot":        "do not",
	"tounderstand": "to understand",
	"soulis":       "soul is",
	"karmais":      "karma is",
	"yogais":       "yoga is",
	"krishnasaid":  "Krishna said",
	"arjunasaid":   "Arjuna said",
	"lordkrishna":  "Lord Krishna",
	"bhagavadgita": "Bhagavad Gita",

	"theSupremePersonalityofGodhead": "the Supreme Personality of Godhead",
	"theSupremePersonalityofGod":     "the Supreme Personality of God",
	"theSupremePersonality":          "the Supreme Personality",
	"theSupremeLord":                 "the Supreme Lord",
	"theBhagavadGita":                "the Bhagavad Gita",
	"theBhagavadGitaAsItIs":          "the Bhagavad Gita As It Is",
}

// ocrSubstitution is one confusable-sequence replacement candidate.
// Order matters: multi-character confusions are tried before single
// characters.
type ocrSubstitution struct {
	bad  string
	good string
}

var ocrSubstitutions = []ocrSubstitution{
	{"rn", "m"}, {"vv", "w"}, {"cl", "d"}, {"ij", "n"},
	{"1", "l"}, {"0", "o"}, {"5", "s"}, {"8", "b"}, {"6", "b"}, {"9", "g"},
	{"|", "l"}, {"\\", "l"}, {"/", "l"},
	{"@", "a"}, {"$", "s"}, {"!", "i"}, {"+", "t"},
}

// splitFirstWords are function words that make a camel-case split
// trustworthy when they come out as the first segment.
var splitFirstWords = map[string]bool{
	"the": true, "and": true, "but": true, "or": true, "for": true,
	"nor": true, "so": true, "yet": true, "a": true, "an": true,
	"in": true, "on": true, "at": true, "by": true, "to": true,
	"of": true, "with": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true,
	"did": true, "will": true, "would": true, "shall": true,
	"should": true, "may": true, "might": true, "must": true,
	"can": true, "could": true,
}

// commonPrefixes and commonSuffixes guide split-point search in long
// merged tokens.
var commonPrefixes = map[string]bool{
	"un": true, "re": true, "in": true, "im": true, "dis": true,
	"en": true, "pre": true, "pro": true, "sub": true, "trans": true,
	"non": true, "mis": true, "over": true, "under": true, "out": true,
	"up": true, "down": true, "off": true, "on": true, "fore": true,
	"with": true,
}

var commonSuffixes = map[string]bool{
	"ing": true, "ed": true, "ly": true, "ment": true, "tion": true,
	"sion": true, "ness": true, "less": true, "ful": true, "able": true,
	"ible": true, "ant": true, "ent": true, "ism": true, "ist": true,
	"ity": true, "ty": true, "ive": true, "ize": true, "ise": true,
	"ify": true, "fy": true, "en": true, "er": true, "or": true, "al": true,
}

// isKnownWord checks the dictionary case-insensitively.
func isKnownWord(word string) bool {
	return CommonWords[word] || domainTerms[word]
}
