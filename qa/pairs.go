package qa

import "strings"

// QAPair is one curated question/answer entry.
type QAPair struct {
	Question        string   `json:"question"`
	Answer          string   `json:"answer"`
	Category        string   `json:"category"`
	VerseReferences []string `json:"verse_references"`
	Keywords        []string `json:"keywords"`
}

// Categories organizes the curated questions.
var Categories = []string{
	"Basic Information",
	"Philosophical Concepts",
	"Key Teachings",
	"Characters",
	"Practical Applications",
	"Spiritual Practices",
	"Modern Relevance",
}

// DefaultQAPairs is the curated question/answer table consulted before
// the corpus search.
var DefaultQAPairs = []QAPair{
	{
		Question:        "What is the Bhagavad Gita?",
		Answer:          "The Bhagavad Gita, often referred to as the Gita, is a 700-verse Hindu scripture that is part of the epic Mahabharata. It is a conversation between Prince Arjuna and Lord Krishna, who serves as his charioteer, addressing the moral and philosophical dilemmas Arjuna faces on the battlefield of Kurukshetra.",
		Category:        "Basic Information",
		VerseReferences: []string{"Introduction"},
		Keywords:        []string{"introduction", "overview", "what is", "basics"},
	},
	{
		Question:        "Who wrote the Bhagavad Gita?",
		Answer:          "The Bhagavad Gita is part of the Mahabharata, which was composed by the sage Vyasa. The text itself is a dialogue between Lord Krishna and Arjuna, with Sanjaya narrating the conversation to King Dhritarashtra.",
		Category:        "Basic Information",
		VerseReferences: []string{"1.1"},
		Keywords:        []string{"author", "written by", "composed by", "origin"},
	},
	{
		Question:        "How many chapters are in the Bhagavad Gita?",
		Answer:          "The Bhagavad Gita consists of 18 chapters with a total of 700 verses. Each chapter focuses on a particular theme or teaching covering life, philosophy, and spirituality.",
		Category:        "Basic Information",
		VerseReferences: []string{"18.78"},
		Keywords:        []string{"chapters", "verses", "length", "structure"},
	},
	{
		Question:        "What is Karma Yoga according to the Gita?",
		Answer:          "Karma Yoga is the path of selfless action: performing one's prescribed duties without attachment to the results, offering all actions to God. Lord Krishna teaches that by working in this consciousness one can attain liberation while still fulfilling worldly responsibilities.",
		Category:        "Philosophical Concepts",
		VerseReferences: []string{"2.47-48", "3.19-20", "5.10", "18.6-9"},
		Keywords:        []string{"karma", "action", "duty", "selfless service"},
	},
	{
		Question:        "What is Bhakti Yoga in the Gita?",
		Answer:          "Bhakti Yoga is the path of loving devotion to the Supreme Lord, Krishna, described by the Gita as the highest and most direct path to spiritual realization. It involves pure love for God, constant remembrance of the divine, and surrendering all actions and their results to the Lord.",
		Category:        "Philosophical Concepts",
		VerseReferences: []string{"9.34", "12.1-20", "18.54-55"},
		Keywords:        []string{"devotion", "bhakti", "love of God", "surrender"},
	},
	{
		Question:        "What is the main message of the Bhagavad Gita?",
		Answer:          "The central message of the Bhagavad Gita is the attainment of spiritual freedom through selfless action, devotion, and knowledge. Key teachings include performing your duty without attachment to results, the eternal and indestructible nature of the soul, complete surrender to God, and equanimity in success and failure.",
		Category:        "Key Teachings",
		VerseReferences: []string{"2.47", "18.66", "2.20", "9.27"},
		Keywords:        []string{"main message", "central teaching", "purpose", "essence"},
	},
	{
		Question:        "What does the Gita say about the soul?",
		Answer:          "The Gita teaches that the soul is eternal, indestructible, and immutable, distinct from the body and mind. The soul is never born nor does it ever die, and it is a tiny, indestructible part of the Supreme Lord. The ultimate goal is to realize one's eternal spiritual identity.",
		Category:        "Key Teachings",
		VerseReferences: []string{"2.12-30", "15.7-10", "13.1-6"},
		Keywords:        []string{"soul", "atman", "self", "consciousness", "rebirth"},
	},
	{
		Question:        "Who is Arjuna in the Bhagavad Gita?",
		Answer:          "Arjuna is the central human figure of the Gita, a mighty warrior prince of the Pandava dynasty and the best archer of his time. His moral dilemma on the battlefield of Kurukshetra forms the backdrop for Krishna's teachings, and his questions make him the ideal example of a disciple.",
		Category:        "Characters",
		VerseReferences: []string{"1.20-47", "2.1-10", "11.31-34"},
		Keywords:        []string{"Arjuna", "Pandava", "warrior", "disciple", "student"},
	},
	{
		Question:        "Who is Lord Krishna in the Bhagavad Gita?",
		Answer:          "Lord Krishna is the Supreme Personality of Godhead who serves as Arjuna's charioteer and spiritual master. He reveals His universal form in Chapter 11 and teaches the paths of karma yoga, jnana yoga, and bhakti yoga, ultimately revealing pure devotional service as the highest spiritual practice.",
		Category:        "Characters",
		VerseReferences: []string{"4.6-8", "7.7", "10.8-11", "11.1-55"},
		Keywords:        []string{"Krishna", "God", "Supreme", "charioteer", "teacher"},
	},
	{
		Question:        "How can I apply the Gita's teachings in daily life?",
		Answer:          "Perform your duties with dedication but without attachment to results, maintain equanimity in success and failure, cultivate self-control over the mind and senses, practice seeing the divine in all beings, control anger and desire, and cultivate devotion and surrender to the divine.",
		Category:        "Practical Applications",
		VerseReferences: []string{"2.47-50", "6.5-6", "12.13-20", "18.65-66"},
		Keywords:        []string{"daily life", "practical", "application", "modern life"},
	},
	{
		Question:        "What is meditation according to the Gita?",
		Answer:          "The Gita describes meditation as a systematic process for controlling the mind and realizing the self: sitting in a clean, sacred place, focusing the mind on the Supreme, practicing moderation in eating, sleeping, work, and recreation, and withdrawing the senses from sense objects. The highest meditation is to always think of the Supreme with love and devotion.",
		Category:        "Spiritual Practices",
		VerseReferences: []string{"6.10-28", "12.6-12", "8.7-10"},
		Keywords:        []string{"meditation", "dhyana", "contemplation", "mind control"},
	},
	{
		Question:        "How is the Bhagavad Gita relevant today?",
		Answer:          "The Gita addresses universal human concerns that transcend time and culture: dealing with stress and anxiety, ethical decision-making, non-attachment in a materialistic world, work as worship, and a path to inner peace in an increasingly chaotic world.",
		Category:        "Modern Relevance",
		VerseReferences: []string{"2.11-30", "3.19-21", "6.5-6"},
		Keywords:        []string{"modern life", "relevance today", "contemporary"},
	},
}

// minQAPairOverlap is the distinct-word overlap a curated question must
// share with the user question to count as a match.
const minQAPairOverlap = 3

// MatchQAPair finds the first curated pair whose question shares enough
// words with the user question.
func MatchQAPair(question string, pairs []QAPair) (QAPair, bool) {
	questionWords := wordSet(question)

	for _, qa := range pairs {
		overlap := 0
		for word := range wordSet(qa.Question) {
			if questionWords[word] {
				overlap++
			}
		}
		if overlap >= minQAPairOverlap {
			return qa, true
		}
	}
	return QAPair{}, false
}

// RelatedQuestions returns up to limit curated questions whose word
// overlap with the user question exceeds 0.2 of the user's words,
// highest overlap first.
func RelatedQuestions(question string, pairs []QAPair, limit int) []QAPair {
	userWords := wordSet(question)
	if len(userWords) == 0 || limit <= 0 {
		return nil
	}

	type scored struct {
		score float64
		pair  QAPair
	}
	var matches []scored
	for _, qa := range pairs {
		overlap := 0
		for word := range wordSet(qa.Question) {
			if userWords[word] {
				overlap++
			}
		}
		score := float64(overlap) / float64(len(userWords))
		if score > 0.2 {
			matches = append(matches, scored{score: score, pair: qa})
		}
	}

	// Stable by table order within equal scores.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].score > matches[j-1].score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	n := min(limit, len(matches))
	out := make([]QAPair, n)
	for i := range out {
		out[i] = matches[i].pair
	}
	return out
}

// QAPairsByCategory filters the curated table by exact category.
func QAPairsByCategory(category string, pairs []QAPair) []QAPair {
	var out []QAPair
	for _, qa := range pairs {
		if qa.Category == category {
			out = append(out, qa)
		}
	}
	return out
}

func wordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, word := range strings.Fields(strings.ToLower(strings.TrimSpace(s))) {
		set[word] = true
	}
	return set
}
