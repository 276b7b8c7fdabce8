package qa

import "strings"

// AnswerPrefix opens every generated answer.
const AnswerPrefix = "Hare Krishna! "

const (
	minKeyTermLen          = 3
	minTeachingSentenceLen = 50
)

var teachingQuestionTerms = []string{"teach", "teaching", "lesson", "what does krishna say"}

var teachingSentenceTerms = []string{"teach", "says", "explain", "therefore", "krishna said"}

// splitSentences breaks text after sentence-ending punctuation followed
// by whitespace, keeping the punctuation with the sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		switch runes[i] {
		case '.', '!', '?':
			if runes[i+1] == ' ' || runes[i+1] == '\t' || runes[i+1] == '\n' || runes[i+1] == '\r' {
				sentences = append(sentences, strings.TrimSpace(string(runes[start:i+1])))
				j := i + 1
				for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t' || runes[j] == '\n' || runes[j] == '\r') {
					j++
				}
				start = j
				i = j - 1
			}
		}
	}
	if start < len(runes) {
		if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
			sentences = append(sentences, rest)
		}
	}
	return sentences
}

// ExtractBestAnswer picks the passage sentence most relevant to the
// question and formats it as an answer.
func ExtractBestAnswer(question, text string) string {
	questionLower := strings.ToLower(question)
	sentences := splitSentences(text)

	var keyTerms []string
	for _, term := range strings.Fields(questionLower) {
		if len(term) > minKeyTermLen {
			keyTerms = append(keyTerms, term)
		}
	}

	// Teaching questions prefer sentences that report speech.
	if containsAny(questionLower, teachingQuestionTerms) {
		for _, sentence := range sentences {
			if containsAny(strings.ToLower(sentence), teachingSentenceTerms) && len(sentence) > minTeachingSentenceLen {
				return AnswerPrefix + sentence
			}
		}
	}

	if len(sentences) == 0 {
		return AnswerPrefix + "No answer found"
	}

	bestSentence := sentences[0]
	bestScore := -1
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		score := 0
		for _, term := range keyTerms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			bestSentence = sentence
		}
	}

	if bestScore > 0 {
		return AnswerPrefix + bestSentence
	}
	return AnswerPrefix + sentences[0]
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
