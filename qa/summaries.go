package qa

import "strings"

// chapterSummaries holds one line per chapter of the Gita, in order.
var chapterSummaries = []string{
	"Chapter 1: Arjuna's Dilemma - Observing the Armies on the Battlefield of Kurukshetra. Arjuna is overcome with grief and refuses to fight.",
	"Chapter 2: The Eternal Reality of the Soul's Immortality - Krishna begins teaching Arjuna about the eternal nature of the soul and the importance of duty.",
	"Chapter 3: Karma-yoga - The Eternal Duties of Human Beings - Krishna explains the concept of selfless action and performing one's duty without attachment to results.",
	"Chapter 4: Approaching the Ultimate Truth - Krishna reveals His divine nature and explains the purpose of His periodic descents to Earth.",
	"Chapter 5: Action and Renunciation - The path of knowledge and the path of selfless action both lead to the same goal.",
	"Chapter 6: The Science of Self-Realization - The practice of meditation and the characteristics of a perfect yogi are described.",
	"Chapter 7: Knowledge of the Ultimate Truth - Krishna explains His divine and material energies and how to know Him completely.",
	"Chapter 8: Attaining the Supreme - The nature of the Supreme, the process of leaving the body, and the destination of different types of yogis.",
	"Chapter 9: The Most Confidential Knowledge - The most secret wisdom of the Gita is revealed: pure devotional service to Krishna.",
	"Chapter 10: The Infinite Glories of the Supreme - Krishna describes His divine manifestations and opulences.",
	"Chapter 11: The Universal Form - Arjuna requests to see Krishna's universal form and is granted divine vision to behold it.",
	"Chapter 12: The Path of Devotion - The process of devotional service and the characteristics of devotees are described.",
	"Chapter 13: The Individual and the Ultimate - The difference between the body, the soul, and the Supersoul is explained.",
	"Chapter 14: The Three Modes of Material Nature - The three gunas (modes of material nature) and their influence on living entities.",
	"Chapter 15: The Yoga of the Supreme Person - The nature of the material world and the path to liberation are described.",
	"Chapter 16: The Divine and Demoniac Natures - The divine and demoniac qualities of living beings are contrasted.",
	"Chapter 17: The Three Kinds of Faith - The three types of faith and their relationship to the three modes of material nature.",
	"Chapter 18: Final Revelations of the Ultimate Truth - The conclusion of the Gita, summarizing the paths of knowledge, action, and devotion.",
}

var summaryRequestTerms = []string{
	"summary of chapters",
	"chapter summary",
	"summarize chapters",
	"list of chapters",
}

// ChapterSummariesText returns all chapter summaries as one block.
func ChapterSummariesText() string {
	return strings.Join(chapterSummaries, "\n\n")
}

// ChapterSummary returns the summary line for a chapter, 1 to 18.
func ChapterSummary(chapter int) (string, bool) {
	if chapter < 1 || chapter > len(chapterSummaries) {
		return "", false
	}
	return chapterSummaries[chapter-1], true
}

// IsSummaryRequest reports whether the question asks for the chapter
// overview rather than a specific answer.
func IsSummaryRequest(question string) bool {
	lower := strings.ToLower(question)
	for _, term := range summaryRequestTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
