package chat

import (
	"regexp"
	"strings"
)

// Difficulty is a coarse assessment of how demanding a reply's material is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// StudyMaterials is metadata mined from a tutor reply: topics worth
// following up on, a difficulty estimate, and a rough time budget.
type StudyMaterials struct {
	Topics        []string
	Difficulty    Difficulty
	EstimatedTime string
}

// Reply is a tutor response plus the study metadata extracted from it.
type Reply struct {
	Content     string
	Suggestions []string
	Materials   StudyMaterials
}

const (
	maxSuggestions = 3
	maxTopics      = 5
)

var (
	suggestionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:study|learn|explore|practice|review)\s+[^.!?]+`),
		regexp.MustCompile(`(?i)(?:topics?|subjects?|areas?):\s*[^.!?]+`),
	}
	suggestionPrefix = regexp.MustCompile(`(?i)^(?:study|learn|explore|practice|review|topics?|subjects?|areas?):\s*`)

	topicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:topic|subject|concept|chapter):\s*[^.!?]+`),
		regexp.MustCompile(`(?i)(?:learn about|study)\s+[^.!?]+`),
	}
	topicPrefix = regexp.MustCompile(`(?i)^(?:topic|subject|concept|chapter|learn about|study):\s*`)

	advancedKeywords = []string{"advanced", "complex", "sophisticated", "intricate", "theorem", "proof", "calculus", "quantum"}
	beginnerKeywords = []string{"basic", "simple", "introduction", "fundamental", "elementary", "beginner"}
)

// parseReply extracts suggestions and study materials from raw reply text.
func parseReply(content string) Reply {
	return Reply{
		Content:     content,
		Suggestions: extractSuggestions(content),
		Materials: StudyMaterials{
			Topics:        extractTopics(content),
			Difficulty:    assessDifficulty(content),
			EstimatedTime: estimateStudyTime(content),
		},
	}
}

func extractSuggestions(content string) []string {
	var suggestions []string
	for _, pattern := range suggestionPatterns {
		for _, match := range pattern.FindAllString(content, -1) {
			clean := strings.TrimSpace(suggestionPrefix.ReplaceAllString(match, ""))
			if len(clean) > 5 && len(clean) < 100 {
				suggestions = append(suggestions, clean)
			}
		}
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func extractTopics(content string) []string {
	var topics []string
	for _, pattern := range topicPatterns {
		for _, match := range pattern.FindAllString(content, -1) {
			clean := strings.TrimSpace(topicPrefix.ReplaceAllString(match, ""))
			if len(clean) > 3 && len(clean) < 50 {
				topics = append(topics, clean)
			}
		}
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

func assessDifficulty(content string) Difficulty {
	lower := strings.ToLower(content)
	for _, kw := range advancedKeywords {
		if strings.Contains(lower, kw) {
			return DifficultyAdvanced
		}
	}
	for _, kw := range beginnerKeywords {
		if strings.Contains(lower, kw) {
			return DifficultyBeginner
		}
	}
	return DifficultyIntermediate
}

func estimateStudyTime(content string) string {
	words := len(strings.Fields(content))
	switch {
	case words < 50:
		return "15-30 minutes"
	case words < 150:
		return "30-60 minutes"
	case words < 300:
		return "1-2 hours"
	default:
		return "2-3 hours"
	}
}
