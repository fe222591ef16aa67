// internal/sentiment/analyzer.go
package sentiment

import (
	"strings"
	"unicode"

	"github.com/abubakkarrazadev-gif/Intelligent-Product-Ranking-Recommendation-System/internal/models"
)

// Label thresholds: polarity above positiveThreshold is Positive, below
// its negation is Negative, anything else Neutral. Fixed tunables.
const (
	positiveThreshold = 0.10
	negativeThreshold = -0.10

	// Feature phrases need a stronger average polarity than single labels.
	featureThreshold = 0.15

	maxFeaturePhrases = 5
	minPhraseLength   = 3
)

// Analyzer scores free text for polarity and derives pros/cons phrases from
// review batches. It is stateless and safe for concurrent use.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze estimates the polarity of a text in [-1, 1] and maps it to a
// label. Empty text is (0, Neutral).
func (a *Analyzer) Analyze(text string) (float64, string) {
	if text == "" {
		return 0.0, models.SentimentNeutral
	}

	tokens := tokenize(text)

	var sum float64
	var matched int
	for i, token := range tokens {
		polarity, ok := polarityLexicon[token]
		if !ok {
			continue
		}
		if negatedAt(tokens, i) {
			polarity = -polarity
		}
		sum += polarity
		matched++
	}

	if matched == 0 {
		return 0.0, models.SentimentNeutral
	}

	polarity := sum / float64(matched)
	if polarity > 1 {
		polarity = 1
	} else if polarity < -1 {
		polarity = -1
	}

	return polarity, labelFor(polarity)
}

// ExtractFeatures derives up to five pros and five cons from a batch of
// review texts. Each sentence's candidate phrases inherit that sentence's
// polarity; a phrase whose average polarity clears the feature threshold
// lands in the matching bucket. Buckets are deduplicated and keep
// first-seen order.
func (a *Analyzer) ExtractFeatures(texts []string) models.FeatureSet {
	features := models.FeatureSet{
		Pros: []string{},
		Cons: []string{},
	}

	polarities := make(map[string][]float64)
	var order []string

	for _, text := range texts {
		for _, sent := range splitSentences(text) {
			polarity, _ := a.Analyze(sent)
			for _, phrase := range candidatePhrases(sent) {
				if _, seen := polarities[phrase]; !seen {
					order = append(order, phrase)
				}
				polarities[phrase] = append(polarities[phrase], polarity)
			}
		}
	}

	for _, phrase := range order {
		scores := polarities[phrase]
		// Minimum-mention filter: a candidate always carries at least one
		// score, so single-mention phrases stay eligible.
		if len(scores) < 1 {
			continue
		}

		var sum float64
		for _, s := range scores {
			sum += s
		}
		avg := sum / float64(len(scores))

		switch {
		case avg > featureThreshold && len(features.Pros) < maxFeaturePhrases:
			features.Pros = append(features.Pros, phrase)
		case avg < -featureThreshold && len(features.Cons) < maxFeaturePhrases:
			features.Cons = append(features.Cons, phrase)
		}
	}

	return features
}

func labelFor(polarity float64) string {
	switch {
	case polarity > positiveThreshold:
		return models.SentimentPositive
	case polarity < negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// negatedAt reports whether the token at index i sits in the scope of a
// negator (either of the two preceding tokens).
func negatedAt(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if negators[tokens[j]] {
			return true
		}
	}
	return false
}

// tokenize lowercases the text and strips everything but letters and
// digits, so "Don't" becomes "dont" and "screen," becomes "screen".
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, f)
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

func splitSentences(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// candidatePhrases picks the tokens of a sentence that can serve as feature
// phrases: long enough, not fillers, not opinion words themselves.
func candidatePhrases(sentence string) []string {
	var phrases []string
	for _, token := range tokenize(sentence) {
		if len(token) < minPhraseLength {
			continue
		}
		if stopwords[token] || negators[token] {
			continue
		}
		if _, isOpinion := polarityLexicon[token]; isOpinion {
			continue
		}
		phrases = append(phrases, token)
	}
	return phrases
}
