// Package summarizer produces short extractive summaries. The helpdesk
// view uses it to fill in ticket summaries when the document store's
// GenAI summary is missing.
package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// FrequencySummarizer ranks sentences by normalized word frequency with
// stopwords filtered out, then emits the top sentences in their original
// order.
type FrequencySummarizer struct {
	wordRe     *regexp.Regexp
	sentenceRe *regexp.Regexp
	stopwords  map[string]struct{}
}

func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{
		wordRe:     regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		sentenceRe: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
		stopwords:  stopwords,
	}
}

// Summarize returns up to maxSentences sentences of text, chosen by
// token-frequency score. Text without sentence punctuation is returned
// trimmed as-is.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 5
	}
	sentences := s.sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}
	tokenized := make([][]string, len(sentences))
	freq := map[string]float64{}
	for i, sentence := range sentences {
		tokenized[i] = s.tokens(sentence)
		for _, tok := range tokenized[i] {
			if _, skip := s.stopwords[tok]; skip {
				continue
			}
			freq[tok]++
		}
	}
	maxFreq := 0.0
	for _, v := range freq {
		maxFreq = math.Max(maxFreq, v)
	}
	if maxFreq > 0 {
		for k := range freq {
			freq[k] /= maxFreq
		}
	}
	type scored struct {
		idx   int
		score float64
	}
	ranking := make([]scored, len(sentences))
	for i := range sentences {
		score := 0.0
		for _, tok := range tokenized[i] {
			score += freq[tok]
		}
		// length normalization so long sentences don't dominate
		if n := float64(len(tokenized[i])); n > 0 {
			score /= math.Sqrt(n)
		}
		ranking[i] = scored{i, score}
	}
	sort.Slice(ranking, func(i, j int) bool { return ranking[i].score > ranking[j].score })
	if maxSentences > len(ranking) {
		maxSentences = len(ranking)
	}
	keep := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		keep[i] = ranking[i].idx
	}
	sort.Ints(keep)
	parts := make([]string, 0, len(keep))
	for _, idx := range keep {
		parts = append(parts, strings.TrimSpace(sentences[idx]))
	}
	return strings.Join(parts, " "), nil
}

func (s *FrequencySummarizer) tokens(text string) []string {
	return s.wordRe.FindAllString(strings.ToLower(text), -1)
}

var stopwords = func() map[string]struct{} {
	words := strings.Fields("a an the and or but if then else for to of in on at by with as is are was were be been being it this that these those from up down over under again further than so such into about between through during before after above below out off own same too very can will just don should now")
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
