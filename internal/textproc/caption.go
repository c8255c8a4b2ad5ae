package textproc

import (
	"sort"
	"strings"
)

// Vocabulary token conventions shared with downstream attacker models.
const (
	PadToken = "<pad>"
	PadIndex = 0
	UnkToken = "<unk>"
	UnkIndex = 1
)

// MaskWords rewrites each caption with every token whose lemma matches
// a masked word replaced by token. Captions come back lowercased and
// re-joined on single spaces since masking happens in token space.
func (p *Processor) MaskWords(captions []string, words []string, token string) []string {
	masked := make(map[string]bool, len(words))
	for _, w := range words {
		masked[p.Lemma(w)] = true
	}

	out := make([]string, len(captions))
	for i, caption := range captions {
		tokens := p.Tokenize(caption)
		for j, tok := range tokens {
			if masked[p.lemmatizer.Lemma(tok)] {
				tokens[j] = token
			}
		}
		out[i] = strings.Join(tokens, " ")
	}
	return out
}

// BuildVocab builds a token-to-index vocabulary over the captions.
// Index 0 is the pad token and index 1 the unknown token; remaining
// tokens are assigned by descending frequency, ties broken
// alphabetically, so the mapping is deterministic.
func (p *Processor) BuildVocab(captions []string) map[string]int {
	freq := make(map[string]int)
	for _, caption := range captions {
		for _, tok := range p.Tokenize(caption) {
			freq[tok]++
		}
	}
	delete(freq, PadToken)
	delete(freq, UnkToken)

	tokens := make([]string, 0, len(freq))
	for tok := range freq {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if freq[tokens[i]] != freq[tokens[j]] {
			return freq[tokens[i]] > freq[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	vocab := make(map[string]int, len(tokens)+2)
	vocab[PadToken] = PadIndex
	vocab[UnkToken] = UnkIndex
	for i, tok := range tokens {
		vocab[tok] = i + 2
	}
	return vocab
}

// Encode converts captions to fixed-length id sequences over vocab.
// Out-of-vocabulary tokens map to the unknown index. When maxLen <= 0
// the longest caption sets the length; shorter captions are padded
// with the pad index and longer ones truncated.
func (p *Processor) Encode(vocab map[string]int, captions []string, maxLen int) [][]int {
	tokenized := make([][]string, len(captions))
	longest := 0
	for i, caption := range captions {
		tokenized[i] = p.Tokenize(caption)
		if len(tokenized[i]) > longest {
			longest = len(tokenized[i])
		}
	}
	if maxLen <= 0 {
		maxLen = longest
	}

	encoded := make([][]int, len(captions))
	for i, tokens := range tokenized {
		row := make([]int, maxLen)
		for j := 0; j < maxLen && j < len(tokens); j++ {
			id, ok := vocab[tokens[j]]
			if !ok {
				id = UnkIndex
			}
			row[j] = id
		}
		encoded[i] = row
	}
	return encoded
}
