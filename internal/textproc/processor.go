// Package textproc lemmatizes and masks caption text for bias analysis.
package textproc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Processor tokenizes and lemmatizes English caption text.
type Processor struct {
	lemmatizer *golem.Lemmatizer
}

// NewProcessor creates a Processor backed by the English lemma dictionary.
func NewProcessor() (*Processor, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load english lemma dictionary: %w", err)
	}
	return &Processor{lemmatizer: l}, nil
}

// Tokenize lowercases a caption and splits it into word tokens.
// Punctuation is dropped; apostrophes inside words are kept, as are
// angle brackets so mask placeholders like "<unk>" survive as whole
// tokens and land on their reserved vocabulary index.
func (p *Processor) Tokenize(caption string) []string {
	return strings.FieldsFunc(strings.ToLower(caption), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '<' && r != '>'
	})
}

// Lemma returns the lemma of a single lowercased token. Tokens absent
// from the dictionary come back unchanged.
func (p *Processor) Lemma(token string) string {
	return p.lemmatizer.Lemma(strings.ToLower(token))
}

// LemmaTokens tokenizes a caption and lemmatizes every token.
func (p *Processor) LemmaTokens(caption string) []string {
	tokens := p.Tokenize(caption)
	for i, tok := range tokens {
		tokens[i] = p.lemmatizer.Lemma(tok)
	}
	return tokens
}
