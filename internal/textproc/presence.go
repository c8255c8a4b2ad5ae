package textproc

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LabelPresence reports, for each label, whether its lemma occurs among
// the lemmatized tokens of each caption. Matching is exact whole-token
// equality after lemmatization, never substring containment: "dog"
// matches "dogs run" (lemma "dog") but not "hotdog stand".
//
// The returned table has one row per caption: a "caption" column
// followed by one boolean column per label, in the given label order.
func (p *Processor) LabelPresence(labels []string, captions []string) dataframe.DataFrame {
	lemmaSets := make([]map[string]bool, len(captions))
	for i, caption := range captions {
		set := make(map[string]bool)
		for _, tok := range p.LemmaTokens(caption) {
			set[tok] = true
		}
		lemmaSets[i] = set
	}

	cols := make([]series.Series, 0, len(labels)+1)
	cols = append(cols, series.New(captions, series.String, "caption"))

	for _, label := range labels {
		lemma := p.Lemma(label)
		present := make([]bool, len(captions))
		for i := range captions {
			present[i] = lemmaSets[i][lemma]
		}
		cols = append(cols, series.New(present, series.Bool, label))
	}

	return dataframe.New(cols...)
}
