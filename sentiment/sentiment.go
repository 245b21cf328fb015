// Package sentiment scores free text for the credit engine. The engine only
// depends on the Analyzer interface, so the scorer can be swapped for an
// external service without touching the formula.
package sentiment

import "strings"

type Analyzer interface {
	// Analyze returns a signed score: > 0 positive, 0 neutral, < 0 negative.
	Analyze(text string) int
}

// lexicon maps words to AFINN-style valence weights.
var lexicon = map[string]int{
	"amazing":       4,
	"awesome":       4,
	"excellent":     3,
	"fantastic":     4,
	"great":         3,
	"good":          3,
	"wonderful":     4,
	"helpful":       2,
	"patient":       2,
	"clear":         1,
	"friendly":      2,
	"fun":           2,
	"engaging":      2,
	"insightful":    2,
	"thorough":      2,
	"recommend":     2,
	"enjoyed":       2,
	"learned":       1,
	"love":          3,
	"loved":         3,
	"best":          3,
	"perfect":       3,
	"brilliant":     4,
	"inspiring":     2,
	"supportive":    2,
	"thanks":        2,
	"thank":         2,
	"bad":           -3,
	"poor":          -2,
	"terrible":      -3,
	"awful":         -3,
	"horrible":      -3,
	"worst":         -3,
	"boring":        -2,
	"confusing":     -2,
	"unclear":       -2,
	"rude":          -2,
	"late":          -1,
	"unprepared":    -2,
	"waste":         -2,
	"useless":       -2,
	"disappointed":  -2,
	"disappointing": -2,
	"unhelpful":     -2,
	"hate":          -3,
	"hated":         -3,
	"slow":          -1,
	"wrong":         -1,
}

var negations = map[string]bool{
	"not":    true,
	"no":     true,
	"never":  true,
	"wasnt":  true,
	"wasn't": true,
	"isnt":   true,
	"isn't":  true,
	"didnt":  true,
	"didn't": true,
}

// LexiconAnalyzer is the default in-process scorer.
type LexiconAnalyzer struct{}

func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{}
}

func (a *LexiconAnalyzer) Analyze(text string) int {
	score := 0
	negate := false

	for _, raw := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(raw, ".,!?;:\"()")
		if negations[word] {
			negate = true
			continue
		}
		if v, ok := lexicon[word]; ok {
			if negate {
				v = -v
			}
			score += v
		}
		negate = false
	}
	return score
}
