package sentiment

import "testing"

func TestAnalyze(t *testing.T) {
	a := NewLexiconAnalyzer()

	tests := []struct {
		name string
		text string
		want func(int) bool
	}{
		{"positive comment", "Great session, very patient and helpful teacher!", func(s int) bool { return s > 0 }},
		{"negative comment", "Terrible, the teacher was rude and unprepared.", func(s int) bool { return s < 0 }},
		{"neutral comment", "We covered the basics of chords.", func(s int) bool { return s == 0 }},
		{"empty comment", "", func(s int) bool { return s == 0 }},
		{"negated positive", "The session was not good.", func(s int) bool { return s < 0 }},
		{"negated negative", "The explanations were never confusing.", func(s int) bool { return s > 0 }},
		{"punctuation stripped", "Amazing!!!", func(s int) bool { return s > 0 }},
		{"mixed case", "EXCELLENT teacher", func(s int) bool { return s > 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.text)
			if !tt.want(got) {
				t.Fatalf("Analyze(%q) = %d, wrong sign", tt.text, got)
			}
		})
	}
}

func TestAnalyze_NegationOnlyAppliesToNextWord(t *testing.T) {
	a := NewLexiconAnalyzer()
	// "not" flips "bad" but must leave the later "great" positive.
	if got := a.Analyze("not bad, actually great"); got <= 0 {
		t.Fatalf("expected a positive score, got %d", got)
	}
}
