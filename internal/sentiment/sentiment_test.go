package sentiment

import (
	"testing"

	"kindred/internal/model"
)

func TestScoreBounds(t *testing.T) {
	for _, s := range []string{
		"", "absolutely amazing wonderful perfect", "horrible terrible worst awful",
		"the quick brown fox", "not bad at all",
	} {
		pol, subj := Score(s)
		if pol < -1 || pol > 1 {
			t.Fatalf("polarity %v out of range for %q", pol, s)
		}
		if subj < 0 || subj > 1 {
			t.Fatalf("subjectivity %v out of range for %q", subj, s)
		}
	}
}

func TestScoreEmpty(t *testing.T) {
	pol, subj := Score("")
	if pol != 0 || subj != 0 {
		t.Fatalf("empty text scored (%v, %v), want (0, 0)", pol, subj)
	}
}

func TestScorePolarity(t *testing.T) {
	pos, _ := Score("this was a great and wonderful evening")
	if pos <= 0 {
		t.Fatalf("expected positive polarity, got %v", pos)
	}
	neg, _ := Score("a terrible rude and awful experience")
	if neg >= 0 {
		t.Fatalf("expected negative polarity, got %v", neg)
	}
}

func TestScoreNegationFlips(t *testing.T) {
	plain, _ := Score("good")
	negated, _ := Score("not good")
	if !(plain > 0 && negated < 0) {
		t.Fatalf("negation should flip sign: plain=%v negated=%v", plain, negated)
	}
}

func TestStyleForThresholds(t *testing.T) {
	cases := []struct {
		pol  float64
		want model.CommStyle
	}{
		{0.3, model.StylePositive},
		{0.21, model.StylePositive},
		{0.2, model.StyleNeutral},
		{0, model.StyleNeutral},
		{-0.2, model.StyleNeutral},
		{-0.21, model.StyleCritical},
		{-0.9, model.StyleCritical},
	}
	for _, c := range cases {
		if got := StyleFor(c.pol); got != c.want {
			t.Fatalf("StyleFor(%v) = %v, want %v", c.pol, got, c.want)
		}
	}
}
