package lexicon

import (
	"testing"

	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.lexicon")
	defer teardown()
	//
	ws := words("  thor\tprotects \n the universe ")
	if len(ws) != 4 {
		t.Fatalf("expected 4 words, have %d", len(ws))
	}
	if ws[1].text != "protects" || ws[1].offset != herogram.MakeSpan(7, 15) {
		t.Errorf("expected 2nd word to be 'protects' at (7…15), is %q at %v", ws[1].text, ws[1].offset)
	}
}

func TestTokenizeMultiWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.lexicon")
	defer teardown()
	//
	g := grammar.Superheroes()
	toks := Tokenize("Iron Man defeats Thanos", g)
	assert.Equal(t, []string{"iron man", "defeats", "thanos"}, herogram.Lexemes(toks))
	for i, tok := range toks {
		assert.Equal(t, i, tok.Pos)
	}
	assert.Equal(t, herogram.MakeSpan(0, 8), toks[0].Offset)
	assert.Equal(t, herogram.MakeSpan(17, 23), toks[2].Offset)
}

func TestTokenizeKeepsUnknownWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.lexicon")
	defer teardown()
	//
	tz := NewTokenizer("iron man", "captain america")
	for _, x := range []struct {
		input  string
		output []string
	}{
		{"Fights Iron Man Thanos", []string{"fights", "iron man", "thanos"}},
		{"iron manly deeds", []string{"iron", "manly", "deeds"}},
		{"the iron", []string{"the", "iron"}},
		{"Captain   AMERICA!", []string{"captain", "america!"}},
		{"Captain   AMERICA", []string{"captain america"}},
		{"", []string{}},
	} {
		assert.Equal(t, x.output, herogram.Lexemes(tz.Tokenize(x.input)), "input %q", x.input)
	}
}

func TestTokenizeLongestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.lexicon")
	defer teardown()
	//
	tz := NewTokenizer("black widow", "black widow spider", "widow spider")
	toks := tz.Tokenize("the black widow spider bites the black widow")
	assert.Equal(t, []string{"the", "black widow spider", "bites", "the", "black widow"},
		herogram.Lexemes(toks))
	toks = tz.Tokenize("black widow widow spider")
	assert.Equal(t, []string{"black widow", "widow spider"}, herogram.Lexemes(toks))
}
