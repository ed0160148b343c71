package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

// script replays lines of user input.
type script struct {
	lines   []string
	prompts []string
}

func (s *script) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *script) SetPrompt(prompt string) {
	s.prompts = append(s.prompts, prompt)
}

func testAnalyzer(t *testing.T, all bool) (*analyzer, *bytes.Buffer) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)
	var out bytes.Buffer
	return newAnalyzer(&out, all), &out
}

func TestAnalyzeValid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.cmd")
	defer teardown()
	//
	a, out := testAnalyzer(t, false)
	assert.True(t, a.analyze("Iron Man defeats Thanos"))
	s := out.String()
	assert.Contains(t, s, "'Iron Man defeats Thanos' is valid")
	assert.Contains(t, s, "Parse Tree:")
	assert.Contains(t, s, "\n      iron man\n")
	assert.Contains(t, s, "Syntax Tree:")
	assert.NotContains(t, s, "ambiguous")
}

func TestAnalyzeInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.cmd")
	defer teardown()
	//
	a, out := testAnalyzer(t, false)
	assert.False(t, a.analyze("Fights Iron Man Thanos"))
	assert.Contains(t, out.String(), "NOT valid")
	assert.Contains(t, out.String(), "Tokens processed: ['fights', 'iron man', 'thanos']")
	assert.NotContains(t, out.String(), "Words not in the grammar")
	out.Reset()
	assert.False(t, a.analyze("Thor defeats the Joker"))
	assert.Contains(t, out.String(), "Words not in the grammar: joker")
}

func TestDemo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.cmd")
	defer teardown()
	//
	a, out := testAnalyzer(t, true)
	assert.Equal(t, 0, a.demo())
	assert.Equal(t, len(validSentences), strings.Count(out.String(), "Parse Tree:"))
	assert.Equal(t, len(invalidSentences), strings.Count(out.String(), "Tokens processed:"))
}

func TestMenu(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.cmd")
	defer teardown()
	//
	a, out := testAnalyzer(t, false)
	input := &script{lines: []string{
		"7",
		"2",
		"Iron Man defeats Thanos",
		"",
		"The save universe",
		"EXIT",
		"3",
		"1", // never read
	}}
	menu(a, input)
	s := out.String()
	assert.Contains(t, s, "Invalid option \"7\"")
	assert.Contains(t, s, "'Iron Man defeats Thanos' is valid")
	assert.Contains(t, s, "'The save universe' is NOT valid")
	assert.Contains(t, s, "Goodbye!")
	assert.NotContains(t, s, "PREDEFINED TEST CASES")
	assert.Equal(t, []string{"1"}, input.lines)
	assert.Equal(t, []string{"option> ", "option> ", "herogram> ", "option> "}, input.prompts)
}

func TestInteractiveEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.cmd")
	defer teardown()
	//
	a, _ := testAnalyzer(t, false)
	input := &script{lines: []string{"Thor flies", "Hulk quickly"}}
	assert.Equal(t, 2, interactive(a, input))
	assert.Empty(t, input.lines)
}

func TestConfigure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.cmd")
	defer teardown()
	//
	err := configure(testconfig.Conf{
		"tracing.adapter":   "go",
		"tracelevel.root":   "Error",
		"herogram.maxtrees": 1,
	})
	defer gconf.Initialize(testconfig.Conf{})
	assert.NoError(t, err)
	assert.Equal(t, 1, gconf.GetInt("herogram.maxtrees"))
}
