package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/herogram"
	"github.com/npillmayer/herogram/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
)

// ironMan creates the tree for "iron man defeats thanos".
func ironMan() *tree.Node {
	toks := herogram.MakeTokens("iron man", "defeats", "thanos")
	span := herogram.MakeSpan
	leaf := func(i int) *tree.Node { return tree.NewLeaf(toks[i]) }
	np1 := tree.NewInternal("NP_SG", 5, span(0, 1), tree.NewInternal("N", 20, span(0, 1), leaf(0)))
	vs := tree.NewInternal("V_S", 40, span(1, 2), leaf(1))
	np2 := tree.NewInternal("NP_SG", 5, span(2, 3), tree.NewInternal("N", 28, span(2, 3), leaf(2)))
	vopt := tree.NewInternal("V_OPT", 10, span(2, 3), np2)
	vsg := tree.NewInternal("V_SG", 7, span(1, 3), vs, vopt)
	sprime := tree.NewInternal("S_PRIME", 3, span(3, 3))
	return tree.NewInternal("S", 0, span(0, 3), np1, vsg, sprime)
}

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.render")
	defer teardown()
	//
	lines := Lines(ironMan())
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, have %d: %v", len(lines), lines)
	}
	if lines[0] != (Line{Depth: 0, Text: "S"}) {
		t.Errorf("expected first line to be the root, is %v", lines[0])
	}
	if lines[3] != (Line{Depth: 3, Text: "iron man"}) {
		t.Errorf("expected leaf 'iron man' at depth 3, have %v", lines[3])
	}
	if last := lines[len(lines)-1]; last != (Line{Depth: 1, Text: "S_PRIME"}) {
		t.Errorf("expected last line to be S_PRIME, is %v", last)
	}
	if Lines(nil) != nil {
		t.Errorf("expected no lines for nil tree")
	}
}

func TestIndented(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.render")
	defer teardown()
	//
	var b bytes.Buffer
	if err := Indented(&b, ironMan()); err != nil {
		t.Fatal(err)
	}
	expected := `S
  NP_SG
    N
      iron man
  V_SG
    V_S
      defeats
    V_OPT
      NP_SG
        N
          thanos
  S_PRIME
`
	if b.String() != expected {
		t.Errorf("unexpected listing:\n%s", b.String())
	}
	if IndentedString(ironMan()) != expected {
		t.Errorf("expected IndentedString to equal Indented")
	}
}

func TestBrackets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.render")
	defer teardown()
	//
	expected := "[S [NP_SG [N iron man]] [V_SG [V_S defeats] [V_OPT [NP_SG [N thanos]]]] [S_PRIME]]"
	if s := Brackets(ironMan()); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	leaf := tree.NewLeaf(herogram.Token{Lexeme: "thor"})
	if s := Brackets(leaf); s != "thor" {
		t.Errorf("expected single leaf to render as its lexeme, is %q", s)
	}
}

func TestPTermTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.render")
	defer teardown()
	//
	root := PTermTree(ironMan())
	if len(root.Children) != 1 || root.Children[0].Text != "S" {
		t.Fatalf("expected S as single child of container, have %v", root.Children)
	}
	S := root.Children[0]
	if len(S.Children) != 3 {
		t.Fatalf("expected S to have 3 children, has %d", len(S.Children))
	}
	if S.Children[1].Children[1].Text != "V_OPT" {
		t.Errorf("expected V_OPT, have %q", S.Children[1].Children[1].Text)
	}
}

func TestPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "herogram.render")
	defer teardown()
	//
	pterm.DisableStyling()
	defer pterm.EnableStyling()
	var b bytes.Buffer
	if err := Pretty(&b, ironMan()); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	t.Logf("\n%s", out)
	for _, s := range []string{"S", "iron man", "defeats", "thanos", "S_PRIME", "└"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q", s)
		}
	}
	if n := strings.Count(out, "\n"); n != 12 {
		t.Errorf("expected 12 lines of output, have %d", n)
	}
}
