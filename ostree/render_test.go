package ostree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/net/html"
)

func TestToDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	tree := New(5, 3, 8, 1)
	var buf bytes.Buffer
	if err := ToDot(tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("DOT output is not a digraph:\n%s", dot)
	}
	if !strings.Contains(dot, `label="5\n#2  2|1"`) {
		t.Errorf("expected root label with rank and counts:\n%s", dot)
	}
	// 3 edges between values, one to the missing right child of 3
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges, have %d:\n%s", n, dot)
	}
}

func TestFprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	tree := New(5, 3, 8, 1)
	var buf bytes.Buffer
	err := Fprint(tree, &buf, &PrintConfig{LineWidth: 40, Indent: 2, Context: uax11.LatinContext})
	if err != nil {
		t.Fatal(err.Error())
	}
	want := "  8 (0|0)\n" +
		"5 (2|1)\n" +
		"  3 (1|0)\n" +
		"    1 (0|0)\n"
	if buf.String() != want {
		t.Errorf("unexpected console output:\n%s", buf.String())
	}
}

func TestFprintNarrow(t *testing.T) {
	tree := New("alpha", "beta")
	var buf bytes.Buffer
	if err := Fprint(tree, &buf, &PrintConfig{LineWidth: 8, Indent: 4}); err != nil {
		t.Fatal(err.Error())
	}
	want := "    beta\n" + "alpha\n"
	if buf.String() != want {
		t.Errorf("expected counts to be dropped on narrow lines, have:\n%s", buf.String())
	}
	buf.Reset()
	if err := Fprint(tree, &buf, &PrintConfig{LineWidth: 3}); err != nil {
		t.Fatal(err.Error())
	}
	if !strings.Contains(buf.String(), "…") {
		t.Errorf("expected wide labels to be elided, have:\n%s", buf.String())
	}
}

func TestRenderHTML(t *testing.T) {
	tree := New(5, 3, 8, 1)
	var buf bytes.Buffer
	if err := RenderHTML(tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatal(err.Error())
	}
	var values []string
	nils := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == "nil" {
					nils++
				}
			}
		}
		if n.Type == html.ElementNode && n.Data == "span" && len(n.Attr) > 0 && n.Attr[0].Val == "value" {
			values = append(values, n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if strings.Join(values, ",") != "5,3,1,8" {
		t.Errorf("expected values in pre-order, have %v", values)
	}
	if nils != 1 {
		t.Errorf("expected one placeholder for a missing child, have %d", nils)
	}
}
