package ostree

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/containers/stack"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PrintConfig controls the console output of Fprint.
type PrintConfig struct {
	LineWidth int            // maximum width of a line, measured in en
	Indent    int            // number of en to indent per tree level
	Colors    bool           // print subtree counts in color
	Context   *uax11.Context // context for measuring the width of labels
}

var setupGraphemes sync.Once

// Print outputs a tree to stdout, laid out sideways: the root is in the
// leftmost column, right subtrees are above their parent and left subtrees
// below. The configuration is taken from the terminal.
func Print[T any](t *Tree[T]) error {
	config := ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	return Fprint(t, os.Stdout, config)
}

// Fprint outputs a tree to w, laid out like Print does. If config is nil,
// a plain configuration for Latin text with a line width of 80 is used.
//
// Every line shows a value followed by the counts of its left and right
// subtree. If a line would grow wider than config.LineWidth, the counts are
// omitted, and if the value alone still does not fit it is elided.
func Fprint[T any](t *Tree[T], w io.Writer, config *PrintConfig) error {
	cfg := PrintConfig{LineWidth: 80}
	if config != nil {
		cfg = *config
	}
	config = &cfg
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.Indent <= 0 {
		config.Indent = 4
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	counts := color.New(color.FgBlue)
	if config.Colors {
		counts.EnableColor()
	} else {
		counts.DisableColor()
	}
	var err error
	pending := stack.New[leveled[T]]()
	cur, depth := t.root, 0
	for (cur != nil || !pending.Empty()) && err == nil {
		for ; cur != nil; cur, depth = cur.right, depth+1 {
			pending.Push(leveled[T]{n: cur, depth: depth})
		}
		f, _ := pending.Pop()
		indent := f.depth * config.Indent
		label := fmt.Sprint(f.n.value)
		cnt := fmt.Sprintf(" (%d|%d)", f.n.leftCount, f.n.rightCount)
		width := uax11.StringWidth(grapheme.StringFromString(label), config.Context)
		switch {
		case indent+width+len(cnt) <= config.LineWidth:
		case indent+width <= config.LineWidth:
			cnt = ""
		default:
			label, cnt = "…", ""
		}
		if _, err = io.WriteString(w, strings.Repeat(" ", indent)+label); err != nil {
			break
		}
		if cnt != "" {
			if _, err = counts.Fprint(w, cnt); err != nil {
				break
			}
		}
		_, err = io.WriteString(w, "\n")
		cur, depth = f.n.left, f.depth+1
	}
	return err
}

type leveled[T any] struct {
	n     *node[T]
	depth int
}

// ConfigFromTerminal is a simple helper for creating a PrintConfig.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the LineWidth parameter accordingly.
func ConfigFromTerminal() *PrintConfig {
	config := &PrintConfig{Indent: 4}
	config.LineWidth = 80
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			switch {
			case w > 30:
				config.LineWidth = w - 2
			case w > 10:
				config.LineWidth = w
			default:
				config.LineWidth = 10
			}
		}
		config.Colors = !color.NoColor
	}
	tracer().Debugf("ostree: setting console line width to %d en", config.LineWidth)
	return config
}
