package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bstree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

const ellipsis = "…"

// Connectors and indents of the sideways layout.
const (
	rightConnector = "┌── "
	leftConnector  = "└── "
	barIndent      = "│   "
	blankIndent    = "    "
)

type slot int8

const (
	rootSlot slot = iota
	leftSlot
	rightSlot
)

// Console prints trees to a fixed-width terminal.
type Console[T any] struct {
	// Label formats a value. If nil, fmt.Sprint is used.
	Label  func(T) string
	inner  *color.Color
	leaf   *color.Color
	config *Config
}

// NewConsole creates a console renderer. If config is nil, a default
// configuration without colors is used.
func NewConsole[T any](config *Config) *Console[T] {
	return &Console[T]{
		inner:  color.New(color.FgBlue, color.Bold),
		leaf:   color.New(color.FgGreen),
		config: config.normalized(),
	}
}

// Print writes tree to w, one node per line, the largest value first.
// Labels are truncated to fit the configured line width.
func (c *Console[T]) Print(w io.Writer, tree *bstree.Tree[T]) error {
	setupGraphemes()
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	return c.printNode(w, tree.Root(), "", rootSlot)
}

func (c *Console[T]) printNode(w io.Writer, v bstree.NodeView[T], prefix string, s slot) error {
	if !v.Valid() {
		return nil
	}
	var connector, rightIndent, leftIndent string
	switch s {
	case rootSlot:
		rightIndent, leftIndent = "", ""
	case rightSlot:
		connector, rightIndent, leftIndent = rightConnector, blankIndent, barIndent
	case leftSlot:
		connector, rightIndent, leftIndent = leftConnector, barIndent, blankIndent
	}
	if err := c.printNode(w, v.Right(), prefix+rightIndent, rightSlot); err != nil {
		return err
	}
	head := prefix + connector
	room := c.config.LineWidth - width(head, c.config.Context)
	label := truncate(c.label(v.Value()), room, c.config.Context)
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if err := c.styled(w, label, v.IsLeaf()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return c.printNode(w, v.Left(), prefix+leftIndent, leftSlot)
}

func (c *Console[T]) label(value T) string {
	if c.Label != nil {
		return c.Label(value)
	}
	return fmt.Sprint(value)
}

func (c *Console[T]) styled(w io.Writer, s string, isLeaf bool) error {
	if !c.config.Colors {
		_, err := io.WriteString(w, s)
		return err
	}
	if isLeaf {
		_, err := c.leaf.Fprint(w, s)
		return err
	}
	_, err := c.inner.Fprint(w, s)
	return err
}

// width returns the number of fixed-width positions s occupies.
func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most room positions, marking the cut with an
// ellipsis. It never cuts within a grapheme.
func truncate(s string, room int, context *uax11.Context) string {
	if s == "" || width(s, context) <= room {
		return s
	}
	if room <= 1 {
		return ellipsis
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	used := width(ellipsis, context)
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := width(g, context)
		if used+gw > room {
			break
		}
		b.WriteString(g)
		used += gw
	}
	b.WriteString(ellipsis)
	return b.String()
}
