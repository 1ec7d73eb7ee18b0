package tree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/benz9527/xtree/lib/queue"
)

const (
	branchMid   = "├─›"
	branchLeft  = "└─›"
	branchRight = "└─»"
	indentBar   = "│  "
	indentBlank = "   "
)

type RenderOpt func(*renderConfig)

type renderConfig struct {
	colorful bool
}

// WithRenderColor paints the red and black labels with ANSI escapes,
// even if the writer is not a terminal.
func WithRenderColor() RenderOpt {
	return func(cfg *renderConfig) {
		cfg.colorful = true
	}
}

// Render writes the tree diagram to w. One vertex per line, the children
// below their parent, left first.
//
//	B{2}
//	├─›B{1}
//	└─»R{4}
//	   ├─›B{3}
//	   └─»B{5}
//
// Nothing is written for an empty tree.
func Render[E any](w io.Writer, tree BinaryTree[E], opts ...RenderOpt) error {
	if w == nil || tree == nil {
		return ErrInvalidArgument
	}
	cfg := &renderConfig{}
	for _, o := range opts {
		o(cfg)
	}
	root, err := tree.Root()
	if errors.Is(err, ErrNotFound) {
		return nil
	} else if err != nil {
		return err
	}
	return renderNodes[E](w, root, cfg)
}

type renderFrame[E any] struct {
	n      Node[E]
	indent string
	branch string
	// the indent segment inherited by the children
	segment string
}

func renderNodes[E any](w io.Writer, root Node[E], cfg *renderConfig) error {
	var (
		sb    strings.Builder
		red   = color.New(color.FgRed)
		black = color.New(color.Bold)
	)
	if cfg.colorful {
		red.EnableColor()
		black.EnableColor()
	}
	label := func(n Node[E]) string {
		switch n.Color() {
		case Red:
			l := fmt.Sprintf("R{%v}", n.Value())
			if cfg.colorful {
				return red.Sprint(l)
			}
			return l
		case Black:
			l := fmt.Sprintf("B{%v}", n.Value())
			if cfg.colorful {
				return black.Sprint(l)
			}
			return l
		default:
		}
		return fmt.Sprintf("%v", n.Value())
	}

	stack := queue.NewStack[renderFrame[E]]()
	stack.Push(renderFrame[E]{n: root})
	for !stack.IsEmpty() {
		f, _ := stack.Pop()
		sb.WriteString(f.indent)
		sb.WriteString(f.branch)
		sb.WriteString(label(f.n))
		sb.WriteByte('\n')

		childIndent := f.indent + f.segment
		left, lerr := f.n.Left()
		right, rerr := f.n.Right()
		switch {
		case lerr == nil && rerr == nil:
			// right first, the stack pops the left first
			stack.Push(renderFrame[E]{n: right, indent: childIndent, branch: branchRight, segment: indentBlank})
			stack.Push(renderFrame[E]{n: left, indent: childIndent, branch: branchMid, segment: indentBar})
		case lerr == nil:
			stack.Push(renderFrame[E]{n: left, indent: childIndent, branch: branchLeft, segment: indentBlank})
		case rerr == nil:
			stack.Push(renderFrame[E]{n: right, indent: childIndent, branch: branchRight, segment: indentBlank})
		default:
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
