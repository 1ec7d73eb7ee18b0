package textsort

import (
	"bufio"
	"io"
	"sync"

	"github.com/samber/lo"

	"github.com/benz9527/xtree/lib/tree"
)

type SorterOption func(*Sorter) error

// WithSorterFold turns the accent, case and punctuation folding on or off.
func WithSorterFold(fold bool) SorterOption {
	return func(s *Sorter) error {
		s.collator = NewCollator(fold)
		return nil
	}
}

// Sorter keeps the lines in one red-black tree.
// The tree itself is not thread safe, all accesses are serialized by
// the lock, it is the only shared state between the loaders.
type Sorter struct {
	lock     sync.RWMutex
	tree     tree.RBTree[Line]
	collator *Collator
	bytes    int64
	sources  int64
}

func NewSorter(opts ...SorterOption) (*Sorter, error) {
	s := &Sorter{
		collator: NewCollator(true),
	}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	t, err := tree.NewRBTreeFunc[Line](CompareLines)
	if err != nil {
		return nil, err
	}
	s.tree = t
	return s, nil
}

func (s *Sorter) Collator() *Collator {
	return s.collator
}

// Add inserts the lines of one source.
func (s *Sorter) Add(lines ...Line) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, l := range lines {
		if err := s.tree.Insert(l); err != nil {
			return err
		}
		s.bytes += int64(len(l.Raw)) + 1
	}
	s.sources++
	return nil
}

func (s *Sorter) AddStrings(raws ...string) error {
	return s.Add(lo.Map(raws, func(raw string, _ int) Line {
		return s.collator.Line(raw)
	})...)
}

func (s *Sorter) Len() int64 {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.tree.Len()
}

func (s *Sorter) Height() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.tree.Height()
}

// Lines returns the raw lines in order.
func (s *Sorter) Lines(reverse bool) []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	seq := s.tree.All()
	if reverse {
		seq = s.tree.Backward()
	}
	res := make([]string, 0, s.tree.Len())
	for l := range seq {
		res = append(res, l.Raw)
	}
	return res
}

// WriteLines writes one line per element, duplicates included.
func (s *Sorter) WriteLines(w io.Writer, reverse bool) (int64, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	seq := s.tree.All()
	if reverse {
		seq = s.tree.Backward()
	}
	bw := bufio.NewWriter(w)
	var n int64
	for l := range seq {
		m, err := bw.WriteString(l.Raw)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err = bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Render writes the tree diagram labelled by the raw lines.
func (s *Sorter) Render(w io.Writer, opts ...tree.RenderOpt) error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return tree.Render[Line](w, s.tree, opts...)
}

type Summary struct {
	Lines       int64
	Distinct    int64
	Sources     int64
	Bytes       int64
	Height      int
	BlackHeight int
}

func (s *Sorter) Summary() Summary {
	s.lock.RLock()
	defer s.lock.RUnlock()
	sum := Summary{
		Lines:       s.tree.Len(),
		Sources:     s.sources,
		Bytes:       s.bytes,
		Height:      s.tree.Height(),
		BlackHeight: s.tree.BlackHeight(),
	}
	// The equal raw lines are adjacent in order.
	var prev *string
	for l := range s.tree.All() {
		if prev == nil || *prev != l.Raw {
			sum.Distinct++
			raw := l.Raw
			prev = &raw
		}
	}
	return sum
}

func (l Line) String() string {
	return l.Raw
}
