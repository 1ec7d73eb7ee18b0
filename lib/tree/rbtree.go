package tree

import "github.com/benz9527/xtree/lib/infra"

// References:
// https://github.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree

// Properties:
// p1. Every node is either red or black.
// p2. The root is black.
// p3. Every nil leaf is black.
// p4. A red node has no red child.
// p5. Every path from a node down to its nil leaves contains the
// same number of black nodes.
// So the height is bounded by 2*log2(n+1).

// The rotations are not published, a caller rotating could break p4 and p5.
type rbTree[E any] struct {
	orderedTree[E]
}

var _ RBTree[int] = (*rbTree[int])(nil)

func NewRBTree[E infra.OrderedKey](opts ...OrderedTreeOpt[E]) (RBTree[E], error) {
	return NewRBTreeFunc[E](infra.OrderedComparator[E](), opts...)
}

func NewRBTreeFunc[E any](cmp infra.Comparator[E], opts ...OrderedTreeOpt[E]) (RBTree[E], error) {
	tree := &rbTree[E]{}
	if err := tree.init(cmp, opts...); err != nil {
		return nil, err
	}
	return tree, nil
}

func (tree *rbTree[E]) ColorOf(n Node[E]) Color {
	if n == nil {
		return Black
	}
	return n.Color()
}

func (tree *rbTree[E]) BlackHeight() int {
	bh := 0
	for aux := tree.root; aux != nil; aux = aux.left {
		if aux.isBlack() {
			bh++
		}
	}
	return bh
}

// Foreach iterates the elements in order.
func (tree *rbTree[E]) Foreach(action func(idx int64, color Color, e E) bool) {
	var idx int64 = 0
	inOrderNodes(tree.root, func(n *node[E]) bool {
		res := action(idx, n.color, n.elem)
		idx++
		return res
	})
}

func (tree *rbTree[E]) Insert(e E) error {
	x, err := tree.insertNode(e)
	if err != nil {
		return err
	}
	x.color = Red
	tree.insertRebalance(x)
	return nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X is root, repaint X into black.

im2: Current node X's parent P is black, nothing violated.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Loop to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation it is still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: X is the same direction as parent P.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[E]) insertRebalance(x *node[E]) {
	for x != nil {
		if /* im1 */ x.isRoot() {
			x.color = Black
			return
		}
		if /* im2 */ x.parent.isBlack() {
			return
		}
		// The red parent is never the root, so the grandpa exists.
		if u := x.uncle(); /* im3 */ u.isRed() {
			x.parent.color = Black
			u.color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		if dir := x.direction(); /* im4 */ dir != x.parent.direction() {
			p := x.parent
			switch dir {
			case Left:
				tree.rotateRight(p)
			case Right:
				tree.rotateLeft(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[xtree] rbtree insert violate (im4)")
			}
			x = p // enter im5 to fix
		}

		p, gp := x.parent, x.grandpa()
		switch /* im5 */ x.direction() {
		case Left:
			tree.rotateRight(gp)
		case Right:
			tree.rotateLeft(gp)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[xtree] rbtree insert violate (im5)")
		}
		p.color = Black
		gp.color = Red
		return
	}
}

/*
r1: Current node X has left and right node.
Swap the value with the pred (the maximum of the left subtree), then
remove the pred instead. The pred has no right node.

	  |                    |
	  X                    L
	 / \                  / \
	L  ..   swap(X, L)   X  ..

r2: Current node X is a leaf node. A black phantom leaf is attached as
its left node, so X is removed the same way as r3, and the phantom
stands for the nil leaf while rebalancing.
The phantom is detached at the end, it is never visible outside.

r3: Current node X has only one child C, splice X out by C.
(1) C is red, repaint C into black.
(2) C and X are black, we have to rebalance from C. (black-violation)
(3) X is red, nothing violated.
*/
func (tree *rbTree[E]) Delete(e E) {
	tree.lastInserted = nil
	z := tree.searchNode(e)
	if z == nil {
		return
	}
	if /* r1 */ z.left != nil && z.right != nil {
		z = tree.predecessorSwap(z)
	}

	var phantom *node[E]
	if /* r2 */ z.isLeaf() {
		phantom = &node[E]{color: Black, phantom: true, parent: z}
		z.left = phantom
	}

	removed := z.color
	child := tree.splice(z)
	if /* r3 (1) */ child.isRed() {
		child.color = Black
	} else if /* r3 (2) */ removed == Black {
		tree.removeRebalance(child)
	}

	if phantom != nil {
		tree.detach(phantom)
	}
}

/*
Sc is the same direction to X and it X's sibling's child node (near nephew).
Sd is the opposite direction to X and it X's sibling's child node (far nephew).

rm1: Current node X is root, nothing violated.

rm2: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
(1) X is left node of P, left rotate P
(2) X is right node of P, right rotate P.
(3) repaint S into black, P into red.
The new sibling is black, continue with rm3, rm4 or rm5.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [D]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm3: The sibling S, nephew node Sc and Sd are black.
(1) P is black, paint the S into red to satisfy p5 locally. Then loop to
handle P.
(2) P is red, repaint S into red and P into black.

	  {P}             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's sibling S is black, nephew node Sc is red.
Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, right rotate S.
(2) If X is right node of P, left rotate S.
(3) Repaint S into red, Sc into black
Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> {Sd}                   \                  \
	                              {Sd}               {Sd}

rm5: Current node X's sibling S is black, nephew node Sd is red.
Ignore X's parent P's color (red or black is okay)
(1) If X is left node of P, left rotate P.
(2) If X is right node of P, right rotate P.
(3) S takes P's color, P into black.
(4) Repaint Sd into black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[E]) removeRebalance(x *node[E]) {
	for x != nil {
		if /* rm1 */ x.isRoot() {
			return
		}
		dir := x.direction()
		sibling := x.sibling()
		if sibling == nil {
			// impossible run to here
			panic( /* debug assertion */ "[xtree] rbtree remove violate (nil sibling)")
		}
		if /* rm2 */ sibling.isRed() {
			x.parent.color = Red
			sibling.color = Black
			switch dir {
			case Left:
				tree.rotateLeft(x.parent)
			case Right:
				tree.rotateRight(x.parent)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[xtree] rbtree remove violate (rm2)")
			}
			sibling = x.sibling()
		}

		near, far := sibling.left, sibling.right
		if dir == Right {
			near, far = sibling.right, sibling.left
		}
		if /* rm3 */ near.isBlack() && far.isBlack() {
			sibling.color = Red
			if x.parent.isBlack() {
				x = x.parent
				continue
			}
			x.parent.color = Black
			return
		}

		if /* rm4 */ near.isRed() {
			sibling.color = Red
			near.color = Black
			switch dir {
			case Left:
				tree.rotateRight(sibling)
			case Right:
				tree.rotateLeft(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[xtree] rbtree remove violate (rm4)")
			}
			sibling = x.sibling()
			far = sibling.right
			if dir == Right {
				far = sibling.left
			}
		}

		/* rm5 */
		sibling.color = x.parent.color
		x.parent.color = Black
		far.color = Black
		switch dir {
		case Left:
			tree.rotateLeft(x.parent)
		case Right:
			tree.rotateRight(x.parent)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[xtree] rbtree remove violate (rm5)")
		}
		return
	}
}
