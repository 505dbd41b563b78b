package ledgerdash

import (
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Node is a node of an account hierarchy.
//
// The Value of a node with children is always the sum of its children values.
type Node struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Children []*Node         `json:"children,omitempty"`
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Walk calls fn on n and all its descendants, parents first.
func (n *Node) Walk(fn func(path []string, n *Node)) {
	n.walk(nil, fn)
}

func (n *Node) walk(parent []string, fn func(path []string, n *Node)) {
	path := append(slices.Clip(parent), n.Name)
	fn(path, n)
	for _, c := range n.Children {
		c.walk(path, fn)
	}
}

// arenaNode is a hierarchy node under construction, addressed by its index in
// the arena.
type arenaNode struct {
	name     string
	own      decimal.Decimal // balance posted to the account itself
	hasOwn   bool
	children []int
}

// arena builds a hierarchy in two passes: leaves are inserted first, then the
// tree is frozen into Nodes with a single post-order rollup.
type arena struct {
	nodes []arenaNode
	index map[string]int // full relative path -> node
	roots []int
}

func newArena() *arena { return &arena{index: make(map[string]int)} }

// insert walks segments creating the missing nodes and adds value to the last one.
func (a *arena) insert(segments []string, value decimal.Decimal) {
	parent := -1
	for i := range segments {
		path := strings.Join(segments[:i+1], Separator)
		id, ok := a.index[path]
		if !ok {
			id = len(a.nodes)
			a.nodes = append(a.nodes, arenaNode{name: segments[i]})
			a.index[path] = id
			if parent < 0 {
				a.roots = append(a.roots, id)
			} else {
				a.nodes[parent].children = append(a.nodes[parent].children, id)
			}
		}
		parent = id
	}
	n := &a.nodes[parent]
	n.own = n.own.Add(value)
	n.hasOwn = true
}

func (a *arena) freeze() []*Node {
	forest := make([]*Node, 0, len(a.roots))
	for _, id := range a.roots {
		forest = append(forest, a.freezeNode(id))
	}
	return forest
}

func (a *arena) freezeNode(id int) *Node {
	an := a.nodes[id]
	n := &Node{Name: an.name, Value: an.own}
	if len(an.children) == 0 {
		return n
	}
	if an.hasOwn && !an.own.IsZero() {
		// The account has its own balance and sub-accounts: keep it as a leaf
		// named after the parent so that the rollup does not lose it.
		n.Children = append(n.Children, &Node{Name: an.name, Value: an.own})
	}
	for _, c := range an.children {
		n.Children = append(n.Children, a.freezeNode(c))
	}
	n.Value = decimal.Zero
	for _, c := range n.Children {
		n.Value = n.Value.Add(c.Value)
	}
	return n
}

// BuildHierarchy turns a flat account to balance map into a forest.
//
// Accounts under prefix have the prefix segments removed, so that "Assets" as
// prefix makes "Assets:Bank:Checking" a "Checking" leaf below a "Bank" root.
// An account equal to the prefix becomes a root leaf named after the last
// prefix segment. Other accounts keep their full path. Zero balances are
// excluded. Leaves are inserted in alphabetical order of account.
func BuildHierarchy(balances map[string]decimal.Decimal, prefix string) []*Node {
	a := newArena()
	for _, account := range slices.Sorted(maps.Keys(balances)) {
		value := balances[account]
		if value.IsZero() || account == "" {
			continue
		}
		a.insert(relativeSegments(account, prefix), value)
	}
	return a.freeze()
}

func relativeSegments(account, prefix string) []string {
	switch {
	case prefix == "":
		return strings.Split(account, Separator)
	case account == prefix:
		segments := strings.Split(prefix, Separator)
		return segments[len(segments)-1:]
	case IsUnder(account, prefix):
		return strings.Split(strings.TrimPrefix(account, prefix+Separator), Separator)
	default:
		return strings.Split(account, Separator)
	}
}

// ChildAccounts returns the strict descendants of parent among accounts, in
// their input order.
//
// Matching is done on whole segments: "Assets:Bank" is not a parent of
// "Assets:Banking".
func ChildAccounts(parent string, accounts []string) []string {
	var children []string
	for _, a := range accounts {
		if a != parent && IsUnder(a, parent) {
			children = append(children, a)
		}
	}
	return children
}

// Total returns the sum of the values of the roots of forest.
func Total(forest []*Node) decimal.Decimal {
	sum := decimal.Zero
	for _, n := range forest {
		sum = sum.Add(n.Value)
	}
	return sum
}
