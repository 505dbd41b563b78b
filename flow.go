package ledgerdash

import (
	"fmt"
	"slices"

	"github.com/etnz/ledgerdash/date"
	"github.com/shopspring/decimal"
)

// Synthetic flow nodes. A real category with the same name keeps it, the
// synthetic node is then suffixed with a number ("Balance (2)").
const (
	DebtRepaymentNode    = "Debt Repayment"
	BalanceNode          = "Balance"
	ReserveDepletionNode = "Reserve Depletion"
)

// FlowSide tells on which side of the flow diagram a node stands.
type FlowSide string

const (
	IncomeSide  FlowSide = "income"
	ExpenseSide FlowSide = "expense"
)

// FlowNode is a category of the flow diagram.
type FlowNode struct {
	Name      string   `json:"name"`
	Side      FlowSide `json:"side"`
	Synthetic bool     `json:"synthetic,omitempty"`
}

// FlowLink is a weighted edge from an income category to an expense category.
type FlowLink struct {
	Source string          `json:"source"`
	Target string          `json:"target"`
	Value  decimal.Decimal `json:"value"`
}

// FlowGraph is a balanced income to expense diagram.
//
// Links are a proportional allocation of every income category over every
// expense category, they do not trace actual cash movements.
type FlowGraph struct {
	Nodes []FlowNode      `json:"nodes"`
	Links []FlowLink      `json:"links"`
	Total decimal.Decimal `json:"total"` // volume of each side after balancing
}

// categories is an accumulator that remembers the first-encountered order of
// its keys.
type categories struct {
	keys      []string
	values    map[string]decimal.Decimal
	synthetic map[string]bool
}

func newCategories() *categories {
	return &categories{values: make(map[string]decimal.Decimal), synthetic: make(map[string]bool)}
}

func (c *categories) has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// addSynthetic adds a node under name, or under the first free numbered
// variant of name when c or other already has it.
func (c *categories) addSynthetic(name string, v decimal.Decimal, other *categories) {
	key := name
	for i := 2; c.has(key) || other.has(key); i++ {
		key = fmt.Sprintf("%s (%d)", name, i)
	}
	c.add(key, v)
	c.synthetic[key] = true
}

func (c *categories) add(key string, v decimal.Decimal) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = c.values[key].Add(v)
}

func (c *categories) total() decimal.Decimal {
	sum := decimal.Zero
	for _, k := range c.keys {
		sum = sum.Add(c.values[k])
	}
	return sum
}

// Flow builds the flow diagram of r.
//
// Income categories are accumulated as magnitudes, expense categories as
// signed sums, and positive amounts posted to liabilities as debt repayment.
// A synthetic node then absorbs the gap between the two sides: "Balance" on
// the expense side for a surplus, "Reserve Depletion" on the income side for a
// deficit. Nodes and links are sorted by decreasing value, ties keep their
// first-encountered order.
func (s *Snapshot) Flow(r date.Range) FlowGraph {
	p := s.opts.Prefixes
	income, expense, repayment := newCategories(), newCategories(), newCategories()
	for _, tx := range s.within(r) {
		for _, l := range tx.Lines {
			switch p.Classify(l.Account) {
			case Income:
				income.add(categoryKey(l.Account, p.Income), l.Amount.Abs())
			case Expense:
				expense.add(categoryKey(l.Account, p.Expense), l.Amount)
			case Liability:
				if l.Amount.IsPositive() {
					repayment.add(categoryKey(l.Account, p.Liability), l.Amount)
				}
			}
		}
	}

	g := FlowGraph{Nodes: []FlowNode{}, Links: []FlowLink{}, Total: decimal.Zero}
	if len(income.keys) == 0 && len(expense.keys) == 0 && len(repayment.keys) == 0 {
		return g
	}

	totalIncome, totalExpense, totalRepayment := income.total(), expense.total(), repayment.total()
	if totalRepayment.IsPositive() {
		expense.addSynthetic(DebtRepaymentNode, totalRepayment, income)
	}
	delta := totalIncome.Sub(totalExpense).Sub(totalRepayment)
	switch {
	case delta.IsPositive():
		expense.addSynthetic(BalanceNode, delta, income)
	case delta.IsNegative():
		income.addSynthetic(ReserveDepletionNode, delta.Neg(), expense)
	}
	g.Total = income.total()

	type weighted struct {
		node  FlowNode
		value decimal.Decimal
	}
	var nodes []weighted
	for _, k := range income.keys {
		nodes = append(nodes, weighted{FlowNode{Name: k, Side: IncomeSide, Synthetic: income.synthetic[k]}, income.values[k]})
	}
	for _, k := range expense.keys {
		nodes = append(nodes, weighted{FlowNode{Name: k, Side: ExpenseSide, Synthetic: expense.synthetic[k]}, expense.values[k]})
	}
	slices.SortStableFunc(nodes, func(a, b weighted) int { return b.value.Cmp(a.value) })
	for _, n := range nodes {
		g.Nodes = append(g.Nodes, n.node)
	}

	if g.Total.IsZero() {
		return g
	}
	for _, src := range income.keys {
		in := income.values[src]
		if in.IsZero() {
			continue
		}
		for _, dst := range expense.keys {
			out := expense.values[dst]
			if out.IsZero() {
				continue
			}
			v := out.Mul(in).Div(g.Total)
			if !v.IsPositive() {
				continue
			}
			g.Links = append(g.Links, FlowLink{Source: src, Target: dst, Value: v})
		}
	}
	slices.SortStableFunc(g.Links, func(a, b FlowLink) int { return b.Value.Cmp(a.Value) })
	return g
}
