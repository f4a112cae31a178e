// Package chips models casino chips and the ledgers that hold them.
package chips

import "sort"

// Chip is a single casino token. Category is the color label; it only
// matters for grouping in summaries.
type Chip struct {
	Value    int
	Category string
}

// House denominations, lowest to highest.
var Denominations = []Chip{
	{1, "blue"},
	{5, "red"},
	{25, "green"},
	{100, "black"},
	{500, "purple"},
	{1000, "orange"},
}

// Stack is a participant's chip holdings, an unordered multiset.
type Stack struct {
	chips []Chip
}

// NewStack returns a stack holding the given chips.
func NewStack(cs ...Chip) *Stack {
	return &Stack{chips: append([]Chip(nil), cs...)}
}

// Add returns chips to the stack.
func (s *Stack) Add(cs ...Chip) {
	s.chips = append(s.chips, cs...)
}

// Count reports the number of chips held.
func (s *Stack) Count() int { return len(s.chips) }

// TotalValue sums the value of every held chip.
func (s *Stack) TotalValue() int {
	total := 0
	for _, c := range s.chips {
		total += c.Value
	}
	return total
}

// Remove takes chips toward the given amount, largest denominations first.
// Selection is greedy: every chip whose value fits the remaining target is
// picked and the target decremented, until no held chip fits. The picked
// chips are returned even when the target cannot be met exactly, so the
// removed sum may fall short of amount; callers treat the nominal amount as
// the stake either way.
func (s *Stack) Remove(amount int) []Chip {
	sort.SliceStable(s.chips, func(i, j int) bool {
		return s.chips[i].Value > s.chips[j].Value
	})

	remaining := amount
	var picked []Chip
	kept := s.chips[:0]
	for _, c := range s.chips {
		if c.Value <= remaining {
			picked = append(picked, c)
			remaining -= c.Value
		} else {
			kept = append(kept, c)
		}
	}
	s.chips = kept
	return picked
}

// CategoryCount reports how many chips of one denomination a stack holds.
type CategoryCount struct {
	Value    int
	Category string
	Count    int
}

// Summary groups the held chips by denomination, ascending by value.
func (s *Stack) Summary() []CategoryCount {
	counts := make(map[Chip]int)
	var order []Chip
	for _, c := range s.chips {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Value < order[j].Value })

	out := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryCount{Value: c.Value, Category: c.Category, Count: counts[c]})
	}
	return out
}

type holding struct {
	count int
	chip  Chip
}

func build(hs []holding) *Stack {
	s := &Stack{}
	for _, h := range hs {
		for i := 0; i < h.count; i++ {
			s.chips = append(s.chips, h.chip)
		}
	}
	return s
}

// StarterStack is the player's opening bankroll: $500 across red, green and
// black chips.
func StarterStack() *Stack {
	return build([]holding{
		{20, Chip{5, "red"}},
		{8, Chip{25, "green"}},
		{2, Chip{100, "black"}},
	})
}

// HouseStack is the dealer's float: $3,000 across every denomination.
func HouseStack() *Stack {
	return build([]holding{
		{100, Chip{1, "blue"}},
		{20, Chip{5, "red"}},
		{12, Chip{25, "green"}},
		{5, Chip{100, "black"}},
		{2, Chip{500, "purple"}},
		{1, Chip{1000, "orange"}},
	})
}
