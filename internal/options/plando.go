package options

import "errors"

// ErrInvalidPlandoItem indicates that a plando directive names items in more
// than one shape, or in none.
var ErrInvalidPlandoItem = errors.New("plando directive must name exactly one of: item, items, weighted items")

// PlandoItem is a pre-seeded item placement directive. Exactly one of Item,
// Items, or WeightedItems is set: a single item name, an arbitrary
// collection, or a weighted mapping of item name to weight.
type PlandoItem struct {
	Item          string
	Items         []string
	WeightedItems map[string]int

	// FromPool records whether the directive draws its item out of the
	// shared pool rather than minting a copy for a fixed slot.
	FromPool bool
}

// Validate checks that exactly one item shape is set.
func (p PlandoItem) Validate() error {
	set := 0
	if p.Item != "" {
		set++
	}
	if len(p.Items) > 0 {
		set++
	}
	if len(p.WeightedItems) > 0 {
		set++
	}
	if set != 1 {
		return ErrInvalidPlandoItem
	}
	return nil
}

// References reports whether the directive can place the named item. Weighted
// entries with a zero weight are never drawn and do not count.
func (p PlandoItem) References(name string) bool {
	if p.Item == name {
		return true
	}
	for _, item := range p.Items {
		if item == name {
			return true
		}
	}
	if weight, ok := p.WeightedItems[name]; ok && weight != 0 {
		return true
	}
	return false
}
