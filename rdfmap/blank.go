package rdfmap

import (
	"strconv"

	"github.com/c360studio/semowl/owl"
	"github.com/cayleygraph/quad"
)

// BlankAllocator hands out blank nodes for one encode call. Anonymous
// individuals map to blank nodes one to one, keeping their own label when it
// is still free; structural nodes get fresh genid labels.
type BlankAllocator struct {
	used       map[string]bool
	individual map[string]quad.BNode
	next       int
}

// NewBlankAllocator returns an empty allocator.
func NewBlankAllocator() *BlankAllocator {
	return &BlankAllocator{
		used:       make(map[string]bool),
		individual: make(map[string]quad.BNode),
	}
}

// Fresh returns a blank node no earlier call returned.
func (a *BlankAllocator) Fresh() quad.BNode {
	for {
		a.next++
		label := "genid" + strconv.Itoa(a.next)
		if !a.used[label] {
			a.used[label] = true
			return quad.BNode(label)
		}
	}
}

// For returns the blank node of an anonymous individual. Repeated calls with
// the same individual return the same node.
func (a *BlankAllocator) For(ind owl.AnonymousIndividual) quad.BNode {
	if b, ok := a.individual[ind.ID]; ok {
		return b
	}
	label := ind.Label()
	var b quad.BNode
	if label != "" && !a.used[label] {
		a.used[label] = true
		b = quad.BNode(label)
	} else {
		b = a.Fresh()
	}
	a.individual[ind.ID] = b
	return b
}
