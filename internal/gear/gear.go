package gear

import (
	"fmt"
	"strconv"
)

// Group is a named bucket an item is sorted into. The zero-ish default for
// new items is GroupUncategorized.
type Group string

const (
	GroupUncategorized Group = "uncategorized"
	GroupCamping       Group = "camping"
	GroupHiking        Group = "hiking"
	GroupTravel        Group = "travel"
	GroupKitchen       Group = "kitchen"
)

// Groups returns every known group in display order. Uncategorized comes
// first so board layouts and pickers always lead with the default bucket.
func Groups() []Group {
	return []Group{
		GroupUncategorized,
		GroupCamping,
		GroupHiking,
		GroupTravel,
		GroupKitchen,
	}
}

// ParseGroup converts a raw string into a Group, rejecting anything outside
// the known set.
func ParseGroup(s string) (Group, error) {
	g := Group(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown group %q", s)
	}
	return g, nil
}

// Valid reports whether g is one of the known groups.
func (g Group) Valid() bool {
	switch g {
	case GroupUncategorized, GroupCamping, GroupHiking, GroupTravel, GroupKitchen:
		return true
	}
	return false
}

// Label returns the human-readable title for the group.
func (g Group) Label() string {
	switch g {
	case GroupUncategorized:
		return "Uncategorized"
	case GroupCamping:
		return "Camping"
	case GroupHiking:
		return "Hiking"
	case GroupTravel:
		return "Travel"
	case GroupKitchen:
		return "Kitchen"
	}
	return string(g)
}

// Item is a single piece of gear on the board.
type Item struct {
	ID          string
	Name        string
	Description string
	Grams       float64
	Group       Group
}

// WeightLabel formats a weight in grams for display, singularising the unit
// for exactly 1.
func WeightLabel(grams float64) string {
	s := strconv.FormatFloat(grams, 'f', -1, 64)
	if s == "1" {
		return "1 gram"
	}
	return s + " grams"
}
