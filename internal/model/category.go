package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category identifies one of the six degradation categories tracked by the
// beat map. The set is closed: scoring, aggregation, and rendering all assume
// exactly these six members, in this declaration order. Tie-breaking in
// primary/worst-category selection follows this order.
type Category int

const (
	Repetition Category = iota
	Vagueness
	IntentDecay
	ConfidenceInflation
	VoiceDegradation
	EntropyCollapse
)

// NumCategories is the size of the closed category set.
const NumCategories = int(EntropyCollapse) + 1

var categoryNames = [NumCategories]string{
	"Repetition",
	"Vagueness",
	"Intent Decay",
	"Confidence Inflation",
	"Voice Degradation",
	"Entropy Collapse",
}

var categoryAbbrevs = [NumCategories]string{
	"REP",
	"VAG",
	"INT",
	"CNF",
	"VOI",
	"ENT",
}

func (c Category) String() string {
	if c < 0 || int(c) >= NumCategories {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Abbrev returns the three-letter label used in compact report lines.
func (c Category) Abbrev() string {
	if c < 0 || int(c) >= NumCategories {
		return "???"
	}
	return categoryAbbrevs[c]
}

// Categories returns all categories in declaration order.
func Categories() [NumCategories]Category {
	var cats [NumCategories]Category
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// ParseCategory resolves a category display name back to its enum value.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// MarshalJSON encodes the category as its display name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a category from its display name.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cat, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = cat
	return nil
}

// Breakdown holds one score per category, indexed by Category. Using a fixed
// array keeps all six keys always present and makes argmax iteration order
// deterministic.
type Breakdown [NumCategories]float64

// Mean returns the arithmetic mean of the six category scores.
func (b Breakdown) Mean() float64 {
	var sum float64
	for _, v := range b {
		sum += v
	}
	return sum / float64(NumCategories)
}

// Primary returns the category with the highest score. Ties go to the first
// category in declaration order.
func (b Breakdown) Primary() Category {
	best := Category(0)
	for i := 1; i < NumCategories; i++ {
		if b[i] > b[best] {
			best = Category(i)
		}
	}
	return best
}

// MarshalJSON encodes the breakdown as a name-keyed object in declaration
// order, matching the shape of report artifacts.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(categoryNames[i])
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a name-keyed breakdown object.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for name, v := range m {
		cat, err := ParseCategory(name)
		if err != nil {
			return err
		}
		b[cat] = v
	}
	return nil
}
