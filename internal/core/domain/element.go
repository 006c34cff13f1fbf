package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Element is one of the five elements (ohaeng).
type Element string

// The five elements in generating-cycle order.
const (
	ElementWood  Element = "wood"
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementMetal Element = "metal"
	ElementWater Element = "water"
)

// Elements lists the five elements in cycle order: each generates the next.
var Elements = [5]Element{ElementWood, ElementFire, ElementEarth, ElementMetal, ElementWater}

// Index returns the position of e in the generating cycle, or -1 if e is unknown.
func (e Element) Index() int {
	switch e {
	case ElementWood:
		return 0
	case ElementFire:
		return 1
	case ElementEarth:
		return 2
	case ElementMetal:
		return 3
	case ElementWater:
		return 4
	default:
		return -1
	}
}

// IsValid returns true if the element is recognised.
func (e Element) IsValid() bool {
	return e.Index() >= 0
}

// Next returns the element that e generates.
func (e Element) Next() Element {
	i := e.Index()
	if i < 0 {
		return e
	}
	return Elements[(i+1)%len(Elements)]
}

// String returns the string representation.
func (e Element) String() string {
	return string(e)
}

// Label returns the Korean label (목, 화, 토, 금, 수).
func (e Element) Label() string {
	switch e {
	case ElementWood:
		return "목"
	case ElementFire:
		return "화"
	case ElementEarth:
		return "토"
	case ElementMetal:
		return "금"
	case ElementWater:
		return "수"
	default:
		return unknownDescription
	}
}

// ParseElement converts an English, Hangul or hanja label to an Element.
func ParseElement(s string) (Element, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wood", "목", "木":
		return ElementWood, nil
	case "fire", "화", "火":
		return ElementFire, nil
	case "earth", "토", "土":
		return ElementEarth, nil
	case "metal", "금", "金":
		return ElementMetal, nil
	case "water", "수", "水":
		return ElementWater, nil
	default:
		return "", fmt.Errorf("%w: unknown element %q", ErrInvalidInput, s)
	}
}

// ElementCounts holds one non-negative count per element, indexed by Element.Index.
type ElementCounts [5]int

// Get returns the count for e.
func (c ElementCounts) Get(e Element) int {
	i := e.Index()
	if i < 0 {
		return 0
	}
	return c[i]
}

// Total returns the sum of all counts.
func (c ElementCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Spread returns the difference between the largest and smallest count.
func (c ElementCounts) Spread() int {
	lo, hi := c[0], c[0]
	for _, n := range c[1:] {
		lo = min(lo, n)
		hi = max(hi, n)
	}
	return hi - lo
}

// Zero returns the elements with a count of zero, in cycle order.
func (c ElementCounts) Zero() []Element {
	var zero []Element
	for i, n := range c {
		if n == 0 {
			zero = append(zero, Elements[i])
		}
	}
	return zero
}

// MarshalJSON renders the counts as an object keyed by element name.
func (c ElementCounts) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(c))
	for i, n := range c {
		m[Elements[i].String()] = n
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads counts from an object keyed by element name.
func (c *ElementCounts) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*c = ElementCounts{}
	for k, n := range m {
		e, err := ParseElement(k)
		if err != nil {
			return err
		}
		c[e.Index()] = n
	}
	return nil
}

// ElementDistribution is an element histogram plus the ordered arrangement
// it was built from.
type ElementDistribution struct {
	Counts      ElementCounts `json:"counts"`
	Arrangement []Element     `json:"arrangement"`
}

// NewElementDistribution counts the given arrangement.
func NewElementDistribution(arrangement []Element) ElementDistribution {
	d := ElementDistribution{Arrangement: append([]Element(nil), arrangement...)}
	for _, e := range arrangement {
		if i := e.Index(); i >= 0 {
			d.Counts[i]++
		}
	}
	return d
}

// Extend returns a new distribution with extra appended to the arrangement.
func (d ElementDistribution) Extend(extra ...Element) ElementDistribution {
	arrangement := make([]Element, 0, len(d.Arrangement)+len(extra))
	arrangement = append(arrangement, d.Arrangement...)
	arrangement = append(arrangement, extra...)
	return NewElementDistribution(arrangement)
}
