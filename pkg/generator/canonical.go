package generator

import (
	"iter"

	"github.com/pkg/errors"
)

// DefaultMaxNumber is the exclusive bound of the canonical sets
const DefaultMaxNumber = 1000000

// SetNames lists the canonical sets in the order they are written
var SetNames = []string{"empty", "zero", "nonzero", "naturals", "odds", "evens"}

// Progression is an ascending arithmetic sequence Start, Start+Step, ...
// holding Count values
type Progression struct {
	Name  string
	Start int64
	Step  int64
	Count int64
}

// Filename returns "<name>.txt"
func (p Progression) Filename() string {
	return p.Name + ".txt"
}

// Values yields the progression in order
func (p Progression) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		v := p.Start
		for i := int64(0); i < p.Count; i++ {
			if !yield(v) {
				return
			}
			v += p.Step
		}
	}
}

// CanonicalSets builds the six canonical sets bounded by maxNumber
func CanonicalSets(maxNumber int64) []Progression {
	half := clamp(maxNumber / 2)

	return []Progression{
		{Name: "empty", Start: 0, Step: 1, Count: 0},
		{Name: "zero", Start: 0, Step: 1, Count: 1},
		{Name: "nonzero", Start: 1, Step: 1, Count: clamp(maxNumber - 1)},
		{Name: "naturals", Start: 0, Step: 1, Count: clamp(maxNumber)},
		{Name: "odds", Start: 1, Step: 2, Count: half},
		{Name: "evens", Start: 0, Step: 2, Count: half},
	}
}

// SelectSets keeps the sets named in names, preserving canonical order.
// An empty names list keeps everything.
func SelectSets(sets []Progression, names []string) ([]Progression, error) {
	if len(names) == 0 {
		return sets, nil
	}

	wanted := make(map[string]bool)
	for _, name := range names {
		found := false
		for _, set := range sets {
			if set.Name == name {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrapf(ErrUnknownSet, "%q", name)
		}
		wanted[name] = true
	}

	var selected []Progression
	for _, set := range sets {
		if wanted[set.Name] {
			selected = append(selected, set)
		}
	}
	return selected, nil
}

func clamp(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
