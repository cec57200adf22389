package generator

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyRange is returned when the corrected range holds no integers
	ErrEmptyRange = errors.New("empty integer range")
	// ErrUnknownSet is returned when a canonical set name is not recognised
	ErrUnknownSet = errors.New("unknown canonical set")
)

// RandomParams describes one run of the random set generator
type RandomParams struct {
	Count      int    `json:"count" yaml:"count"`
	Min        int64  `json:"min" yaml:"min"`
	Max        int64  `json:"max" yaml:"max"`
	Stem       string `json:"filename" yaml:"filename"`
	TotalFiles int    `json:"total_files" yaml:"total_files"`
	Seed       uint64 `json:"seed" yaml:"seed"`
}

// Normalize applies the range correction and the default filename stem.
// Any Max <= Min is replaced by Count*5, even when the caller set it on purpose.
func (p RandomParams) Normalize() RandomParams {
	if p.Max <= p.Min {
		p.Max = int64(p.Count) * 5
	}
	if p.Stem == "" {
		p.Stem = fmt.Sprintf("%d.txt", p.Count)
	}
	return p
}

// ReplicaNames returns "1_<stem>" through "<TotalFiles>_<stem>"
func (p RandomParams) ReplicaNames() []string {
	var names []string
	for filenum := 1; filenum <= p.TotalFiles; filenum++ {
		names = append(names, fmt.Sprintf("%d_%s", filenum, p.Stem))
	}
	return names
}
