package engine

import (
	"fmt"
	"strings"
	"unsafe"
)

// Bound flags
const (
	AlphaFlag int8 = iota // upper bound: every move failed low
	BetaFlag              // lower bound: a move failed high
	ExactFlag
)

const clusterSize = 4

// TableMode decides when a stored score may stand in for a search.
type TableMode uint8

const (
	// DepthAware reuses entries searched at least as deep, honouring bounds.
	DepthAware TableMode = iota
	// ExactDepth reuses entries searched to exactly the requested depth.
	ExactDepth
	// DepthAgnostic returns any stored score, ignoring depth and bound.
	DepthAgnostic
	// Disabled never stores or probes.
	Disabled
)

var tableModeNames = [...]string{"depthaware", "exactdepth", "depthagnostic", "disabled"}

func (m TableMode) String() string {
	if int(m) < len(tableModeNames) {
		return tableModeNames[m]
	}
	return fmt.Sprintf("TableMode(%d)", m)
}

// ParseTableMode accepts the names printed by String, case-insensitively.
func ParseTableMode(s string) (TableMode, error) {
	for i, name := range tableModeNames {
		if strings.EqualFold(s, name) {
			return TableMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown table mode %q", s)
}

type TTEntry struct {
	Hash  uint64
	Score Score
	Depth int8
	Flag  int8
	used  bool
}

type TransTable struct {
	mode         TableMode
	entries      []TTEntry
	clusterCount uint64
}

// NewTransTable allocates a clustered table of roughly sizeMB megabytes.
func NewTransTable(sizeMB int, mode TableMode) *TransTable {
	tt := &TransTable{mode: mode}
	if mode == Disabled {
		return tt
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(Max(sizeMB, 1)) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, clusterCount*clusterSize)
	return tt
}

func (tt *TransTable) Mode() TableMode { return tt.mode }

// Clear forgets every entry but keeps the allocation.
func (tt *TransTable) Clear() {
	clear(tt.entries)
}

// Len counts occupied slots.
func (tt *TransTable) Len() (n int) {
	for i := range tt.entries {
		if tt.entries[i].used {
			n++
		}
	}
	return n
}

// Probe returns the entry stored for hash, if any.
func (tt *TransTable) Probe(hash uint64) (TTEntry, bool) {
	if tt.clusterCount == 0 {
		return TTEntry{}, false
	}
	base := int(hash%tt.clusterCount) * clusterSize
	for i := 0; i < clusterSize; i++ {
		if e := tt.entries[base+i]; e.used && e.Hash == hash {
			return e, true
		}
	}
	return TTEntry{}, false
}

// useEntry decides whether entry answers a search of depth with window
// (alpha, beta) under the table's mode.
func (tt *TransTable) useEntry(entry TTEntry, depth int, alpha, beta Score) (usable bool, score Score) {
	switch tt.mode {
	case DepthAgnostic:
		return true, entry.Score
	case DepthAware:
		if int(entry.Depth) < depth {
			return false, score
		}
	case ExactDepth:
		if int(entry.Depth) != depth {
			return false, score
		}
	default:
		return false, score
	}
	switch entry.Flag {
	case ExactFlag:
		return true, entry.Score
	case BetaFlag:
		if entry.Score.Compare(beta) >= 0 {
			return true, entry.Score
		}
	case AlphaFlag:
		if entry.Score.Compare(alpha) <= 0 {
			return true, entry.Score
		}
	}
	return false, score
}

/*
Replacement: same hash first, then an empty slot, otherwise the shallowest
entry in the cluster.
*/
func (tt *TransTable) Store(hash uint64, depth int, score Score, flag int8) {
	if tt.clusterCount == 0 {
		return
	}
	base := int(hash%tt.clusterCount) * clusterSize
	targetIdx := -1

	for i := 0; i < clusterSize; i++ {
		if e := &tt.entries[base+i]; e.used && e.Hash == hash {
			targetIdx = base + i
			break
		}
	}
	if targetIdx == -1 {
		for i := 0; i < clusterSize; i++ {
			if !tt.entries[base+i].used {
				targetIdx = base + i
				break
			}
		}
	}
	if targetIdx == -1 {
		targetIdx = base
		minDepth := tt.entries[base].Depth
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < minDepth {
				minDepth = tt.entries[base+i].Depth
				targetIdx = base + i
			}
		}
	}

	tt.entries[targetIdx] = TTEntry{
		Hash:  hash,
		Score: score,
		Depth: int8(depth),
		Flag:  flag,
		used:  true,
	}
}
