package engine

import "github.com/rs/zerolog"

// CutStatistics counts search work and each pruning mechanism.
type CutStatistics struct {
	Nodes       uint64
	Leaves      uint64
	TTHits      uint64
	TTCutoffs   uint64
	BetaCutoffs uint64
}

func (c *CutStatistics) reset() {
	*c = CutStatistics{}
}

// MarshalZerologObject lets the stats ride along on a log event.
func (c CutStatistics) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", c.Nodes).
		Uint64("leaves", c.Leaves).
		Uint64("ttHits", c.TTHits).
		Uint64("ttCutoffs", c.TTCutoffs).
		Uint64("betaCutoffs", c.BetaCutoffs)
}
