package fieldstate

import "github.com/goliatone/go-formstate/pkg/finding"

// SnapshotData carries the raw flags and findings used to build a Snapshot.
type SnapshotData struct {
	Value    any
	Touched  bool
	Dirty    bool
	Pending  bool
	Valid    bool
	Invalid  bool
	Findings []finding.Finding
}

// Snapshot is an immutable State captured at a point in time. The engine
// treats every state as immutable-per-read; Snapshot makes that explicit for
// hosts that do not keep live runtime objects around.
type Snapshot struct {
	data SnapshotData
}

// NewSnapshot copies the findings slice so later mutation of the input cannot
// leak into the snapshot.
func NewSnapshot(data SnapshotData) Snapshot {
	if len(data.Findings) > 0 {
		data.Findings = append([]finding.Finding(nil), data.Findings...)
	} else {
		data.Findings = nil
	}
	return Snapshot{data: data}
}

func (s Snapshot) Value() any { return s.data.Value }

func (s Snapshot) Touched() bool { return s.data.Touched }

func (s Snapshot) Dirty() bool { return s.data.Dirty }

func (s Snapshot) Pending() bool { return s.data.Pending }

func (s Snapshot) Valid() bool { return s.data.Valid }

func (s Snapshot) Invalid() bool { return s.data.Invalid }

func (s Snapshot) Findings() []finding.Finding { return s.data.Findings }

var _ State = Snapshot{}
