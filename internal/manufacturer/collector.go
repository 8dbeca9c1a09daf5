package manufacturer

type Outcome int

const (
	Accepted Outcome = iota
	Duplicate
	Filtered
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Duplicate:
		return "duplicate"
	case Filtered:
		return "filtered"
	default:
		return "unknown"
	}
}

type CollectorOptions struct {
	// SkipRescinded drops rescinded IDs before the duplicate check.
	SkipRescinded bool
}

// Collector keeps the first record seen for every code, in arrival order.
type Collector struct {
	opts    CollectorOptions
	records []Record
	seen    map[uint32]struct{}
}

func NewCollector(opts CollectorOptions) *Collector {
	return &Collector{
		opts: opts,
		seen: map[uint32]struct{}{},
	}
}

func (c *Collector) Add(r Record) Outcome {
	if c.opts.SkipRescinded && r.IsRescinded() {
		return Filtered
	}

	if _, ok := c.seen[r.Value]; ok {
		return Duplicate
	}

	c.seen[r.Value] = struct{}{}
	c.records = append(c.records, r)
	return Accepted
}

// Records returns the accepted records in first-seen order.
func (c *Collector) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Collector) Len() int {
	return len(c.records)
}
