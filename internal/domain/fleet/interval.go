package fleet

// NanosPerHour converts whole rental hours to host timestamps.
const NanosPerHour uint64 = 3_600_000_000_000

// Interval is a closed-open [Start, End) span of host timestamps in nanoseconds.
type Interval struct {
	Start uint64
	End   uint64
}

func NewInterval(start, end uint64) (Interval, error) {
	if start >= end {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

// IntervalFromNow spans hours whole hours starting at now.
func IntervalFromNow(now uint64, hours uint32) (Interval, error) {
	span := uint64(hours)
	if span > (^uint64(0)-now)/NanosPerHour {
		return Interval{}, ErrInvalidInterval
	}
	return NewInterval(now, now+span*NanosPerHour)
}

// Overlaps covers nested, partial and identical spans alike.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Covers is inclusive at both ends, unlike Overlaps.
func (iv Interval) Covers(t uint64) bool {
	return iv.Start <= t && t <= iv.End
}

// Hours is the whole number of hours in the span; any remainder is not billed.
func (iv Interval) Hours() uint64 {
	return (iv.End - iv.Start) / NanosPerHour
}
