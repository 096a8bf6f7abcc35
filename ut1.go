package hifi

// DeltaTAIUT1 is one record of an Earth orientation table: from Epoch on,
// TAI - UT1 is DeltaTAIMinusUT1.
type DeltaTAIUT1 struct {
	Epoch            Epoch
	DeltaTAIMinusUT1 Duration
}

// UT1Provider supplies an ordered, read-only snapshot of TAI - UT1 records.
type UT1Provider interface {
	UT1Records() []DeltaTAIUT1
}

// UT1Table is a UT1Provider backed by a slice ordered by epoch.
type UT1Table []DeltaTAIUT1

// UT1Records returns the table itself.
func (t UT1Table) UT1Records() []DeltaTAIUT1 {
	return t
}

// UT1Offset returns TAI - UT1 from the latest record strictly before e. ok is
// false when provider is nil or has no such record.
func (e Epoch) UT1Offset(provider UT1Provider) (offset Duration, ok bool) {
	if provider == nil {
		return Zero, false
	}
	records := provider.UT1Records()
	for i := len(records) - 1; i >= 0; i-- {
		if e.After(records[i].Epoch) {
			return records[i].DeltaTAIMinusUT1, true
		}
	}
	return Zero, false
}

// ToUT1Duration returns the UT1 duration since 1900-01-01T00:00:00. Without an
// applicable record, UT1 is taken to equal TAI.
func (e Epoch) ToUT1Duration(provider UT1Provider) Duration {
	offset, _ := e.UT1Offset(provider)
	return e.tai.Sub(offset)
}

// ToUT1 returns the TAI epoch whose duration equals the UT1 duration of e.
func (e Epoch) ToUT1(provider UT1Provider) Epoch {
	return FromTAIDuration(e.ToUT1Duration(provider))
}

// FromUT1Duration returns the epoch d after 1900-01-01T00:00:00 UT1.
func FromUT1Duration(d Duration, provider UT1Provider) Epoch {
	e := FromTAIDuration(d)
	offset, _ := e.UT1Offset(provider)
	return e.AddTAI(offset)
}
