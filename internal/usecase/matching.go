package usecase

// MatchesBrokerCoverage reports whether a broker's declared coverage admits a
// lead. Both checks are plain set membership: the lead's state must be one of
// the broker's covered states and the lead's segment one of their specialties.
// It filters the preview feed and is re-checked server-side before any lock
// attempt; client-supplied lead selection is never trusted on its own.
func MatchesBrokerCoverage(brokerStates, brokerSpecialties []string, leadState, leadSegment string) bool {
	return contains(brokerStates, leadState) && contains(brokerSpecialties, leadSegment)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
