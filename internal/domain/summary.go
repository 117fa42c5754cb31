package domain

// Summary is the derived view over an invitation's RSVP records. It is computed
// on demand and never persisted. Guest totals count only yes responses.
// swagger:model Summary
type Summary struct {
	TotalResponses  int `json:"total_responses"`
	YesCount        int `json:"yes_count"`
	NoCount         int `json:"no_count"`
	MaybeCount      int `json:"maybe_count"`
	TotalAdults     int `json:"total_adults"`
	TotalChildren   int `json:"total_children"`
	TotalGuestCount int `json:"total_guest_count"`
}

// Summarize computes the Summary for an ordered sequence of RSVP records.
// An empty (or nil) input yields the zero Summary.
func Summarize(records []*RSVP) Summary {
	var s Summary
	for _, r := range records {
		s.TotalResponses++
		switch r.Attendance {
		case AttendanceYes:
			s.YesCount++
			s.TotalAdults += r.Adults
			s.TotalChildren += r.Children
			s.TotalGuestCount += r.GuestCount
		case AttendanceNo:
			s.NoCount++
		default:
			s.MaybeCount++
		}
	}
	return s
}
