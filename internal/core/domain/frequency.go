package domain

// Frequency is the capping policy attached to an ad. Every knob is a
// non-negative integer and 0 means "no limit", never a cap of zero.
// Enforcement lives in the backend; the console only stores and edits it.
type Frequency struct {
	PerUserPerDay      int `json:"perUserPerDay"`
	MinIntervalMinutes int `json:"minIntervalMinutes"`
	PerSession         int `json:"perSession"`
}

// DefaultFrequency is the policy a fresh draft starts with.
func DefaultFrequency() Frequency {
	return Frequency{PerUserPerDay: 3, MinIntervalMinutes: 30, PerSession: 1}
}

// Unlimited reports whether a frequency knob imposes no cap.
func Unlimited(limit int) bool { return limit == 0 }

// FrequencyPatch carries a partial frequency edit. Nil fields are left
// untouched and omitted from the request body; a pointer to 0 is sent as 0.
type FrequencyPatch struct {
	PerUserPerDay      *int `json:"perUserPerDay,omitempty"`
	MinIntervalMinutes *int `json:"minIntervalMinutes,omitempty"`
	PerSession         *int `json:"perSession,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p FrequencyPatch) Empty() bool {
	return p.PerUserPerDay == nil && p.MinIntervalMinutes == nil && p.PerSession == nil
}

// Apply returns f with the patched fields replaced.
func (f Frequency) Apply(p FrequencyPatch) Frequency {
	if p.PerUserPerDay != nil {
		f.PerUserPerDay = *p.PerUserPerDay
	}
	if p.MinIntervalMinutes != nil {
		f.MinIntervalMinutes = *p.MinIntervalMinutes
	}
	if p.PerSession != nil {
		f.PerSession = *p.PerSession
	}
	return f
}
