package models

// Style is the closed set of supported outfit styles.
type Style string

const (
	StyleCasual Style = "casual"
	StyleFormal Style = "formal"
	StyleSporty Style = "sporty"
)

// ParseStyle maps free-form input to a known style.
// The boolean reports whether the input named a supported style.
func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleCasual, StyleFormal, StyleSporty:
		return Style(s), true
	}
	return StyleCasual, false
}

// TimeKind discriminates the resolved temporal target of a query.
type TimeKind int

const (
	// TimeNow means the current conditions.
	TimeNow TimeKind = iota
	// TimeRelativeDay means a whole day, DayOffset days from today.
	TimeRelativeDay
)

// TimeTarget is the point or day in time a query refers to.
type TimeTarget struct {
	Kind      TimeKind
	DayOffset int // 0..4, meaningful only for TimeRelativeDay
}

func Now() TimeTarget { return TimeTarget{Kind: TimeNow} }

func RelativeDay(offset int) TimeTarget {
	return TimeTarget{Kind: TimeRelativeDay, DayOffset: offset}
}

// Query is the structured form of a free-text request.
// LocationToken is non-empty unless UseCurrentLocation is set.
type Query struct {
	RawText            string
	LocationToken      string
	UseCurrentLocation bool
	Target             TimeTarget
}
