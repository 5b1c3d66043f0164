package domain

import "time"

// DayOfWeek names the day a ranking request is evaluated against.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Valid reports whether the value is one of the seven days.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// TimeOfDay is the coarse daypart of a ranking request.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Valid reports whether the value is a known daypart.
func (t TimeOfDay) Valid() bool {
	switch t {
	case Morning, Afternoon, Evening, Night:
		return true
	}
	return false
}

// Mood captures the reader's self-reported state. Optional; empty means unset.
type Mood string

const (
	MoodFocused Mood = "focused"
	MoodRelaxed Mood = "relaxed"
	MoodCurious Mood = "curious"
	MoodTired   Mood = "tired"
)

// Valid reports whether the value is a known mood.
func (m Mood) Valid() bool {
	switch m {
	case MoodFocused, MoodRelaxed, MoodCurious, MoodTired:
		return true
	}
	return false
}

// ReadingDuration is the reader's time budget. Optional; empty means unset.
type ReadingDuration string

const (
	ReadingQuick  ReadingDuration = "quick"
	ReadingMedium ReadingDuration = "medium"
	ReadingDeep   ReadingDuration = "deep"
)

// Valid reports whether the value is a known reading budget.
func (r ReadingDuration) Valid() bool {
	switch r {
	case ReadingQuick, ReadingMedium, ReadingDeep:
		return true
	}
	return false
}

// RankingContext is the situational frame a batch of articles is scored
// against. Immutable for the lifetime of a session.
type RankingContext struct {
	DayOfWeek       DayOfWeek
	TimeOfDay       TimeOfDay
	Mood            Mood            // optional
	ReadingDuration ReadingDuration // optional
}

// ContextFromTime derives the temporal axes of a RankingContext from a
// wall-clock instant. Mood and reading budget stay unset.
func ContextFromTime(t time.Time) RankingContext {
	return RankingContext{
		DayOfWeek: DayOfWeek(t.Weekday().String()),
		TimeOfDay: dayPart(t.Hour()),
	}
}

func dayPart(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 22:
		return Evening
	default:
		return Night
	}
}
