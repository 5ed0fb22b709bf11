package datemath

// Unit is a closed enumeration of the calendar units an expression can name.
type Unit byte

const (
	Second Unit = 's'
	Minute Unit = 'm'
	Hour   Unit = 'h'
	Day    Unit = 'd'
	Week   Unit = 'w'
	Month  Unit = 'M'
	Year   Unit = 'y'
)

// units maps a unit character to its semantic unit. Case matters: 'm' is
// minutes and 'M' is months. 'W' is accepted as an alias for 'w', a spelling
// carried over from an older dialect of the shorthand.
var units = map[byte]Unit{
	's': Second,
	'm': Minute,
	'h': Hour,
	'd': Day,
	'w': Week,
	'W': Week,
	'M': Month,
	'y': Year,
}

func (u Unit) String() string {
	switch u {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unit(" + string(byte(u)) + ")"
	}
}

type segKind int

const (
	segOffset segKind = iota
	segRound
)

// segment is one parsed "+<n><unit>", "-<n><unit>" or "/<unit>" step.
// Segments are applied to the anchor strictly in textual order.
type segment struct {
	kind segKind
	sign int   // +1 or -1; offsets only
	n    int64 // magnitude; offsets only
	unit Unit
}
