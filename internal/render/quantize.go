package render

// Class is a quantized water height. Classes are ordered from dry to deep;
// Wall sorts after all water classes and is only produced for obstacles.
type Class int

const (
	Empty Class = iota
	Shallow
	Low
	Mid
	MidHigh
	Full
	Deep
	Wall
)

// thresholds[i] is the exclusive lower bound of class i+1.
var thresholds = [...]float64{0.05, 0.20, 0.35, 0.50, 0.65, 0.80}

var glyphs = [...]byte{
	Empty:   ' ',
	Shallow: '.',
	Low:     '-',
	Mid:     '=',
	MidHigh: '*',
	Full:    '#',
	Deep:    '@',
	Wall:    'X',
}

var names = [...]string{
	Empty:   "empty",
	Shallow: "shallow",
	Low:     "low",
	Mid:     "mid",
	MidHigh: "mid-high",
	Full:    "full",
	Deep:    "deep",
	Wall:    "wall",
}

// Quantize maps a height to its class. A value exactly on a threshold falls
// in the lower class.
func Quantize(h float64) Class {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if h > thresholds[i] {
			return Class(i + 1)
		}
	}
	return Empty
}

func (c Class) Glyph() byte {
	if c < Empty || c > Wall {
		return '?'
	}
	return glyphs[c]
}

func (c Class) String() string {
	if c < Empty || c > Wall {
		return "unknown"
	}
	return names[c]
}
