package charset

// CharacterSet selects the international variant of the low ASCII range
// (ESC R command argument).
type CharacterSet int

const (
	USA CharacterSet = iota
	France
	Germany
	UK
	Denmark1
	Sweden
	Italy
	Spain1
	Japan
	Norway
	Denmark2
	Spain2
	LatinAmerica
	Korea
	SloveniaCroatia
	China
	Vietnam
	Arabia
	IndiaDevanagari
	IndiaBengali
	IndiaTamil
	IndiaTelugu
	IndiaAssamese
	IndiaOriya
	IndiaKannada
	IndiaMalayalam
	IndiaGujarati
	IndiaPunjabi
	IndiaMarathi
)

var characterSetOrdinals = map[CharacterSet]byte{
	USA:             0,
	France:          1,
	Germany:         2,
	UK:              3,
	Denmark1:        4,
	Sweden:          5,
	Italy:           6,
	Spain1:          7,
	Japan:           8,
	Norway:          9,
	Denmark2:        10,
	Spain2:          11,
	LatinAmerica:    12,
	Korea:           13,
	SloveniaCroatia: 14,
	China:           15,
	Vietnam:         16,
	Arabia:          17,
	IndiaDevanagari: 66,
	IndiaBengali:    67,
	IndiaTamil:      68,
	IndiaTelugu:     69,
	IndiaAssamese:   70,
	IndiaOriya:      71,
	IndiaKannada:    72,
	IndiaMalayalam:  73,
	IndiaGujarati:   74,
	IndiaPunjabi:    75,
	IndiaMarathi:    82,
}

// Value returns the wire ordinal of the character set.
func (cs CharacterSet) Value() byte {
	return characterSetOrdinals[cs]
}
