// Package charset maps Unicode text onto the 8-bit character tables
// (page codes) selectable on ESC/POS printers, and provides the text
// encoder used by print commands.
package charset

// PageCode identifies an 8-bit character table on the device. The wire
// ordinal is the argument of the ESC t command.
type PageCode int

// PageCodeNone selects the generic byte encoder with no table lookup.
const PageCodeNone PageCode = -1

const (
	PC437 PageCode = iota
	Katakana
	PC850
	PC860
	PC863
	PC865
	Hiragana
	PC851
	PC853
	PC857
	PC737
	ISO8859_7
	WPC1252
	PC866
	PC852
	PC858
	PC720
	WPC775
	PC855
	PC861
	PC862
	PC864
	PC869
	ISO8859_2
	ISO8859_15
	PC1098
	PC1118
	PC1119
	PC1125
	WPC1250
	WPC1251
	WPC1253
	WPC1254
	WPC1255
	WPC1256
	WPC1257
	WPC1258
	KZ1048
)

var pageCodeOrdinals = map[PageCode]byte{
	PC437:      0,
	Katakana:   1,
	PC850:      2,
	PC860:      3,
	PC863:      4,
	PC865:      5,
	Hiragana:   6,
	PC851:      11,
	PC853:      12,
	PC857:      13,
	PC737:      14,
	ISO8859_7:  15,
	WPC1252:    16,
	PC866:      17,
	PC852:      18,
	PC858:      19,
	PC720:      32,
	WPC775:     33,
	PC855:      34,
	PC861:      35,
	PC862:      36,
	PC864:      37,
	PC869:      38,
	ISO8859_2:  39,
	ISO8859_15: 40,
	PC1098:     41,
	PC1118:     42,
	PC1119:     43,
	PC1125:     44,
	WPC1250:    45,
	WPC1251:    46,
	WPC1253:    47,
	WPC1254:    48,
	WPC1255:    49,
	WPC1256:    50,
	WPC1257:    51,
	WPC1258:    52,
	KZ1048:     53,
}

var pageCodeNames = map[PageCode]string{
	PC437:      "PC437",
	Katakana:   "Katakana",
	PC850:      "PC850",
	PC860:      "PC860",
	PC863:      "PC863",
	PC865:      "PC865",
	Hiragana:   "Hiragana",
	PC851:      "PC851",
	PC853:      "PC853",
	PC857:      "PC857",
	PC737:      "PC737",
	ISO8859_7:  "ISO8859-7",
	WPC1252:    "WPC1252",
	PC866:      "PC866",
	PC852:      "PC852",
	PC858:      "PC858",
	PC720:      "PC720",
	WPC775:     "WPC775",
	PC855:      "PC855",
	PC861:      "PC861",
	PC862:      "PC862",
	PC864:      "PC864",
	PC869:      "PC869",
	ISO8859_2:  "ISO8859-2",
	ISO8859_15: "ISO8859-15",
	PC1098:     "PC1098",
	PC1118:     "PC1118",
	PC1119:     "PC1119",
	PC1125:     "PC1125",
	WPC1250:    "WPC1250",
	WPC1251:    "WPC1251",
	WPC1253:    "WPC1253",
	WPC1254:    "WPC1254",
	WPC1255:    "WPC1255",
	WPC1256:    "WPC1256",
	WPC1257:    "WPC1257",
	WPC1258:    "WPC1258",
	KZ1048:     "KZ1048",
}

// Value returns the wire ordinal of the page code.
func (pc PageCode) Value() byte {
	return pageCodeOrdinals[pc]
}

func (pc PageCode) String() string {
	if pc == PageCodeNone {
		return "none"
	}
	if name, ok := pageCodeNames[pc]; ok {
		return name
	}
	return "unknown"
}
