package charset

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Page-code tables map a Unicode scalar value to the single output byte
// the device prints for it. They are derived from the x/text charmap
// tables once, on first access, and are immutable afterwards, so they can
// be shared across concurrent readers without locking.

var tableSources = map[PageCode]*charmap.Charmap{
	PC437:      charmap.CodePage437,
	PC850:      charmap.CodePage850,
	PC852:      charmap.CodePage852,
	PC855:      charmap.CodePage855,
	PC858:      charmap.CodePage858,
	PC860:      charmap.CodePage860,
	PC862:      charmap.CodePage862,
	PC863:      charmap.CodePage863,
	PC865:      charmap.CodePage865,
	PC866:      charmap.CodePage866,
	ISO8859_2:  charmap.ISO8859_2,
	ISO8859_7:  charmap.ISO8859_7,
	ISO8859_15: charmap.ISO8859_15,
	WPC1250:    charmap.Windows1250,
	WPC1251:    charmap.Windows1251,
	WPC1252:    charmap.Windows1252,
}

var (
	tablesOnce sync.Once
	tables     map[PageCode]map[rune]byte
)

func buildTables() {
	tables = make(map[PageCode]map[rune]byte, len(tableSources))
	for pc, cm := range tableSources {
		table := make(map[rune]byte, 128)
		for i := 0x80; i <= 0xFF; i++ {
			r := cm.DecodeByte(byte(i))
			// Skip undefined slots and C1 control placeholders.
			if r == utf8.RuneError || r < 0xA0 {
				continue
			}
			table[r] = byte(i)
		}
		tables[pc] = table
	}
}

// Table returns the byte mapping for a page code, or false if no table is
// registered for it.
func Table(pc PageCode) (map[rune]byte, bool) {
	tablesOnce.Do(buildTables)
	table, ok := tables[pc]
	return table, ok
}
