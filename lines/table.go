package lines

import "sort"

// nameToIndex maps a line name, as spelled in the stations dataset, to its code.
var nameToIndex = map[string]string{
	"Сокольническая":             "1",
	"Замоскворецкая":             "2",
	"Арбатско-Покровская":        "3",
	"Филевская":                  "4",
	"Кольцевая":                  "5",
	"Калужско-Рижская":           "6",
	"Таганско-Краснопресненская": "7",
	"Калининская":                "8",
	"Серпуховско-Тимирязевская":  "9",
	"Люблинско-Дмитровская":      "10",
	"Каховская":                  "11",
	"Бутовская":                  "12",
	"Солнцевская":                "8A",
	"МЦК":                        "14",
	"Монорельс":                  "13",
	"Большая кольцевая линия":    "11A",
	"Некрасовская":               "15",
	"МЦД-1":                      "D1",
	"МЦД-2":                      "D2",
	"МЦД-3":                      "D3",
	"МЦД-4":                      "D4",
	"Троицкая":                   "16",
}

// Entry is a single row of the table
type Entry struct {
	Name  string
	Index string
}

// Lookup returns the index code for an exact line name
func Lookup(name string) (string, bool) {
	code, ok := nameToIndex[name]
	return code, ok
}

// Len returns the number of known lines
func Len() int {
	return len(nameToIndex)
}

// Entries returns a copy of the table ordered by index code.
// Numeric codes sort numerically and a letter suffix sorts after its number
// (8, 8A, 9, ..., 11, 11A), diameter codes (D1..D4) come last.
func Entries() []Entry {
	out := make([]Entry, 0, len(nameToIndex))
	for name, code := range nameToIndex {
		out = append(out, Entry{Name: name, Index: code})
	}
	sort.Slice(out, func(i, j int) bool {
		return lessCode(out[i].Index, out[j].Index)
	})
	return out
}

// Names returns the known line names ordered by index code
func Names() []string {
	entries := Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func lessCode(a, b string) bool {
	pa, na, sa := splitCode(a)
	pb, nb, sb := splitCode(b)
	if pa != pb {
		return pa < pb
	}
	if na != nb {
		return na < nb
	}
	return sa < sb
}

// splitCode breaks a code into a letter prefix, its number and a letter suffix
func splitCode(code string) (prefix string, num int, suffix string) {
	i := 0
	for i < len(code) && (code[i] < '0' || code[i] > '9') {
		i++
	}
	prefix = code[:i]
	for i < len(code) && code[i] >= '0' && code[i] <= '9' {
		num = num*10 + int(code[i]-'0')
		i++
	}
	suffix = code[i:]
	return prefix, num, suffix
}
