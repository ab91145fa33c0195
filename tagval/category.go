package tagval

import "strconv"

// Category is the semantic category of a Value.
type Category uint8

const (
	// Invalid is not produced by a well formed program.
	Invalid = Category(iota)
	CatPair
	CatBox
	CatProc
	CatInt
	CatChar
	CatTrue
	CatFalse
	CatEOF
	CatEmpty
	CatVoid
)

var categoryNames = [...]string{
	Invalid:  "Invalid",
	CatPair:  "Pair",
	CatBox:   "Box",
	CatProc:  "Proc",
	CatInt:   "Int",
	CatChar:  "Char",
	CatTrue:  "True",
	CatFalse: "False",
	CatEOF:   "EOF",
	CatEmpty: "Empty",
	CatVoid:  "Void",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// IsSingleton returns true for the categories that have exactly one Value.
func (c Category) IsSingleton() bool {
	switch c {
	case CatTrue, CatFalse, CatEOF, CatEmpty, CatVoid:
		return true
	}
	return false
}
