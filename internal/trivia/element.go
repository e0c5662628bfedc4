// Package trivia holds the element table and the question bank behind the
// milestone interstitial: reaching a new highest level introduces that
// element and asks one multiple-choice question about it.
package trivia

import "strconv"

// Element is the chemical element a tile level stands for.
type Element struct {
	Number int // Atomic number, equal to the tile level
	Symbol string
	Name   string
}

// Elements lists levels 1..20. The classic win level is calcium.
var Elements = []Element{
	{1, "H", "Hydrogen"},
	{2, "He", "Helium"},
	{3, "Li", "Lithium"},
	{4, "Be", "Beryllium"},
	{5, "B", "Boron"},
	{6, "C", "Carbon"},
	{7, "N", "Nitrogen"},
	{8, "O", "Oxygen"},
	{9, "F", "Fluorine"},
	{10, "Ne", "Neon"},
	{11, "Na", "Sodium"},
	{12, "Mg", "Magnesium"},
	{13, "Al", "Aluminium"},
	{14, "Si", "Silicon"},
	{15, "P", "Phosphorus"},
	{16, "S", "Sulphur"},
	{17, "Cl", "Chlorine"},
	{18, "Ar", "Argon"},
	{19, "K", "Potassium"},
	{20, "Ca", "Calcium"},
}

// Lookup returns the element for a tile level.
func Lookup(level int) (Element, bool) {
	if level < 1 || level > len(Elements) {
		return Element{}, false
	}
	return Elements[level-1], true
}

// Symbol returns the display symbol for a level, falling back to the number
// for levels past the table.
func Symbol(level int) string {
	if el, ok := Lookup(level); ok {
		return el.Symbol
	}
	return strconv.Itoa(level)
}

// Name returns the element name for a level, or "Element N" past the table.
func Name(level int) string {
	if el, ok := Lookup(level); ok {
		return el.Name
	}
	return "Element " + strconv.Itoa(level)
}
