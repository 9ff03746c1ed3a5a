package viz

// ElementSymbol names a chemical element, used here purely as a visual
// tag for candidate coordination sites: CNNumberToElement borrows the
// element at that atomic number so different coordination numbers are
// visually distinguishable when a scene is rendered or exported.
//
// No third-party periodic-table package was available in the dependency
// set this module draws from, so the table is a small hand-written
// slice rather than an imported one -- see DESIGN.md.
type ElementSymbol string

const (
	ElementNe ElementSymbol = "Ne"
	ElementXe ElementSymbol = "Xe"
	ElementW  ElementSymbol = "W"
	ElementNp ElementSymbol = "Np"
)

// periodicTable holds element symbols indexed by atomic number minus
// one (periodicTable[0] is hydrogen). It only needs to reach far enough
// to cover realistic coordination numbers; CNNumberToElement falls back
// to ElementNp beyond that range, a heavy, visually distinct placeholder.
var periodicTable = []ElementSymbol{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np",
}

// CNNumberToElement maps a coordination number (the count of anchor
// atoms a candidate site bonds to) onto an element symbol for display.
// Coordination numbers beyond the table fall back to ElementNp, mirroring
// how the original tool treats out-of-range atomic numbers.
func CNNumberToElement(cn int) ElementSymbol {
	if cn >= 1 && cn <= len(periodicTable) {
		return periodicTable[cn-1]
	}
	return ElementNp
}
