// Package formation holds the read-only catalog of formation templates.
// Each template is an immutable set of exactly 11 slots with stable ids,
// role labels, and 2-D pitch coordinates (percentages).
package formation

// Vertical bands for formation lines, as percentage from the attacking end.
// More separation between DF and MF; MF shifted toward FW.
const (
	bandFW = 18
	bandAM = 32
	bandMF = 48
	bandDF = 72
	bandGK = 90
)

// SlotCount is the number of slots in every template.
const SlotCount = 11

// DefaultName is the template used when a formation id is unknown.
const DefaultName = "4-4-2"

// Slot is one fixed position within a template.
type Slot struct {
	// ID is the stable slot identifier (0-10) within the template.
	ID int
	// X and Y are pitch coordinates in percent.
	X, Y int
	// Label is the role name shown for the slot (GK, LB, CMF, ...).
	Label string
}

// Template is an immutable named formation.
type Template struct {
	Name string
	// Slots in defined order; slot order matters for lineup reassignment.
	Slots []Slot
}

var catalog = map[string]Template{
	"4-4-2": {Name: "4-4-2", Slots: []Slot{
		{0, 50, bandGK, "GK"},
		{1, 20, bandDF, "LB"}, {2, 40, bandDF, "CB"}, {3, 60, bandDF, "CB"}, {4, 80, bandDF, "RB"},
		{5, 20, bandMF, "LMF"}, {6, 40, bandMF, "CMF"}, {7, 60, bandMF, "CMF"}, {8, 80, bandMF, "RMF"},
		{9, 35, bandFW, "CF"}, {10, 65, bandFW, "CF"},
	}},
	"4-3-3": {Name: "4-3-3", Slots: []Slot{
		{0, 50, bandGK, "GK"},
		{1, 15, bandDF, "LB"}, {2, 38, bandDF, "CB"}, {3, 62, bandDF, "CB"}, {4, 85, bandDF, "RB"},
		{5, 50, bandMF, "DMF"}, {6, 30, bandMF, "CMF"}, {7, 70, bandMF, "CMF"},
		{8, 20, bandFW, "LWG"}, {9, 50, bandFW, "CF"}, {10, 80, bandFW, "RWG"},
	}},
	"3-4-2-1": {Name: "3-4-2-1", Slots: []Slot{
		{0, 50, bandGK, "GK"},
		{1, 25, bandDF, "CB"}, {2, 50, bandDF, "CB"}, {3, 75, bandDF, "CB"},
		{4, 10, bandMF, "WB"}, {5, 35, bandMF, "DMF"}, {6, 65, bandMF, "DMF"}, {7, 90, bandMF, "WB"},
		{8, 30, bandAM, "OMF"}, {9, 70, bandAM, "OMF"}, {10, 50, bandFW, "CF"},
	}},
	"5-3-2": {Name: "5-3-2", Slots: []Slot{
		{0, 50, bandGK, "GK"},
		{1, 15, bandDF, "LB"}, {2, 32, bandDF, "CB"}, {3, 50, bandDF, "CB"}, {4, 68, bandDF, "CB"}, {5, 85, bandDF, "RB"},
		{6, 50, bandMF, "DMF"}, {7, 30, bandMF, "CMF"}, {8, 70, bandMF, "CMF"},
		{9, 35, bandFW, "CF"}, {10, 65, bandFW, "CF"},
	}},
	"3-5-2": {Name: "3-5-2", Slots: []Slot{
		{0, 50, bandGK, "GK"},
		{1, 20, bandDF, "CB"}, {2, 50, bandDF, "CB"}, {3, 80, bandDF, "CB"},
		{4, 10, bandMF, "WB"}, {5, 35, bandMF, "DMF"}, {6, 65, bandMF, "DMF"}, {7, 90, bandMF, "WB"},
		{8, 50, bandAM, "OMF"}, {9, 35, bandFW, "CF"}, {10, 65, bandFW, "CF"},
	}},
	"4-2-3-1": {Name: "4-2-3-1", Slots: []Slot{
		{0, 50, bandGK, "GK"},
		{1, 15, bandDF, "LB"}, {2, 38, bandDF, "CB"}, {3, 62, bandDF, "CB"}, {4, 85, bandDF, "RB"},
		{5, 35, bandMF, "DMF"}, {6, 65, bandMF, "DMF"},
		{7, 15, bandAM, "LMF"}, {8, 50, bandAM, "OMF"}, {9, 85, bandAM, "RMF"},
		{10, 50, bandFW, "CF"},
	}},
}

// names in display order.
var names = []string{"4-4-2", "4-3-3", "3-4-2-1", "5-3-2", "3-5-2", "4-2-3-1"}

// Get returns the template for the given name. Unknown names fall back to
// the default template rather than failing.
func Get(name string) Template {
	if t, ok := catalog[name]; ok {
		return t
	}
	return catalog[DefaultName]
}

// Known reports whether name is a catalog template.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Names returns the template names in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
