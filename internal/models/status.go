package models

// Status is a value of the boards' single-select "Status" field
type Status int

const (
	// NeedsTesting marks a change waiting for manual verification
	NeedsTesting Status = iota
	// FixOpen marks a fix that is still an open PR
	FixOpen
	// FixConflict marks a fix whose cherry-pick hit a conflict
	FixConflict
)

// Display returns the option name as it appears on the boards
func (s Status) Display() string {
	switch s {
	case NeedsTesting:
		return "Needs testing"
	case FixOpen:
		return "Fix (open)"
	case FixConflict:
		return "Fix (conflict)"
	default:
		return ""
	}
}

func (s Status) String() string {
	return s.Display()
}

// StatusOption is one named option of a board's status field
type StatusOption struct {
	ID   string
	Name string
}

// StatusField is a board's status field descriptor
type StatusField struct {
	// ID is the field's node id
	ID string
	// Options are the declared single-select options
	Options []StatusOption
}

// OptionID resolves an option name to its id
func (f StatusField) OptionID(name string) (string, bool) {
	for _, o := range f.Options {
		if o.Name == name {
			return o.ID, true
		}
	}
	return "", false
}
