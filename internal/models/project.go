package models

// ProjectRole identifies which release board a handler targets
type ProjectRole int

const (
	// NextRelease is the board for the upcoming release scope
	NextRelease ProjectRole = iota
	// CurrentRelease is the board for the in-progress release scope
	CurrentRelease
)

// BaseTitle returns the production board title for this role
func (r ProjectRole) BaseTitle() string {
	switch r {
	case NextRelease:
		return "Next release"
	case CurrentRelease:
		return "Current release"
	default:
		return ""
	}
}

func (r ProjectRole) String() string {
	switch r {
	case NextRelease:
		return "next-release"
	case CurrentRelease:
		return "current-release"
	default:
		return ""
	}
}

// Project is a resolved project board
type Project struct {
	// ID is the API node id
	ID string
	// Title is the board title
	Title string
}
