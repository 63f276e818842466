package models

// PickResult represents the outcome of replaying a commit onto the release
// branch. A conflict is a normal outcome, not an error; transport and
// repository failures stay on the error channel.
type PickResult interface {
	isPickResult()
	// Status maps the outcome to the board status it implies
	Status() Status
}

type pickApplied struct{}
type pickConflict struct{}

func (pickApplied) isPickResult()  {}
func (pickConflict) isPickResult() {}

func (pickApplied) Status() Status  { return NeedsTesting }
func (pickConflict) Status() Status { return FixConflict }

// PickResult variants
var (
	// Applied indicates the commit replayed cleanly
	Applied PickResult = pickApplied{}
	// Conflict indicates the replay stopped on a merge conflict
	Conflict PickResult = pickConflict{}
)

// IsConflict returns true if the result is the Conflict variant
func IsConflict(r PickResult) bool {
	_, ok := r.(pickConflict)
	return ok
}
