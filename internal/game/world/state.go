package world

// State is the behavior state of a snowman. The concrete types are
// Traveling, Throwing, Hit and Stunned; each carries only its own data.
type State interface {
	// Name returns a short label for logs.
	Name() string
	isState()
}

// Traveling snowmen walk along their heading and look for targets.
type Traveling struct{}

// Throwing snowmen wind up and release one snowball at Target.
type Throwing struct {
	Target   ActorID
	Launched bool
}

// Hit snowmen were just struck and leap backward.
type Hit struct{}

// Stunned snowmen spin and wobble before walking again.
type Stunned struct{}

func (Traveling) Name() string { return "traveling" }
func (Throwing) Name() string  { return "throwing" }
func (Hit) Name() string       { return "hit" }
func (Stunned) Name() string   { return "stunned" }

func (Traveling) isState() {}
func (Throwing) isState()  {}
func (Hit) isState()       {}
func (Stunned) isState()   {}
