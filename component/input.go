package component

// Input stores the key state sampled for one frame.
type Input struct {
	Fire  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool
}
