package app

// frameInput records the controls pressed during one frame.
type frameInput struct {
	Quit   bool
	Reset  bool
	Reseed bool
	Step   bool
	Click  bool
}

// shouldAdvance reports whether the frame asks for the next generation. A
// left click anywhere in the window counts, the HUD panel included.
func (in frameInput) shouldAdvance() bool {
	return in.Step || in.Click
}
