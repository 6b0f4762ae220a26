package pokemon

import "fmt"

// Generation is a numbered era of the game series
type Generation int

// Generation bounds
const (
	MinGeneration    Generation = 1
	MaxGeneration    Generation = 9
	LatestGeneration            = MaxGeneration
)

// Validate returns an error when the generation is outside 1-9
func (g Generation) Validate() error {
	if g < MinGeneration || g > MaxGeneration {
		return fmt.Errorf("generation %d out of range %d-%d", g, MinGeneration, MaxGeneration)
	}
	return nil
}

// OrLatest returns g, or the latest generation when g is unset
func (g Generation) OrLatest() Generation {
	if g == 0 {
		return LatestGeneration
	}
	return g
}
