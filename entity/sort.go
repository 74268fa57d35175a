package entity

// Direction of a sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (dir Direction) Flip() Direction {
	if dir == Asc {
		return Desc
	}
	return Asc
}

// Sort is the active sort of a grid; an empty Key means unsorted.
type Sort struct {
	Key       string    `yaml:"key,omitempty"`
	Direction Direction `yaml:"direction,omitempty"`
}

// Active is true when a key has been chosen.
func (srt Sort) Active() bool {
	return srt.Key != ""
}
