package rewrite

// Size compares the byte length of a text before and after a transform
type Size struct {
	Original int
	New      int
}

// Measure returns the Size of a transform from original to updated
func Measure(original, updated string) Size {
	return Size{Original: len(original), New: len(updated)}
}

// Reduction is Original - New; negative when the transform grew the text
func (s Size) Reduction() int {
	return s.Original - s.New
}

// Percent is the reduction as a percentage of Original, 0 for empty input
func (s Size) Percent() float64 {
	if s.Original == 0 {
		return 0
	}
	return float64(s.Reduction()) / float64(s.Original) * 100
}
