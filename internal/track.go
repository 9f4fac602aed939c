package internal

// Distance returns the number of tracks the head crosses moving from one track to another.
func Distance(from, to int) int {
	if from > to {
		return from - to
	}
	return to - from
}
