package tourcheck

import "fmt"

func sprintLen(got, want int) string {
	return fmt.Sprintf("got length %d, want %d", got, want)
}

func sprintOutOfRange(v, n int) string {
	return fmt.Sprintf("vertex id %d out of range [0,%d)", v, n)
}

func sprintVertex(v int) string {
	return fmt.Sprintf("vertex id %d", v)
}

func sprintStep(i, a, b int) string {
	return fmt.Sprintf("step %d: %d -> %d", i, a, b)
}
