package ui

import (
	"fmt"

	"sparse-life/internal/board"
)

// StatusLines formats the overlay text for a board status. The second line
// is only present while a reload failure is outstanding.
func StatusLines(st board.Status, paused bool) []string {
	line := fmt.Sprintf("gen %d  pop %d", st.Generation, st.Population)
	if st.Source != "" {
		line += "  " + st.Source
	}
	if paused {
		line += "  [paused]"
	}
	lines := []string{line}
	if st.Err != nil {
		lines = append(lines, "error: "+st.Err.Error())
	}
	return lines
}
