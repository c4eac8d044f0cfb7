package dashboard

// Mastered counts cards in the mastered state.
func Mastered(cards []map[string]any) int {
	n := 0
	for _, c := range cards {
		if text(c["state"]) == "mastered" {
			n++
		}
	}
	return n
}
