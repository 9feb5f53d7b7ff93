package game

// UpdateHighScore returns the new high score after a run ending with score,
// and whether the run beat the old one. Ties do not count.
func UpdateHighScore(high, score int) (int, bool) {
	if score > high {
		return score, true
	}
	return high, false
}
