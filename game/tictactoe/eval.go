package tictactoe

// lineWeights rewards a line by the number of marks one player has in it,
// provided the other player has none.
var lineWeights = [4]float64{0, 1, 3, 9}

// Estimate compares the open lines of the player who just moved with those of
// the player to move and returns a score between -1 and 1 from the former's
// perspective.
func Estimate(b Board) float64 {
	mover := b.ToMove.Opponent()
	var mine, theirs float64
	for _, line := range lines {
		own, opp := 0, 0
		for _, i := range line {
			switch b.Cells[i] {
			case mover:
				own++
			case b.ToMove:
				opp++
			}
		}
		if opp == 0 {
			mine += lineWeights[own]
		}
		if own == 0 {
			theirs += lineWeights[opp]
		}
	}
	return (mine - theirs) / (mine + theirs + 1)
}
