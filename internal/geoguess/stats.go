package geoguess

// PlayerStats is derived from the rounds a player took part in.
type PlayerStats struct {
	TimeSpentPlayingSeconds float64 `json:"timeSpentPlayingSeconds"`
	TotalScore              int     `json:"totalScore"`
	RoundsPlayed            int     `json:"roundsPlayed"`
}

// ComputeStats sums durations and scores over rounds. The caller is
// responsible for passing only rounds the player is in.
func ComputeStats(rounds []Round) PlayerStats {
	var st PlayerStats
	for _, r := range rounds {
		st.RoundsPlayed++
		st.TotalScore += r.Score
		st.TimeSpentPlayingSeconds += r.Duration().Seconds()
	}
	return st
}
