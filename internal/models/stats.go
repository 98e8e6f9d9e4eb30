package models

type Stats struct {
	UserID     int64 `db:"user_id"`
	Correct    int   `db:"correct_count"`
	Wrong      int   `db:"wrong_count"`
	Streak     int   `db:"streak"`
	BestStreak int   `db:"best_streak"`
}

// Apply returns the counters after one answer. A wrong answer resets the streak,
// a correct one extends it and raises BestStreak once the streak passes it.
func (s Stats) Apply(correct bool) Stats {
	if !correct {
		s.Wrong++
		s.Streak = 0
		return s
	}

	s.Correct++
	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
	return s
}

// StatsReport is the statistics view shared by the stats and answer endpoints.
// TotalWords is always counted from the words table, never stored.
type StatsReport struct {
	Correct    int `json:"correct"`
	Wrong      int `json:"wrong"`
	Streak     int `json:"streak"`
	BestStreak int `json:"bestStreak"`
	TotalWords int `json:"totalWords"`
}

func NewStatsReport(s Stats, totalWords int) StatsReport {
	return StatsReport{
		Correct:    s.Correct,
		Wrong:      s.Wrong,
		Streak:     s.Streak,
		BestStreak: s.BestStreak,
		TotalWords: totalWords,
	}
}
