package game

import "math"

// TeamSummary holds the aggregate numbers shown while arranging a team.
type TeamSummary struct {
	Size          int `json:"size"`
	TotalHealth   int `json:"total_health"`
	TotalEnergy   int `json:"total_energy"`
	AverageDamage int `json:"average_damage"`
}

// Summarize computes a TeamSummary. AverageDamage is the mean over members of
// each member's mean ability damage, rounded half up.
func Summarize(team []Character) TeamSummary {
	s := TeamSummary{Size: len(team)}
	if len(team) == 0 {
		return s
	}
	var perChar float64
	for i := range team {
		s.TotalHealth += team[i].MaxHealth
		s.TotalEnergy += team[i].MaxEnergy
		if n := len(team[i].Abilities); n > 0 {
			sum := 0
			for _, a := range team[i].Abilities {
				sum += a.Damage
			}
			perChar += float64(sum) / float64(n)
		}
	}
	s.AverageDamage = int(math.Floor(perChar/float64(len(team)) + 0.5))
	return s
}
