package wheel

import (
	"math"

	"prize_wheel/internal/model"
	servModel "prize_wheel/internal/service/wheel/model"
)

// SelectWinner выбор приза по накопленным границам c_i = p_0 + ... + p_i.
// u равномерно в [0, 1), r = floor(u*100); побеждает первый индекс с r < c_i.
// fallback = true, если ни одна граница не подошла и выбран последний приз
func SelectWinner(prizes []model.Prize, u float64) (index int, fallback bool) {
	if len(prizes) == 0 {
		return -1, true
	}

	r := int(math.Floor(u * servModel.TotalProbability))
	cumulative := 0
	for i, p := range prizes {
		cumulative += p.Probability
		if r < cumulative {
			return i, false
		}
	}

	return len(prizes) - 1, true
}
