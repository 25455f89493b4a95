package wheel

import (
	"fmt"
	"strconv"
	"strings"

	"prize_wheel/internal/model"
	servModel "prize_wheel/internal/service/wheel/model"
)

// Validate проверяет конфигурацию призов.
// Ошибки не возвращаются: невалидное состояние описывается в model.Validation
func Validate(prizes []model.Prize) model.Validation {
	total := 0
	var invalid []int
	for i, p := range prizes {
		total += p.Probability
		if p.Probability < servModel.MinProbability || p.Probability > servModel.MaxProbability {
			invalid = append(invalid, i)
		}
	}

	valid := total == servModel.TotalProbability && len(invalid) == 0

	message := servModel.ValidMessage
	switch {
	case len(invalid) > 0:
		message = fmt.Sprintf(servModel.OutOfRangeMessageFormat, prizeNumbers(invalid))
	case !valid:
		message = fmt.Sprintf(servModel.InvalidMessageFormat, total)
	}

	return model.Validation{
		Total:   total,
		Valid:   valid,
		Message: message,
		Invalid: invalid,
	}
}

// prizeNumbers индексы в виде "1, 3" для сообщения пользователю
func prizeNumbers(indexes []int) string {
	numbers := make([]string, len(indexes))
	for i, idx := range indexes {
		numbers[i] = strconv.Itoa(idx + 1)
	}
	return strings.Join(numbers, ", ")
}

// DefaultPrizes равные вероятности floor(100/n), остаток уходит последнему призу
func DefaultPrizes(count int) []model.Prize {
	if count <= 0 {
		return nil
	}

	defaultProb := servModel.TotalProbability / count
	remainder := servModel.TotalProbability - defaultProb*count

	prizes := make([]model.Prize, count)
	for i := range prizes {
		prizes[i] = model.Prize{
			Name:        fmt.Sprintf(servModel.DefaultNameFormat, i+1),
			Probability: defaultProb,
		}
	}
	prizes[count-1].Probability += remainder
	return prizes
}
