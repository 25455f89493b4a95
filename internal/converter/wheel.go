package converter

import (
	"fmt"

	dto "prize_wheel/internal/api/dto/wheel"
	"prize_wheel/internal/model"
)

func ToPrizes(req []dto.Prize) []model.Prize {
	result := make([]model.Prize, len(req))
	for i, p := range req {
		result[i] = model.Prize{
			Name:        p.Name,
			Probability: int(p.Probability),
		}
	}
	return result
}

func ToStateResponse(snap model.Snapshot) dto.StateResponse {
	response := dto.StateResponse{
		Step:        snap.Step.String(),
		Prizes:      toPrizesResponse(snap.Prizes),
		Validation:  toValidationResponse(snap.Validation),
		DrawEnabled: snap.DrawEnabled,
		DrawLabel:   snap.DrawLabel,
		Display:     snap.Display,
		Wheel: dto.WheelStateResponse{
			CurrentRotation: snap.Wheel.CurrentRotation,
			IsSpinning:      snap.Wheel.IsSpinning,
		},
	}
	if snap.Pending != nil {
		spin := ToSpinResponse(*snap.Pending)
		response.Pending = &spin
	}
	if snap.LastResult != nil {
		result := ToResultResponse(*snap.LastResult)
		response.LastResult = &result
	}
	return response
}

func ToSpinResponse(spin model.Spin) dto.SpinResponse {
	return dto.SpinResponse{
		ID:          spin.ID,
		WinnerIndex: spin.WinnerIndex,
		TargetAngle: spin.TargetAngle,
		DurationMs:  spin.Duration.Milliseconds(),
		Easing:      spin.Easing,
		Transition:  fmt.Sprintf("transform %gs %s", spin.Duration.Seconds(), spin.Easing),
	}
}

func ToResultResponse(result model.Result) dto.ResultResponse {
	return dto.ResultResponse{
		SpinID:      result.SpinID,
		WinnerIndex: result.WinnerIndex,
		PrizeName:   result.PrizeName,
		Message:     result.Message,
	}
}

func ToSectorsResponse(sectors []model.Sector) []dto.SectorResponse {
	result := make([]dto.SectorResponse, len(sectors))
	for i, s := range sectors {
		result[i] = dto.SectorResponse{
			Index:       s.Index,
			Name:        s.Name,
			Color:       s.Color,
			StartAngle:  s.StartAngle,
			EndAngle:    s.EndAngle,
			CenterAngle: s.CenterAngle,
			SmallLabel:  s.SmallLabel,
		}
	}
	return result
}

func ToStatsResponse(stats model.DrawStats) dto.StatsResponse {
	prizes := make([]dto.PrizeStatResponse, len(stats.Prizes))
	for i, p := range stats.Prizes {
		prizes[i] = dto.PrizeStatResponse{
			Index:           p.Index,
			Name:            p.Name,
			Configured:      p.Configured,
			Hits:            p.Hits,
			Frequency:       p.Frequency,
			WindowFrequency: p.WindowFrequency,
		}
	}
	deviations := make([]dto.DeviationResponse, len(stats.Deviations))
	for i, d := range stats.Deviations {
		deviations[i] = dto.DeviationResponse{
			Draw:            d.Draw,
			Index:           d.Index,
			Configured:      d.Configured,
			WindowFrequency: d.WindowFrequency,
		}
	}
	return dto.StatsResponse{
		TotalDraws: stats.TotalDraws,
		WindowSize: stats.WindowSize,
		Prizes:     prizes,
		Deviations: deviations,
	}
}

func toPrizesResponse(prizes []model.Prize) []dto.Prize {
	result := make([]dto.Prize, len(prizes))
	for i, p := range prizes {
		result[i] = dto.Prize{
			Name:        p.Name,
			Probability: dto.Percent(p.Probability),
		}
	}
	return result
}

func toValidationResponse(v model.Validation) dto.ValidationResponse {
	return dto.ValidationResponse{
		Total:   v.Total,
		Valid:   v.Valid,
		Message: v.Message,
		Invalid: v.Invalid,
	}
}
