package wheel

import (
	"prize_wheel/internal/model"
	servModel "prize_wheel/internal/service/wheel/model"
)

// BuildSectors раскладка секторов для отрисовки; цвета повторяются по кругу
func BuildSectors(prizes []model.Prize, colors []string) []model.Sector {
	n := len(prizes)
	if n == 0 {
		return []model.Sector{}
	}

	width := SectorAngle(n)
	sectors := make([]model.Sector, n)
	for i, p := range prizes {
		center := SectorCenter(i, n)
		var color string
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		sectors[i] = model.Sector{
			Index:       i,
			Name:        p.Name,
			Color:       color,
			StartAngle:  center - width/2,
			EndAngle:    center + width/2,
			CenterAngle: center,
			SmallLabel:  n > servModel.SmallLabelThreshold,
		}
	}
	return sectors
}
