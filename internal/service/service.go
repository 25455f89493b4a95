package service

import (
	"prize_wheel/internal/model"
)

// WheelService команды мастера и колеса. Все состояние принадлежит одному контроллеру
type WheelService interface {
	Setup(count int) (model.Snapshot, error)
	SetPrizeName(index int, name string) (model.Snapshot, error)
	SetPrizeProbability(index int, probability int) (model.Snapshot, error)
	Configure(prizes []model.Prize) (model.Snapshot, error)
	Confirm() (model.Snapshot, error)
	Back() model.Snapshot
	Restart() model.Snapshot

	RequestDraw() (model.Spin, bool)
	CompleteSpin(spinID string) (model.Result, bool)

	State() model.Snapshot
	Sectors() []model.Sector
	Stats() model.DrawStats
	Close()
}
