package repair_slot_grids

import (
	"context"
)

type SlotGridService interface {
	RepairAll(ctx context.Context) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
