//go:build windows

package windows

import (
	"log/slog"

	"github.com/Norgate-AV/kta/internal/logger"
)

type RealPowerManager struct {
	log logger.LoggerInterface
}

func NewRealPowerManager(log logger.LoggerInterface) *RealPowerManager {
	return &RealPowerManager{log: log}
}

// SetExecutionState applies the flags to the calling thread and returns the
// previous state, or 0 on failure
func (p *RealPowerManager) SetExecutionState(flags uint32) uint32 {
	ret, _, _ := procSetThreadExecutionState.Call(uintptr(flags))
	p.log.Debug("SetThreadExecutionState",
		slog.String("flags", formatFlags(flags)),
		slog.Uint64("previous", uint64(ret)))

	return uint32(ret)
}
