//go:build windows

package windows

import (
	"log/slog"
	"unsafe"

	"github.com/Norgate-AV/kta/internal/logger"
)

type RealInputInjector struct {
	log logger.LoggerInterface
}

func NewRealInputInjector(log logger.LoggerInterface) *RealInputInjector {
	return &RealInputInjector{log: log}
}

// SendInput submits the events as one batch and returns how many were accepted
func (i *RealInputInjector) SendInput(events []KeyEvent) uint32 {
	if len(events) == 0 {
		return 0
	}

	inputs := toInputs(events)

	ret, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)

	if int(ret) != len(inputs) {
		i.log.Debug("SendInput partially rejected",
			slog.Int("sent", len(inputs)),
			slog.Uint64("accepted", uint64(ret)),
			slog.Any("error", err))
	}

	return uint32(ret)
}
