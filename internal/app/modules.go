package app

import (
	"github.com/vk/flowdefgo/internal/registry"

	"github.com/vk/flowdefgo/modules/task"
	"github.com/vk/flowdefgo/modules/timer"
)

// coreModules are the node-extra modules registered by default. Callers of
// NewApp can pass their own set to replace them (tests do).
var coreModules = []registry.Module{
	&task.Module{},
	&timer.Module{},
}
