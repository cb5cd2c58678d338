// Package host owns the console subsystem for the lifetime of the
// process: it builds the registries and the console at startup, loads
// persisted settings, and writes them back at shutdown. Other
// subsystems receive narrow capabilities, never the host itself.
package host

import (
	"log"

	"voidrunner/pkg/engine/console"
	"voidrunner/pkg/engine/cvar"
	"voidrunner/pkg/game/commands"
	"voidrunner/pkg/game/config"
	"voidrunner/pkg/game/netinfo"
)

// Version is the client version reported by the version command and
// the version cvar. Overridden at build time via -ldflags.
var Version = "0.1.0"

// scrollback is the number of console output lines kept for display.
const scrollback = 50

// Host is the single owner of the console, the registries and the
// network-info tracker, created at startup and destroyed at shutdown.
type Host struct {
	Cmds    *console.CmdRegistry
	Cvars   *cvar.Registry
	Log     *console.Log
	Console *console.Console
	Info    *netinfo.Tracker

	configPath string
}

// New wires the whole control plane: default cvars, builtin commands,
// the info tracker, and previously persisted settings. Registration
// failures are programmer errors; they are logged and startup
// continues with whatever registered cleanly.
func New(configPath string) *Host {
	h := &Host{
		Cmds:       console.NewCmdRegistry(),
		Cvars:      cvar.New(),
		Log:        console.NewLog(scrollback),
		configPath: configPath,
	}

	h.registerDefaultCvars()

	deps := &commands.Deps{
		Cmds:       h.Cmds,
		Cvars:      h.Cvars,
		Out:        h.Log,
		Log:        h.Log,
		ConfigPath: configPath,
		Version:    Version,
	}
	if err := commands.RegisterAll(deps); err != nil {
		log.Printf("builtin command registration: %v", err)
	}

	h.Console = console.New(h.Cmds, h.Cvars, h.Log)
	h.Info = netinfo.NewTracker(h.Cvars)

	// Registration happened above, so persisted values apply cleanly;
	// stale names are reported, not fatal.
	if err := config.Load(configPath, h.Cvars); err != nil {
		log.Printf("loading %s: %v", configPath, err)
	}

	return h
}

// registerDefaultCvars installs the client's baseline variable set,
// exercising all four registration variants.
func (h *Host) registerDefaultCvars() {
	regs := []struct {
		fn   func(name, def string) error
		name string
		def  string
	}{
		{h.Cvars.RegisterArchive, "fov", "90"},
		{h.Cvars.RegisterArchive, "sensitivity", "3"},
		{h.Cvars.RegisterArchive, "con_notifytime", "3"},
		{h.Cvars.RegisterArchiveUpdateInfo, "cl_name", "player"},
		{h.Cvars.RegisterArchiveUpdateInfo, "cl_color", "0"},
		{h.Cvars.RegisterUpdateInfo, "rate", "2500"},
		{h.Cvars.Register, "cl_showfps", "0"},
		{h.Cvars.Register, "developer", "0"},
		{h.Cvars.Register, "version", Version},
	}
	for _, r := range regs {
		if err := r.fn(r.name, r.def); err != nil {
			log.Printf("default cvar %s: %v", r.name, err)
		}
	}
}

// Shutdown persists the archive-flagged variables. Safe to call once,
// at process exit.
func (h *Host) Shutdown() {
	if err := config.Write(h.configPath, h.Cvars); err != nil {
		log.Printf("writing %s: %v", h.configPath, err)
	}
}
