// Package commands registers the builtin console command set. Handlers
// report results and usage errors through the console output sink only.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"voidrunner/pkg/engine/console"
	"voidrunner/pkg/engine/cvar"
	"voidrunner/pkg/game/config"
)

// Deps are the collaborators the builtin handlers close over. Handlers
// receive capabilities at registration time and never reach into global
// state.
type Deps struct {
	Cmds       *console.CmdRegistry
	Cvars      *cvar.Registry
	Out        console.Printer
	Log        *console.Log // for the clear command; may be nil
	ConfigPath string
	Version    string
}

func (d *Deps) println(line string) {
	if d.Out != nil {
		d.Out.Println(line)
	}
}

func (d *Deps) printf(format string, args ...any) {
	d.println(fmt.Sprintf(format, args...))
}

// RegisterAll installs every builtin command. A duplicate name is a
// programmer error; all failures are joined and returned so the caller
// can decide whether to abort startup.
func RegisterAll(d *Deps) error {
	builtins := map[string]console.Handler{
		"echo":        d.cmdEcho,
		"set":         d.cmdSet,
		"get":         d.cmdGet,
		"toggle":      d.cmdToggle,
		"reset":       d.cmdReset,
		"cvarlist":    d.cmdCvarList,
		"cmdlist":     d.cmdCmdList,
		"clear":       d.cmdClear,
		"help":        d.cmdHelp,
		"writeconfig": d.cmdWriteConfig,
		"version":     d.cmdVersion,
	}

	var errs []error
	for name, h := range builtins {
		if err := d.Cmds.Register(name, h); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Deps) cmdEcho(args []string) {
	d.println(strings.Join(args, " "))
}

func (d *Deps) cmdSet(args []string) {
	if len(args) < 2 {
		d.println("Usage: set <cvar> <value>")
		return
	}
	name := args[0]
	value := strings.Join(args[1:], " ")
	if err := d.Cvars.Set(name, value); err != nil {
		d.println(err.Error())
		return
	}
	d.printf("%s = %q", name, value)
}

func (d *Deps) cmdGet(args []string) {
	if len(args) < 1 {
		d.println("Usage: get <cvar>")
		return
	}
	value, err := d.Cvars.Value(args[0])
	if err != nil {
		d.println(err.Error())
		return
	}
	d.printf("%s = %q", args[0], value)
}

// cmdToggle flips a numeric cvar between 0 and 1. Any non-zero value
// toggles to 0.
func (d *Deps) cmdToggle(args []string) {
	if len(args) < 1 {
		d.println("Usage: toggle <cvar>")
		return
	}
	name := args[0]
	on, err := d.Cvars.Bool(name)
	if err != nil {
		d.println(err.Error())
		return
	}
	next := "1"
	if on {
		next = "0"
	}
	if err := d.Cvars.Set(name, next); err != nil {
		d.println(err.Error())
		return
	}
	d.printf("%s = %q", name, next)
}

func (d *Deps) cmdReset(args []string) {
	if len(args) < 1 {
		d.println("Usage: reset <cvar>")
		return
	}
	name := args[0]
	if err := d.Cvars.Reset(name); err != nil {
		d.println(err.Error())
		return
	}
	value, _ := d.Cvars.Value(name)
	d.printf("%s = %q", name, value)
}

func (d *Deps) cmdCvarList(args []string) {
	vars := d.Cvars.List()
	d.printf("Cvars (%d):", len(vars))
	for _, v := range vars {
		flags := ""
		if v.Archive {
			flags += "A"
		}
		if v.Info {
			flags += "I"
		}
		d.printf("  %-2s %s = %q", flags, v.Name, v.Value)
	}
}

func (d *Deps) cmdCmdList(args []string) {
	names := d.Cmds.Names()
	d.printf("Commands (%d):", len(names))
	for _, name := range names {
		d.printf("  %s", name)
	}
}

func (d *Deps) cmdClear(args []string) {
	if d.Log != nil {
		d.Log.Clear()
	}
}

func (d *Deps) cmdHelp(args []string) {
	d.println("Commands:")
	d.println("  set <cvar> <value>  - Set a configuration variable")
	d.println("  get <cvar>          - Get a configuration variable")
	d.println("  toggle <cvar>       - Flip a variable between 0 and 1")
	d.println("  reset <cvar>        - Restore a variable's default")
	d.println("  cvarlist            - List all cvars")
	d.println("  cmdlist             - List all commands")
	d.println("  echo <text>         - Print text to the console")
	d.println("  writeconfig [path]  - Save archived cvars now")
	d.println("  clear               - Clear console output")
	d.println("  version             - Show the client version")
	d.println("  help                - Show this help")
}

func (d *Deps) cmdWriteConfig(args []string) {
	path := d.ConfigPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.DefaultPath
	}
	if err := config.Write(path, d.Cvars); err != nil {
		d.printf("writeconfig failed: %v", err)
		return
	}
	d.printf("Wrote %s", path)
}

func (d *Deps) cmdVersion(args []string) {
	d.printf("version %s", d.Version)
}
