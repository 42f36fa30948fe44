package command

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
)

// Command errors. They are fatal to the single command invocation only,
// never to the engine.
var (
	// ErrUnknownCommand is returned for an unrecognized command word
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument is returned when a command lacks its argument
	ErrMissingArgument = errors.New("missing argument")
)

// Dispatcher routes command invocations to the overlay service
type Dispatcher struct {
	svc *overlay.Service
	log zerolog.Logger
}

// NewDispatcher creates a dispatcher bound to the given overlay service
func NewDispatcher(svc *overlay.Service, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{svc: svc, log: log}
}

// Dispatch executes one command given as argument words, e.g.
// ["timestep", "0.002"] or ["header", "production", "run"].
func (d *Dispatcher) Dispatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: empty invocation", ErrUnknownCommand)
	}

	switch args[0] {
	case "progress":
		return d.progress(args[1:])
	case "timestep":
		return d.timestep(args[1:])
	case "header":
		return d.header(args[1:])
	case "unit":
		return d.unit(args[1:])
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

func (d *Dispatcher) progress(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: progress requires on or off", ErrMissingArgument)
	}
	switch args[0] {
	case "on":
		d.svc.Toggle(true)
	case "off":
		d.svc.Toggle(false)
	default:
		return fmt.Errorf("%w: progress %q (want on or off)", ErrUnknownCommand, args[0])
	}
	return nil
}

func (d *Dispatcher) timestep(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: timestep requires a value", ErrMissingArgument)
	}

	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		// Local recovery: keep the previous value, warn, succeed.
		d.log.Warn().Str("input", args[0]).Msg("ignoring non-numeric timestep")
		return nil
	}

	// Non-positive values are accepted into state; they surface as an
	// unrenderable-state error on the next redraw attempt.
	d.svc.SetTimestep(v)
	return nil
}

func (d *Dispatcher) header(args []string) error {
	d.svc.SetHeader(strings.Join(args, " "))
	return nil
}

func (d *Dispatcher) unit(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: unit requires fs, ps or ns", ErrMissingArgument)
	}
	u := model.TimeUnit(args[0])
	if !u.IsValid() {
		return fmt.Errorf("%w: unit %q (want fs, ps or ns)", ErrUnknownCommand, args[0])
	}
	d.svc.SetUnit(u)
	return nil
}
