package script

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/yarpgp/internal/engine/character"
	"github.com/Faultbox/yarpgp/internal/logger"
)

// DefaultScaleFactor is the number of movement ticks per script distance unit.
const DefaultScaleFactor = 16

var (
	// ErrEmptyProgram is returned when building an interpreter without instructions.
	ErrEmptyProgram = errors.New("empty program")
	// ErrNilActor is returned when building an interpreter without an actor.
	ErrNilActor = errors.New("nil actor")
	// ErrUnknownOpcode halts an interpreter that decodes an opcode outside the instruction set.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrInvalidOperand halts an interpreter that decodes an instruction with a bad operand.
	ErrInvalidOperand = errors.New("invalid operand")
)

// Actor is the entity an interpreter drives. Steer with stopped=false moves
// toward dir; stopped=true zeroes velocity and faces dir.
type Actor interface {
	Steer(dir character.Direction, stopped bool)
}

// Mode is the interpreter run mode.
type Mode uint8

// Run modes.
const (
	ModeIdle Mode = iota
	ModeMoving
	ModeWaiting
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMoving:
		return "moving"
	case ModeWaiting:
		return "waiting"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// State is a snapshot of the interpreter: the instruction pointer, the run
// mode and the progress of the instruction in flight.
type State struct {
	IP   int
	Mode Mode

	// Moving
	Dir    character.Direction
	Target int // Movement ticks to perform
	Moved  int

	// Waiting
	Elapsed time.Duration
	Wait    time.Duration

	// Halted is set after a fatal decode error. The IP stays on the bad instruction.
	Halted bool
	// Finished is set after the last instruction completes without a Repeat.
	// The IP stays on the last instruction.
	Finished bool
}

// Options configures an interpreter.
type Options struct {
	ScaleFactor int         // Defaults to DefaultScaleFactor
	Name        string      // Entity name used in diagnostics
	Logger      *zap.Logger // Defaults to the "script" logger
}

// Interpreter executes a Program one tick at a time on behalf of one actor.
type Interpreter struct {
	program Program
	actor   Actor
	scale   int
	name    string
	log     *zap.Logger

	state State
	err   error
}

// New builds an interpreter positioned at the first instruction.
func New(program Program, actor Actor, opts Options) (*Interpreter, error) {
	if len(program) == 0 {
		return nil, ErrEmptyProgram
	}
	if actor == nil {
		return nil, ErrNilActor
	}

	scale := opts.ScaleFactor
	if scale <= 0 {
		scale = DefaultScaleFactor
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("script")
	}

	prog := make(Program, len(program))
	copy(prog, program)

	return &Interpreter{
		program: prog,
		actor:   actor,
		scale:   scale,
		name:    opts.Name,
		log:     log.With(zap.String("entity", opts.Name)),
	}, nil
}

// Step runs one tick of length dt. It either makes progress on the
// instruction in flight or decodes and begins the next one.
func (in *Interpreter) Step(dt time.Duration) {
	if in.state.Halted || in.state.Finished {
		return
	}

	switch in.state.Mode {
	case ModeMoving:
		in.stepMove()
	case ModeWaiting:
		in.stepWait(dt)
	default:
		in.decode(dt)
	}
}

func (in *Interpreter) decode(dt time.Duration) {
	ins := in.program[in.state.IP]

	switch ins.Op {
	case OpMove:
		if !ins.Dir.Valid() || ins.Distance < 0 {
			in.halt(fmt.Errorf("%w: %s", ErrInvalidOperand, ins))
			return
		}
		in.state.Mode = ModeMoving
		in.state.Dir = ins.Dir
		in.state.Target = ins.Distance * in.scale
		in.state.Moved = 0
		in.stepMove()

	case OpWait:
		if ins.Duration < 0 {
			in.halt(fmt.Errorf("%w: %s", ErrInvalidOperand, ins))
			return
		}
		in.state.Mode = ModeWaiting
		in.state.Wait = ins.Duration
		in.state.Elapsed = 0
		in.stepWait(dt)

	case OpTurn:
		if !ins.Dir.Valid() {
			in.halt(fmt.Errorf("%w: %s", ErrInvalidOperand, ins))
			return
		}
		in.actor.Steer(ins.Dir, true)
		in.advance()

	case OpRepeat:
		in.state.IP = 0

	default:
		in.halt(fmt.Errorf("%w: %s", ErrUnknownOpcode, ins.Op))
	}
}

func (in *Interpreter) stepMove() {
	if in.state.Moved == in.state.Target {
		in.actor.Steer(in.state.Dir, true)
		in.state.Mode = ModeIdle
		in.advance()
		return
	}
	in.actor.Steer(in.state.Dir, false)
	in.state.Moved++
}

func (in *Interpreter) stepWait(dt time.Duration) {
	in.state.Elapsed += dt
	if in.state.Elapsed >= in.state.Wait {
		in.state.Mode = ModeIdle
		in.advance()
	}
}

func (in *Interpreter) advance() {
	if in.state.IP+1 < len(in.program) {
		in.state.IP++
		return
	}
	in.state.Finished = true
	in.log.Debug("program finished", zap.Int("ip", in.state.IP))
}

// halt stops this interpreter permanently; other interpreters are unaffected.
func (in *Interpreter) halt(err error) {
	in.state.Mode = ModeIdle
	in.state.Halted = true
	in.err = err
	in.log.Warn("script halted",
		zap.Int("ip", in.state.IP),
		zap.Error(err),
	)
}

// Reset rewinds to the first instruction and clears the run mode and any
// halt, in a single assignment.
func (in *Interpreter) Reset() {
	in.state, in.err = State{}, nil
}

// State returns a snapshot of the interpreter state.
func (in *Interpreter) State() State {
	return in.state
}

// IP returns the index of the instruction being executed or decoded next.
func (in *Interpreter) IP() int {
	return in.state.IP
}

// Err returns the error that halted the interpreter, or nil.
func (in *Interpreter) Err() error {
	return in.err
}

// Halted reports whether a fatal decode error stopped the interpreter.
func (in *Interpreter) Halted() bool {
	return in.state.Halted
}

// Finished reports whether the program ran off its end.
func (in *Interpreter) Finished() bool {
	return in.state.Finished
}

// Program returns the program being executed.
func (in *Interpreter) Program() Program {
	return in.program
}

// ScaleFactor returns the movement ticks per distance unit.
func (in *Interpreter) ScaleFactor() int {
	return in.scale
}
