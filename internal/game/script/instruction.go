// Package script implements the cooperative interpreter that drives
// non-player characters through a fixed movement program across many ticks.
package script

import (
	"fmt"
	"time"

	"github.com/Faultbox/yarpgp/internal/engine/character"
)

// Opcode identifies an instruction. The zero value is not a valid opcode.
type Opcode uint8

// Instruction set.
const (
	OpMove Opcode = iota + 1
	OpWait
	OpTurn
	OpRepeat
)

func (op Opcode) String() string {
	switch op {
	case OpMove:
		return "move"
	case OpWait:
		return "wait"
	case OpTurn:
		return "turn"
	case OpRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Instruction is one program step. Only the operands of its Op are used:
// Move uses Dir and Distance, Wait uses Duration, Turn uses Dir.
type Instruction struct {
	Op       Opcode
	Dir      character.Direction
	Distance int // Script distance units; scaled by the interpreter's ScaleFactor
	Duration time.Duration
}

// Move walks toward dir for the given number of distance units.
func Move(dir character.Direction, units int) Instruction {
	return Instruction{Op: OpMove, Dir: dir, Distance: units}
}

// Wait idles for d.
func Wait(d time.Duration) Instruction {
	return Instruction{Op: OpWait, Duration: d}
}

// Turn faces dir without moving.
func Turn(dir character.Direction) Instruction {
	return Instruction{Op: OpTurn, Dir: dir}
}

// Repeat jumps back to the first instruction.
func Repeat() Instruction {
	return Instruction{Op: OpRepeat}
}

func (i Instruction) String() string {
	switch i.Op {
	case OpMove:
		return fmt.Sprintf("move(%s, %d)", i.Dir, i.Distance)
	case OpWait:
		return fmt.Sprintf("wait(%s)", i.Duration)
	case OpTurn:
		return fmt.Sprintf("turn(%s)", i.Dir)
	case OpRepeat:
		return "repeat"
	default:
		return i.Op.String()
	}
}

// Program is an ordered instruction list. It is copied when an interpreter
// is built and never changes afterwards.
type Program []Instruction
