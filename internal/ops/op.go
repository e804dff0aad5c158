// Package ops implements the functions of the help package: small
// filesystem helpers plus a stall command, each producing one result
// record. It is consumed by both the CLI and the MCP server.
package ops

import "fmt"

// Op identifies a package operation.
type Op int

const (
	OpCopy Op = iota
	OpList
	OpRead
	OpStall
)

var opNames = map[Op]string{
	OpCopy:  "cp",
	OpList:  "ls",
	OpRead:  "cat",
	OpStall: "stall",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// UnknownOpError reports a command name that is not a package
// operation.
type UnknownOpError struct {
	Name string
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Name)
}

// ParseOp maps a command name to its operation.
func ParseOp(name string) (Op, error) {
	switch name {
	case "cp":
		return OpCopy, nil
	case "ls":
		return OpList, nil
	case "cat":
		return OpRead, nil
	case "stall":
		return OpStall, nil
	default:
		return 0, &UnknownOpError{Name: name}
	}
}
