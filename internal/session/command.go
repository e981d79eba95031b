package session

// Command is a menu selection.
type Command int

const (
	// CommandExit is selected by any input that is not another command.
	CommandExit Command = iota
	CommandView
	CommandAdd
	CommandComplete
	CommandDelete
)

var commandNames = map[Command]string{
	CommandExit:     "exit",
	CommandView:     "view",
	CommandAdd:      "add",
	CommandComplete: "complete",
	CommandDelete:   "delete",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand maps a trimmed menu line to a Command.
func ParseCommand(input string) Command {
	switch input {
	case "1":
		return CommandView
	case "2":
		return CommandAdd
	case "3":
		return CommandComplete
	case "4":
		return CommandDelete
	default:
		return CommandExit
	}
}

// State is the position of the session in its read-dispatch cycle.
type State int

const (
	StateMenu State = iota
	StateAwaitingTaskFields
	StateAwaitingIndexSelection
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAwaitingTaskFields:
		return "awaiting-task-fields"
	case StateAwaitingIndexSelection:
		return "awaiting-index-selection"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
