package parse

// State walks an argument list one token at a time
type State interface {
	Pos() int             // Get the current position
	Skip()                // Skip the next argument
	Args() []string       // Get the entire argument list
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	Advance() bool        // Advance to the next argument
	Rest() []string       // Arguments after the current position
	Len() int             // Gets the length of the argument list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

func (s *DefaultState) Pos() int {
	return s.pos
}

func (s *DefaultState) Skip() {
	if s.pos < len(s.args) {
		s.pos++
	}
}

func (s *DefaultState) Args() []string {
	return s.args
}

func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}

func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}

	return "", false
}

func (s *DefaultState) Rest() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}

	return s.args[s.pos+1:]
}

func (s *DefaultState) Len() int {
	return len(s.args)
}
