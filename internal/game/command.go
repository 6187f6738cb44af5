package game

// CommandKind enumerates input commands.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdFire
	CmdReset
	CmdSteer
	CmdReseed
)

// Command is an input event waiting to be applied at the next tick.
type Command struct {
	Kind CommandKind
	Dir  Direction
	X    float64
	Seed int64
}

// Move returns a move command.
func Move(d Direction) Command { return Command{Kind: CmdMove, Dir: d} }

// Fire returns a fire command.
func Fire() Command { return Command{Kind: CmdFire} }

// Reset returns a reset command.
func Reset() Command { return Command{Kind: CmdReset} }

// Steer returns a pointer steering command toward x.
func Steer(x float64) Command { return Command{Kind: CmdSteer, X: x} }

// Reseed returns a reset command that also swaps the random stream.
func Reseed(seed int64) Command { return Command{Kind: CmdReseed, Seed: seed} }

// Enqueue queues cmd for the next Tick. It is safe for concurrent use.
func (s *Session) Enqueue(cmd Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// Apply runs cmd immediately. Unknown kinds are ignored.
func (s *Session) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdMove:
		s.OnMove(cmd.Dir)
	case CmdFire:
		s.OnFire()
	case CmdReset:
		s.OnReset()
	case CmdSteer:
		s.OnSteer(cmd.X)
	case CmdReseed:
		s.Reseed(cmd.Seed)
	}
}

func (s *Session) drain() {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, cmd := range cmds {
		s.Apply(cmd)
	}
}
