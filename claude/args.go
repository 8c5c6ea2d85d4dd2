package claude

// Mode selects which session directive leads the claude command line.
type Mode int

const (
	// ModeCreate starts a new session under a fixed identifier.
	ModeCreate Mode = iota
	// ModeResume resumes a session cs has recorded.
	ModeResume
	// ModeResumeWithPicker asks claude to resume, opening its picker when
	// the identifier is unknown to it.
	ModeResumeWithPicker
)

// LaunchConfig is everything needed to build a claude command line.
type LaunchConfig struct {
	SessionID string
	Mode      Mode
	// ExtraArgs are forwarded after the directive in their original order.
	ExtraArgs []string
}

// BuildCommandArgs builds the claude argument vector for config.
func BuildCommandArgs(config LaunchConfig) []string {
	var args []string
	switch config.Mode {
	case ModeResume:
		args = []string{"-r", config.SessionID}
	case ModeResumeWithPicker:
		args = []string{"--resume", config.SessionID}
	default:
		args = []string{"--session-id", config.SessionID}
	}
	return append(args, config.ExtraArgs...)
}
