package texasholdem

// Options configures a single-player game of Texas Hold'em
type Options struct {
	// Blind is the big blind; the small blind is half of it, rounded down
	// with a floor of 1
	Blind int

	// PlayerBankroll is the human player's starting stack
	PlayerBankroll int

	// CPUBankroll is each CPU player's starting stack
	CPUBankroll int

	// CPUCount is the number of CPU opponents (1-7)
	CPUCount int

	// seed lets tests shuffle deterministically
	seed int64
}

// DefaultOptions returns the default options for a single-player game
func DefaultOptions() Options {
	return Options{
		Blind:          10,
		PlayerBankroll: 100,
		CPUBankroll:    100,
		CPUCount:       4,
	}
}

func validateOptions(opts Options) error {
	if opts.Blind <= 0 {
		return newError("blind must be > 0")
	}

	if opts.PlayerBankroll <= 0 || opts.CPUBankroll <= 0 {
		return newError("bankrolls must be > 0")
	}

	if opts.CPUCount < 1 || opts.CPUCount > 7 {
		return newError("cpu players must be between 1 and 7")
	}

	return nil
}
