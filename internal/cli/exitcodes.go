package cli

// Process exit codes returned by opserr. ExitCode picks one for the error a
// command returned.
const (
	ExitSuccess = 0
	// ExitError covers unreadable config files and terminal failures.
	ExitError = 1
	// ExitUsage means an unknown --backend or --mode value.
	ExitUsage = 2
	// ExitValidation means the config parsed but its error_display section
	// was rejected.
	ExitValidation = 5
	// ExitInterrupted means the demo was stopped by a signal, following the
	// shell's 128+SIGINT convention.
	ExitInterrupted = 130
)
