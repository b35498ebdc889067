package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Verbose   bool
	BatchFile string

	// Run configuration
	Word     string
	Prefix   string
	Suffix   string
	Number   int
	Exclude  string
	Strategy string
	Seed     int64
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Number:   100,
		Strategy: "randomize-random-letter",
	}
}
