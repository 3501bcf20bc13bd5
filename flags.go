package argyle

// Parse options for New and FromSource. Flags only ever accumulate; nothing
// clears one once set.
const (
	// FlagRequired fails construction with ErrEmpty if the parsed set ends
	// up empty.
	FlagRequired uint8 = 1 << iota

	// FlagSubcommand treats the first value as a subcommand rather than a
	// trailing argument. This covers the edge case where a command line has
	// zero dash-prefixed keys.
	FlagSubcommand

	// FlagDynamicHelp makes construction return a WantsDynamicHelp signal
	// when help args are present, carrying the inferred subcommand (if any)
	// so the caller can render scoped output.
	FlagDynamicHelp

	// FlagHelp makes construction return ErrWantsHelp when help args are
	// present.
	FlagHelp

	// FlagVersion makes construction return ErrWantsVersion when version
	// args are present.
	FlagVersion

	// FlagSeparator re-glues everything after an end-of-options "--" into a
	// single shell-escaped trailing entry instead of discarding it.
	FlagSeparator

	// flagHasHelp is derived during parsing when "-h" or "--help" is seen.
	flagHasHelp

	// flagHasVersion is derived during parsing when "-V" or "--version" is
	// seen.
	flagHasVersion
)

const (
	flagAnyHelp   = FlagHelp | FlagDynamicHelp
	flagDoVersion = FlagVersion | flagHasVersion
)
