package carve

// Identity names one installation of the splitting tool.
// The engine is written once and parameterized by an Identity;
// each command-line alias supplies its own
// so that the aliases never see each other's sessions.
type Identity struct {
	// Name is the name of the binary, e.g. "git-carve".
	Name string

	// Git is the command as invoked through Git, e.g. "git carve".
	Git string

	// StateDir is the name of the directory
	// under the repository's .git directory
	// that holds the session record.
	StateDir string

	// ShadowPrefix is the namespace for shadow branch names.
	ShadowPrefix string

	// ConfigSection is the git config section consulted for defaults.
	ConfigSection string
}

// ShadowBranch reports the name of the shadow branch
// used to split the given branch.
func (id Identity) ShadowBranch(branch string) string {
	return id.ShadowPrefix + "/" + branch
}

var (
	// GitCarve is the identity of the git-carve command.
	GitCarve = Identity{
		Name:          "git-carve",
		Git:           "git carve",
		StateDir:      "carve",
		ShadowPrefix:  "carve",
		ConfigSection: "carve",
	}

	// GitChip is the identity of the git-chip command,
	// kept as an alias for installations that still invoke
	// the tool under its old name.
	GitChip = Identity{
		Name:          "git-chip",
		Git:           "git chip",
		StateDir:      "chip",
		ShadowPrefix:  "chip",
		ConfigSection: "chip",
	}
)
