package export

import (
	"github.com/c360studio/semowl/rdfmap"
)

// Profile determines which axioms an export includes.
type Profile string

const (
	// ProfileAsserted includes only the ontology's own axioms.
	ProfileAsserted Profile = "asserted"

	// ProfileImports adds axioms merged in from imported ontologies.
	ProfileImports Profile = "imports"

	// ProfileFull also includes inferred axioms.
	ProfileFull Profile = "full"
)

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// IncludeImported includes axioms and rules marked as imported.
	IncludeImported bool

	// IncludeInferred includes axioms and rules marked as inferred.
	IncludeInferred bool
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileAsserted: {
		Name:        ProfileAsserted,
		Description: "Asserted axioms only",
	},
	ProfileImports: {
		Name:            ProfileImports,
		Description:     "Asserted and imported axioms",
		IncludeImported: true,
	},
	ProfileFull: {
		Name:            ProfileFull,
		Description:     "Asserted, imported and inferred axioms",
		IncludeImported: true,
		IncludeInferred: true,
	},
}

// GetProfileConfig returns the configuration for a profile.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileAsserted]
}

// EncodeOptions returns the rdfmap options that apply the profile.
func (p ProfileConfig) EncodeOptions() []rdfmap.EncodeOption {
	return []rdfmap.EncodeOption{
		rdfmap.WithImported(p.IncludeImported),
		rdfmap.WithInferred(p.IncludeInferred),
	}
}

// EncodeOptions returns the rdfmap options for the named profile.
func (p Profile) EncodeOptions() []rdfmap.EncodeOption {
	return GetProfileConfig(p).EncodeOptions()
}
