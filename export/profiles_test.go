package export_test

import (
	"testing"

	"github.com/c360studio/semowl/export"
)

func TestGetProfileConfig(t *testing.T) {
	tests := []struct {
		profile      export.Profile
		wantImported bool
		wantInferred bool
	}{
		{export.ProfileAsserted, false, false},
		{export.ProfileImports, true, false},
		{export.ProfileFull, true, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.profile), func(t *testing.T) {
			config := export.GetProfileConfig(tc.profile)
			if config.IncludeImported != tc.wantImported {
				t.Errorf("IncludeImported = %v, want %v", config.IncludeImported, tc.wantImported)
			}
			if config.IncludeInferred != tc.wantInferred {
				t.Errorf("IncludeInferred = %v, want %v", config.IncludeInferred, tc.wantInferred)
			}
			if got := len(tc.profile.EncodeOptions()); got != 2 {
				t.Errorf("EncodeOptions returned %d options, want 2", got)
			}
		})
	}
}

func TestGetProfileConfigUnknown(t *testing.T) {
	// Unknown profile should default to asserted
	config := export.GetProfileConfig("unknown")
	if config.Name != export.ProfileAsserted {
		t.Errorf("Unknown profile should default to asserted, got %s", config.Name)
	}
}

func TestFormatRegistry(t *testing.T) {
	for _, format := range []export.Format{
		export.FormatTurtle,
		export.FormatNTriples,
		export.FormatJSONLD,
		export.FormatSemstreams,
	} {
		info, ok := export.GetFormatInfo(format)
		if !ok {
			t.Errorf("format %s not registered", format)
			continue
		}
		if info.Name != format || info.MIMEType == "" || info.Extension == "" {
			t.Errorf("incomplete info for %s: %+v", format, info)
		}
		if got, ok := export.FormatForExtension(info.Extension); !ok || got != format {
			t.Errorf("FormatForExtension(%q) = %s, %v", info.Extension, got, ok)
		}
	}

	if _, ok := export.GetFormatInfo("rdfxml"); ok {
		t.Error("rdfxml should not be registered")
	}
}
