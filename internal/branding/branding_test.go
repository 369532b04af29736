package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "seblak"},
		{"package name", PackageName(), "seblak-bujangan"},
		{"placeholder", PlaceholderPackageName(), "workspace"},
		{"description", Description(), "Aplikasi Manajemen Keuangan Seblak Bujangan"},
		{"env prefix", EnvPrefix(), "SEBLAK"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("port"); got != "SEBLAK_PORT" {
		t.Errorf("EnvVar(\"port\") = %q, want SEBLAK_PORT", got)
	}
}
