package cmd

import "testing"

func TestRecordsArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "hrid only",
			args: []string{"in00000001234"},
		},
		{
			name: "fully positional",
			args: []string{"https://folio.example.com", "user", "pass", "tenant", "in00000001234"},
		},
		{
			name:    "no arguments",
			args:    []string{},
			wantErr: true,
		},
		{
			name:    "partial connection details",
			args:    []string{"https://folio.example.com", "in00000001234"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := recordsArgs(recordsCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("recordsArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestResolveShowRequests(t *testing.T) {
	tests := []struct {
		name        string
		fullForm    bool
		flagChanged bool
		flagValue   bool
		cfgValue    bool
		want        bool
	}{
		{
			name: "default off for config-driven form",
			want: false,
		},
		{
			name:     "fully-positional form echoes by default",
			fullForm: true,
			want:     true,
		},
		{
			name:        "flag silences the positional form",
			fullForm:    true,
			flagChanged: true,
			flagValue:   false,
			want:        false,
		},
		{
			name:        "flag enables for config-driven form",
			flagChanged: true,
			flagValue:   true,
			want:        true,
		},
		{
			name:     "config enables for config-driven form",
			cfgValue: true,
			want:     true,
		},
		{
			name:        "flag overrides config",
			flagChanged: true,
			flagValue:   false,
			cfgValue:    true,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveShowRequests(tt.fullForm, tt.flagChanged, tt.flagValue, tt.cfgValue)
			if got != tt.want {
				t.Errorf("resolveShowRequests(%v, %v, %v, %v) = %v, want %v",
					tt.fullForm, tt.flagChanged, tt.flagValue, tt.cfgValue, got, tt.want)
			}
		})
	}
}
