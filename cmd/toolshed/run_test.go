// SPDX-License-Identifier: MPL-2.0

package cmd

import "testing"

func TestParseArgFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "empty",
			flags: nil,
			want:  nil,
		},
		{
			name:  "single pair",
			flags: []string{"target=dist"},
			want:  map[string]any{"target": "dist"},
		},
		{
			name:  "multiple pairs",
			flags: []string{"target=dist", "mode=fast"},
			want:  map[string]any{"target": "dist", "mode": "fast"},
		},
		{
			name:  "value containing equals",
			flags: []string{"expr=a=b"},
			want:  map[string]any{"expr": "a=b"},
		},
		{
			name:  "empty value",
			flags: []string{"target="},
			want:  map[string]any{"target": ""},
		},
		{
			name:    "missing equals",
			flags:   []string{"target"},
			wantErr: true,
		},
		{
			name:    "empty key",
			flags:   []string{"=dist"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgFlags(tt.flags)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("got[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}
