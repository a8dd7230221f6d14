package template

import "testing"

func TestCheckMinToolVersion(t *testing.T) {
	tests := []struct {
		name    string
		tool    string
		min     string
		wantErr bool
	}{
		{"no minimum", "0.1.0", "", false},
		{"dev build always passes", "dev", "99.0.0", false},
		{"tool newer", "1.2.0", "1.0.0", false},
		{"tool equal", "1.0.0", "1.0.0", false},
		{"tool older", "0.2.0", "0.3.0", true},
		{"v prefix on tool", "v1.0.0", "0.9.0", false},
		{"v prefix on minimum", "1.0.0", "v1.1.0", true},
		{"garbage minimum", "1.0.0", "latest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMinToolVersion(tt.tool, tt.min)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckMinToolVersion(%q, %q) = %v, wantErr %v", tt.tool, tt.min, err, tt.wantErr)
			}
		})
	}
}
