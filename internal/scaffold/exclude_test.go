package scaffold

import "testing"

func TestExcluded(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".git", true},
		{".hg", true},
		{"node_modules", true},
		{"__pycache__", true},
		{".pytest_cache", true},
		{".venv", true},
		{"venv", true},
		{".env", true},
		{".DS_Store", true},
		{"dist", true},
		{"build", true},
		{"template.yaml", true},
		{"main.py", false},
		{"app", false},
		{"README.md", false},
		{"environment", false},
		{"distribution", false},
		{".gitignore", false},
	}

	for _, tt := range tests {
		if got := Excluded(tt.name); got != tt.expected {
			t.Errorf("Excluded(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
