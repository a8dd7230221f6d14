package scaffold

// excludedNames are basenames never copied from the template tree, at any
// depth. A matched directory prunes its whole subtree, so the copier never
// descends into it. template.yaml is the template's own metadata file and is
// likewise kept out of scaffolded output.
var excludedNames = map[string]bool{
	".git":          true,
	".hg":           true,
	".svn":          true,
	"node_modules":  true,
	"__pycache__":   true,
	".pytest_cache": true,
	".mypy_cache":   true,
	".ruff_cache":   true,
	".venv":         true,
	"venv":          true,
	".env":          true,
	".env.local":    true,
	".DS_Store":     true,
	"dist":          true,
	"build":         true,
	".idea":         true,
	".coverage":     true,
	"htmlcov":       true,
	".tox":          true,
	"template.yaml": true,
}

// Excluded reports whether a template entry basename is skipped during copy.
func Excluded(name string) bool {
	return excludedNames[name]
}
