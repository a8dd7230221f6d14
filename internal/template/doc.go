// Package template resolves the bundled template root on disk and reads its
// optional template.yaml metadata. Resolution works the same whether the tool
// runs from an installed location or a development checkout, and can be
// overridden via the STAMP_TEMPLATES environment variable or the
// template_root config key for testing.
package template
