// Package scaffold materializes the bundled template tree into a destination
// directory. The destination is validated once before any write; the template
// root is then walked depth-first, pruning excluded entries and reproducing
// everything else with identical relative structure, byte content, and
// permission bits.
package scaffold
