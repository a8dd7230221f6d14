// Package platform provides cross-platform filesystem operations. On Unix
// systems chmod applies directly; on Windows permission bits are silently
// ignored because the filesystem does not support them.
package platform
