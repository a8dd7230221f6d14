// Package config manages user-level settings stored at ~/.stamp/config.yaml.
// The only key the tool itself consults is template_root, which points the
// template locator at an alternate template directory.
package config
