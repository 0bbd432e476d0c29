// Package config loads sketchlink's configuration.
//
// Layers are merged with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the root config file, .sketchlink.toml or sketchlink.toml in the
//     project root, or the file named by --config
//  3. SKETCHLINK_* environment variables (SKETCHLINK_LINK_RELATIVE=true
//     sets link.relative)
//  4. command line overrides
package config
