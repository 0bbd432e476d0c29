package cli

const (
	MsgRootShort = "Link shared code into every sketch directory"
	MsgRootLong  = `sketchlink scans the immediate subdirectories of a project root for
sketch marker files (*.pde by default). Every directory holding a marker
gets a symlink to each shared resource kept at the root (code/ and
Pantograph.java by default).

Entries that already exist are never touched, so running sketchlink again
is always safe. The root defaults to the current directory; use --root or
SKETCHLINK_ROOT to point elsewhere.`

	MsgVersionShort   = "Print version information"
	MsgGenConfigShort = "Print the effective configuration as TOML"
	MsgGenConfigLong  = `Print the configuration sketchlink would use for the current root,
after merging defaults, the root config file, SKETCHLINK_* variables and
flags. With --write the result is saved as .sketchlink.toml in the root.`

	MsgConfigWritten = "Wrote %s\n"
	MsgConfigExists  = "%s already exists, not overwriting\n"
)
