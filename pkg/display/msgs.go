package display

// Progress lines, one per marker and one per resource decision
const (
	MsgMarkerFound  = "Found marker file: %s"
	MsgExists       = "  `%s` exists"
	MsgBroken       = "  `%s` is a broken symlink, left in place"
	MsgCreated      = "  Symlink to `%s`"
	MsgReplaced     = "  Replaced broken symlink `%s`"
	MsgWouldCreate  = "  Would symlink `%s`"
	MsgWouldReplace = "  Would replace broken symlink `%s`"

	MsgDryRunNotice = "DRY RUN MODE - No changes were made"
	MsgNoMarkers    = "No marker files found under %s"
)
