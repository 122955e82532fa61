package nominal

import (
	"embed"
)

// topicsFS holds the markdown help topics shown by "nominal help <topic>"
//
//go:embed topics/*.md
var topicsFS embed.FS
