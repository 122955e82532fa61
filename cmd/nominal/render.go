package nominal

import (
	"encoding/json"
	"io"

	"github.com/vivienm/nominal/pkg/rename"
	"github.com/vivienm/nominal/pkg/style"
	"github.com/vivienm/nominal/pkg/ui"
)

// renderPlan writes the plan in the configured output format
func (a *app) renderPlan(w io.Writer, plan *rename.Plan) error {
	switch a.format(w) {
	case ui.FormatJSON:
		renames := plan.Renames()
		if renames == nil {
			renames = []rename.Rename{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(renames)
	case ui.FormatTerminal:
		styler := style.FromEnv(
			style.WithRenderer(style.NewRenderer(w, true)),
			style.WithFS(a.fs),
		)
		_, err := plan.WriteStyledTo(w, styler)
		return err
	default:
		_, err := plan.WriteTo(w)
		return err
	}
}
