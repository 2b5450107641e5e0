package view

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/soocke/overlay-go/ui/model"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// RenderStats shows render pass counters.
type RenderStats interface {
	Set(v model.RenderValues)
}

type renderStats struct {
	overlaysLbl *LabelWidget
	passesLbl   *LabelWidget
	rateLbl     *LabelWidget
}

// NewRenderStats creates three labels at (row, startCol..startCol+2).
func NewRenderStats(row, startCol int) RenderStats {
	s := &renderStats{
		overlaysLbl: Label(Width(12)),
		passesLbl:   Label(Width(16)),
		rateLbl:     Label(Width(18)),
	}
	for i, l := range []*LabelWidget{s.overlaysLbl, s.passesLbl, s.rateLbl} {
		Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
	}
	s.Set(model.RenderValues{})
	return s
}

func (s *renderStats) Set(v model.RenderValues) {
	if s == nil || s.overlaysLbl == nil {
		return
	}
	s.overlaysLbl.Configure(Txt(fmt.Sprintf("Overlays: %d", v.Overlays)))
	s.passesLbl.Configure(Txt("Passes: " + humanize.Comma(int64(v.Passes))))
	s.rateLbl.Configure(Txt(fmt.Sprintf("%.0f fps / %.1f ms", v.FPS, float64(v.LastDuration.Microseconds())/1000)))
}
