package engine

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/restyle/style/selector"
)

// Report summarizes a restyle pass.
type Report struct {
	Visited     int  // entities matched during the pass
	FullMatches int  // entities matched against the whole rule set
	CacheHits   int  // entities which re-used the rules of a sibling
	Relayout    bool // did the pass raise the relayout flag?
	Redraws     int  // entities newly enqueued for redraw
	Reflows     int  // entities newly marked for text reflow
}

func (rep Report) String() string {
	return fmt.Sprintf("visited=%d full=%d hits=%d relayout=%v redraws=%d reflows=%d",
		rep.Visited, rep.FullMatches, rep.CacheHits, rep.Relayout, rep.Redraws, rep.Reflows)
}

func specKey(s cascadia.Specificity) uint32 {
	return selector.SpecificityKey(s)
}
