package sites

import "fmt"

// CoordSite is implemented by every candidate site shape -- CoordSphere,
// CoordCircle, MultiCoordPoint, DelegatePoint[Single], and
// DelegatePoint[Pair] -- so callers can log or label a candidate without a
// type switch.
type CoordSite interface {
	// SiteType names the shape of this candidate: "sphere", "circle",
	// "point", or "delegate-point".
	SiteType() string
	// ConnectingAtomsMsg describes which existing atoms this site would
	// bond to, e.g. "atom 3" or "atoms 3, 7, 12".
	ConnectingAtomsMsg() string
}

func (s CoordSphere) SiteType() string { return "sphere" }

func (s CoordSphere) ConnectingAtomsMsg() string {
	return fmt.Sprintf("atom %d", s.AtomID)
}

func (c CoordCircle) SiteType() string { return "circle" }

func (c CoordCircle) ConnectingAtomsMsg() string {
	return fmt.Sprintf("atoms %d, %d", c.AtomIDs[0], c.AtomIDs[1])
}

func (p MultiCoordPoint) SiteType() string { return "point" }

func (p MultiCoordPoint) ConnectingAtomsMsg() string {
	return formatAtomIDs(p.AtomIDs)
}

func (d DelegatePoint[T]) SiteType() string { return "delegate-point" }

func (d DelegatePoint[T]) ConnectingAtomsMsg() string {
	switch ids := any(d.AtomIDs).(type) {
	case Single:
		return formatAtomIDs(ids[:])
	case Pair:
		return formatAtomIDs(ids[:])
	default:
		return "no atoms"
	}
}

func formatAtomIDs(ids []int) string {
	if len(ids) == 0 {
		return "no atoms"
	}
	msg := "atom"
	if len(ids) > 1 {
		msg = "atoms"
	}
	for i, id := range ids {
		if i > 0 {
			msg += ","
		}
		msg += fmt.Sprintf(" %d", id)
	}
	return msg
}
