package sites

// CoordResultKind tags the outcome of classifying a candidate site
// against its neighborhood: a plain geometric locus (Sphere/Circle), a
// concrete candidate point or point list, an Empty dead end, or an
// Invalid signal that the caller should discard the whole candidate --
// never a boolean, so every branch names exactly what it means.
type CoordResultKind int

const (
	ResultInvalid CoordResultKind = iota
	ResultEmpty
	ResultSphere
	ResultCircle
	ResultSinglePoint
	ResultPoints
)

// CoordResult is the tagged result threaded through Stage 2 of the
// search driver. Only the field(s) matching Kind are meaningful.
type CoordResult struct {
	Kind        CoordResultKind
	Sphere      CoordSphere
	Circle      CoordCircle
	SinglePoint MultiCoordPoint
	Points      []MultiCoordPoint
}
