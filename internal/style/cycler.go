package style

// Assignment is the resolved visual treatment for one series. An empty
// Marker means the series is drawn without markers.
type Assignment struct {
	Marker     string
	Dash       string
	LineWidth  float64
	MarkerSize float64
}

// Cycler maps a zero-based series index to a concrete style assignment.
// The mapping is pure and deterministic: the same index always yields the
// same assignment for the same configuration. A Cycler is cheap to build
// and is not meant to be shared across concurrent mutations.
type Cycler struct {
	markers    []string
	dashes     []string
	autoCycle  bool
	graphType  GraphType
	lineWidth  float64
	markerSize float64
}

// NewCycler builds a Cycler from an already-resolved line style. The dash
// sequence is expected to be non-empty (configuration defaulting always
// populates at least the solid pattern); an empty one is tolerated by
// falling back to solid wherever a dash would be indexed.
func NewCycler(markers, dashes []string, autoCycle bool, lineWidth, markerSize float64, graphType GraphType) *Cycler {
	return &Cycler{
		markers:    append([]string(nil), markers...),
		dashes:     append([]string(nil), dashes...),
		autoCycle:  autoCycle,
		graphType:  graphType,
		lineWidth:  lineWidth,
		markerSize: markerSize,
	}
}

// Resolve returns the style assignment for the i-th series. Indexes beyond
// the cycle length wrap around and repeat earlier combinations.
func (c *Cycler) Resolve(i int) Assignment {
	a := Assignment{LineWidth: c.lineWidth, MarkerSize: c.markerSize}

	switch c.graphType {
	case TypeBar:
		// Bars have neither markers nor dash patterns.
		return a
	case TypeScatter:
		a.Marker = ScatterDefaultMarker
		if len(c.markers) > 0 {
			a.Marker = c.markers[i%len(c.markers)]
		}
		return a
	}

	if c.autoCycle {
		return c.resolveAuto(i, a)
	}
	return c.resolveManual(i, a)
}

// resolveAuto walks the joint cycle sequence: dash patterns alone when no
// markers are configured, otherwise the marker-major Cartesian product of
// the two sequences.
func (c *Cycler) resolveAuto(i int, a Assignment) Assignment {
	if len(c.markers) == 0 {
		a.Dash = c.dashAt(i)
		return a
	}

	period := len(c.markers) * len(c.dashes)
	if period == 0 {
		a.Marker = c.markers[i%len(c.markers)]
		a.Dash = DashSolid
		return a
	}

	pos := i % period
	a.Marker = c.markers[pos/len(c.dashes)]
	a.Dash = c.dashes[pos%len(c.dashes)]
	return a
}

// resolveManual indexes the marker and dash sequences independently. This
// intentionally differs from auto mode's joint enumeration: with markers
// [o s] and dashes [- -- -.], series 4 is (o, --) here but (s, --) under
// auto cycling.
func (c *Cycler) resolveManual(i int, a Assignment) Assignment {
	if len(c.markers) > 0 {
		a.Marker = c.markers[i%len(c.markers)]
	}
	a.Dash = c.dashAt(i)
	return a
}

func (c *Cycler) dashAt(i int) string {
	if len(c.dashes) == 0 {
		return DashSolid
	}
	return c.dashes[i%len(c.dashes)]
}

// CycleSequence returns the full cycle a backend-native property cycler
// would consume in auto mode: one assignment per element of the joint
// enumeration, before any wrap-around. For manual mode it returns nil,
// since manual indexing has no single joint sequence.
func (c *Cycler) CycleSequence() []Assignment {
	if !c.autoCycle {
		return nil
	}

	if len(c.markers) == 0 {
		seq := make([]Assignment, 0, len(c.dashes))
		for _, d := range c.dashes {
			seq = append(seq, Assignment{Dash: d, LineWidth: c.lineWidth, MarkerSize: c.markerSize})
		}
		return seq
	}

	seq := make([]Assignment, 0, len(c.markers)*len(c.dashes))
	for _, m := range c.markers {
		for _, d := range c.dashes {
			seq = append(seq, Assignment{Marker: m, Dash: d, LineWidth: c.lineWidth, MarkerSize: c.markerSize})
		}
	}
	return seq
}

// Period returns the number of series after which assignments repeat.
func (c *Cycler) Period() int {
	switch {
	case c.graphType == TypeBar:
		return 1
	case c.graphType == TypeScatter:
		if len(c.markers) == 0 {
			return 1
		}
		return len(c.markers)
	case c.autoCycle && len(c.markers) > 0:
		return len(c.markers) * len(c.dashes)
	case c.autoCycle:
		return max(len(c.dashes), 1)
	default:
		return lcm(max(len(c.markers), 1), max(len(c.dashes), 1))
	}
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
