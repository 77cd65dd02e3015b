package geom

// Point is an integer display coordinate.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Path is a closed polygon that can be rotated about its origin and then
// moved to an offset. The outline itself never changes after creation.
type Path struct {
	points   []Point
	rotation Angle
	offset   Point
}

// NewPath copies points into a new path at rotation 0 and offset (0,0).
func NewPath(points ...Point) *Path {
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Path{points: pts}
}

// RotateTo sets the absolute rotation of the path.
func (p *Path) RotateTo(a Angle) {
	p.rotation = a.Normalize()
}

// MoveTo sets the absolute offset of the path's origin.
func (p *Path) MoveTo(offset Point) {
	p.offset = offset
}

func (p *Path) Rotation() Angle { return p.rotation }

func (p *Path) Offset() Point { return p.offset }

func (p *Path) Len() int { return len(p.points) }

// Outline returns a copy of the untransformed points.
func (p *Path) Outline() []Point {
	pts := make([]Point, len(p.points))
	copy(pts, p.points)
	return pts
}

// Points returns the rotated and offset points in display coordinates.
func (p *Path) Points() []Point {
	return p.AppendPoints(make([]Point, 0, len(p.points)))
}

// AppendPoints appends the transformed points to dst.
func (p *Path) AppendPoints(dst []Point) []Point {
	sin := int64(Sin(p.rotation))
	cos := int64(Cos(p.rotation))
	for _, pt := range p.points {
		x, y := int64(pt.X), int64(pt.Y)
		dst = append(dst, Point{
			X: int((x*cos-y*sin)/TrigMaxRatio) + p.offset.X,
			Y: int((x*sin+y*cos)/TrigMaxRatio) + p.offset.Y,
		})
	}
	return dst
}
