package geohash

// DefaultPrecision is the number of symbols Encode produces, the
// practical maximum resolution of roughly 3.7cm x 1.9cm.
const DefaultPrecision = 12

var (
	lonRange = Range{Min: -180, Max: 180}
	latRange = Range{Min: -90, Max: 90}
)

// Point is a longitude/latitude pair in degrees.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// PointErr is a point with the per-axis half-widths of the cell it
// was decoded from. The true coordinate lies within center +/- err
// on each axis.
type PointErr struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	LonErr    float64 `json:"lonErr"`
	LatErr    float64 `json:"latErr"`
}

// Range is a [Min, Max] bound on a single axis.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Bounds is the bounding box of a cell, one range per axis.
type Bounds struct {
	Longitude Range `json:"longitude"`
	Latitude  Range `json:"latitude"`
}

// Cell is a decoded geohash cell: the center coordinate and the
// per-axis error margins. It is immutable once produced, the views
// below derive from it.
type Cell struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	LonErr    float64 `json:"lonErr"`
	LatErr    float64 `json:"latErr"`
}

// Point returns the cell center.
func (c *Cell) Point() *Point {
	return &Point{Longitude: c.Longitude, Latitude: c.Latitude}
}

// PointErr returns the cell center with its error margins.
func (c *Cell) PointErr() *PointErr {
	return &PointErr{
		Longitude: c.Longitude,
		Latitude:  c.Latitude,
		LonErr:    c.LonErr,
		LatErr:    c.LatErr,
	}
}

// Polygon returns the four corners of the cell's bounding box,
// ordered SW, SE, NW, NE. The ring is not closed, callers building
// geojson need to repeat the first corner themselves.
func (c *Cell) Polygon() []Point {
	west, east := c.Longitude-c.LonErr, c.Longitude+c.LonErr
	south, north := c.Latitude-c.LatErr, c.Latitude+c.LatErr
	return []Point{
		{Longitude: west, Latitude: south},
		{Longitude: east, Latitude: south},
		{Longitude: west, Latitude: north},
		{Longitude: east, Latitude: north},
	}
}

// Bounds returns the cell's bounding box as per-axis ranges.
func (c *Cell) Bounds() *Bounds {
	return &Bounds{
		Longitude: Range{Min: c.Longitude - c.LonErr, Max: c.Longitude + c.LonErr},
		Latitude:  Range{Min: c.Latitude - c.LatErr, Max: c.Latitude + c.LatErr},
	}
}

// Width returns the cell extent in longitude degrees.
func (c *Cell) Width() float64 {
	return c.LonErr * 2
}

// Height returns the cell extent in latitude degrees.
func (c *Cell) Height() float64 {
	return c.LatErr * 2
}

// Geotype selects the decoded view returned by DecodeGeotype.
type Geotype string

const (
	GeotypePoint    Geotype = "point"
	GeotypePointErr Geotype = "pointerr"
	GeotypePolygon  Geotype = "polygon"
)
