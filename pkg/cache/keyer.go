package cache

// LayoutKeyOpts holds every option that changes a composed layout.
type LayoutKeyOpts struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	SideLen float64 `json:"side_len"`
	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
	Style   string  `json:"style,omitempty"` // fills and stroke, e.g. "#000000/#800000/#000000/5"
}

// ArtifactKeyOpts holds every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	VizType    string        `json:"viz_type"`
	Format     string        `json:"format"`
	Layout     LayoutKeyOpts `json:"layout"`
	Background string        `json:"background,omitempty"`
	Scale      float64       `json:"scale,omitempty"`
	Detailed   bool          `json:"detailed,omitempty"`
}

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// LayoutKey keys a composed layout by tree hash and layout options.
	LayoutKey(treeHash string, opts LayoutKeyOpts) string
	// ArtifactKey keys a rendered artifact by tree hash and render options.
	ArtifactKey(treeHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes options into "layout:<sha256>" and "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() *DefaultKeyer { return &DefaultKeyer{} }

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(treeHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", treeHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", treeHash, opts)
}

// ArtifactKey derives an artifact key with the [DefaultKeyer].
func ArtifactKey(treeHash string, opts ArtifactKeyOpts) string {
	return DefaultKeyer{}.ArtifactKey(treeHash, opts)
}

var _ Keyer = DefaultKeyer{}
