package harness

// Defaults applied by Options.applyDefaults.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultTimeoutMs      = 30000
	DefaultTracesDir      = "target/pw-traces"
)

// Viewport is the browser viewport size.
type Viewport struct {
	Width  int
	Height int
}

// Options configures a traced browser session.
type Options struct {
	Headless  bool
	Viewport  *Viewport
	TimeoutMs float64 // Default timeout for page operations
	TracesDir string  // Directory trace archives are written to
}

// applyDefaults fills unset fields.
func (o *Options) applyDefaults() {
	if o.Viewport == nil {
		o.Viewport = &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if o.TimeoutMs == 0 {
		o.TimeoutMs = DefaultTimeoutMs
	}
	if o.TracesDir == "" {
		o.TracesDir = DefaultTracesDir
	}
}
