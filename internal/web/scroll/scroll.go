// Package scroll derives a normalized scroll completion ratio from document
// geometry and drives the landing page progress indicator.
package scroll

import "strconv"

// Viewport supplies document geometry and scroll change notifications.
//
// Implementations must invoke subscribed handlers synchronously on the
// goroutine that reports the scroll change; the tracker relies on that
// single-owner ordering and takes no locks.
type Viewport interface {
	// ViewportHeight returns the visible height of the hosting surface.
	ViewportHeight() int
	// DocumentHeight returns the full rendered document height.
	DocumentHeight() int
	// ScrollOffset returns the current vertical scroll position.
	ScrollOffset() int
	// Subscribe registers a handler for scroll changes and returns the
	// paired unsubscribe function.
	Subscribe(handler func()) (unsubscribe func())
}

// Tracker converts raw scroll position into a percentage describing how far
// through the document the viewport has moved.
//
// Mount and Unmount pair subscription acquisition and release exactly once
// per cycle, so a tracker can be mounted repeatedly without leaking handlers.
type Tracker struct {
	viewport    Viewport
	ratio       float64
	unsubscribe func()
	onChange    func(float64)
}

// NewTracker returns an unmounted tracker over the given viewport.
func NewTracker(viewport Viewport) *Tracker {
	return &Tracker{viewport: viewport}
}

// OnChange registers a render callback invoked after every recompute.
// Every scroll event triggers a recompute; there is no batching or
// debouncing because the computation is O(1).
func (t *Tracker) OnChange(fn func(ratio float64)) {
	t.onChange = fn
}

// Mount subscribes to scroll changes and computes the initial ratio
// immediately, so the indicator never renders an unset value before the
// first scroll event.
func (t *Tracker) Mount() {
	if t == nil || t.viewport == nil || t.unsubscribe != nil {
		return
	}
	t.recompute()
	t.unsubscribe = t.viewport.Subscribe(t.recompute)
}

// Unmount releases the scroll subscription. Calling Unmount on an unmounted
// tracker is a no-op.
func (t *Tracker) Unmount() {
	if t == nil || t.unsubscribe == nil {
		return
	}
	t.unsubscribe()
	t.unsubscribe = nil
}

// Mounted reports whether the tracker currently holds a subscription.
func (t *Tracker) Mounted() bool {
	return t != nil && t.unsubscribe != nil
}

// Ratio returns the current completion ratio in [0, 100].
func (t *Tracker) Ratio() float64 {
	if t == nil {
		return 0
	}
	return t.ratio
}

// Width renders the current ratio as a CSS width value such as "50%".
func (t *Tracker) Width() string {
	return FormatWidth(t.Ratio())
}

func (t *Tracker) recompute() {
	t.ratio = Ratio(t.viewport.ScrollOffset(), t.viewport.DocumentHeight(), t.viewport.ViewportHeight())
	if t.onChange != nil {
		t.onChange(t.ratio)
	}
}

// Ratio computes the scroll completion percentage for the given geometry,
// clamped into [0, 100]. A document no taller than the viewport has no
// scrollable distance; that degenerate case resolves to 0 rather than
// letting a division by zero escape into a rendered width.
func Ratio(scrollOffset, documentHeight, viewportHeight int) float64 {
	distance := documentHeight - viewportHeight
	if distance <= 0 {
		return 0
	}
	ratio := float64(scrollOffset) / float64(distance) * 100
	if ratio < 0 {
		return 0
	}
	if ratio > 100 {
		return 100
	}
	return ratio
}

// FormatWidth renders a ratio as a CSS percentage string.
func FormatWidth(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', -1, 64) + "%"
}

// StaticViewport is a Viewport over fixed geometry. It never emits scroll
// changes; server-side rendering uses it to compute the initial indicator
// width for a freshly loaded page.
type StaticViewport struct {
	Viewport int
	Document int
	Offset   int
}

// ViewportHeight returns the fixed viewport height.
func (v StaticViewport) ViewportHeight() int { return v.Viewport }

// DocumentHeight returns the fixed document height.
func (v StaticViewport) DocumentHeight() int { return v.Document }

// ScrollOffset returns the fixed scroll offset.
func (v StaticViewport) ScrollOffset() int { return v.Offset }

// Subscribe returns a no-op unsubscribe; static geometry never changes.
func (StaticViewport) Subscribe(func()) (unsubscribe func()) {
	return func() {}
}
