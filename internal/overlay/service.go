package overlay

import (
	"github.com/rs/zerolog"

	"github.com/danmichaelo/statusindicator/internal/host"
	"github.com/danmichaelo/statusindicator/internal/model"
)

// Service is the reactive controller of the overlay. It owns the indicator
// configuration and the drawable, subscribes to host frame/quit events and to
// its own configuration-change notifier while enabled, and performs one full
// synchronous redraw per delivered event.
//
// The service has two states: Disabled (no drawable, no subscriptions) and
// Enabled. A nil drawable is the liveness indicator; there is no separate
// flag to drift out of sync.
type Service struct {
	host host.Host
	log  zerolog.Logger

	cfg   model.IndicatorConfig
	state model.RenderState

	changes  *notifier
	drawable host.Drawable       // nil while disabled
	subs     []host.Subscription // host + notifier subscriptions, enabled only
}

// NewService creates a disabled overlay service bound to the given host.
// Call Toggle(cfg.Enabled) to apply the configured initial state.
func NewService(h host.Host, cfg model.IndicatorConfig, log zerolog.Logger) *Service {
	return &Service{
		host:    h,
		log:     log,
		cfg:     model.IndicatorConfig{Timestep: cfg.Timestep, Header: cfg.Header, Unit: cfg.Unit},
		changes: newNotifier(),
	}
}

// Config returns a copy of the current configuration
func (s *Service) Config() model.IndicatorConfig {
	return s.cfg
}

// State returns the render state derived by the most recent redraw
func (s *Service) State() model.RenderState {
	return s.state
}

// Enabled returns true if the service owns a live drawable
func (s *Service) Enabled() bool {
	return s.drawable != nil
}

// Enable attaches the overlay: creates the owned drawable, samples the
// background for the foreground color policy, subscribes to host frame and
// quit events and to configuration changes, and redraws immediately.
// Calling Enable while already enabled is a no-op.
func (s *Service) Enable() {
	if s.drawable != nil {
		return
	}

	d, err := s.host.CreateDrawable()
	if err != nil {
		s.log.Error().Err(err).Msg("overlay: cannot create drawable")
		return
	}
	s.drawable = d
	s.cfg.Enabled = true
	s.state.Foreground = PickForeground(s.host.BackgroundColor().Sum())

	s.subs = append(s.subs,
		s.host.OnFrameChanged(func(int) { s.Redraw() }),
		// The host is tearing down; the drawable handle is no longer safely
		// operable, so skip cleanup.
		s.host.OnQuitRequested(func() { s.Disable(false) }),
		s.changes.subscribe(s.Redraw),
	)

	s.log.Debug().Str("foreground", s.state.Foreground.String()).Msg("overlay enabled")
	s.Redraw()
}

// Disable detaches the overlay: cancels all subscriptions and, if cleanup is
// requested, destroys the owned drawable. With cleanup=false the handle is
// abandoned (used on host quit).
func (s *Service) Disable(cleanup bool) {
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
	s.cfg.Enabled = false

	if s.drawable == nil {
		return
	}
	if cleanup {
		if err := s.host.DestroyDrawable(s.drawable); err != nil {
			s.log.Warn().Err(err).Msg("overlay: destroying drawable failed")
		}
	}
	s.drawable = nil
	s.log.Debug().Bool("cleanup", cleanup).Msg("overlay disabled")
}

// Toggle transitions the service to the requested enabled state
func (s *Service) Toggle(enabled bool) {
	if enabled {
		s.Enable()
	} else {
		s.Disable(true)
	}
}

// ResetForeground resamples the host background color. The background is
// otherwise sampled only once, at enable time.
func (s *Service) ResetForeground() {
	s.state.Foreground = PickForeground(s.host.BackgroundColor().Sum())
	s.publishChange()
}

// SetTimestep updates the physical time per frame. Non-positive values are
// accepted into the configuration and surface as an unrenderable state on
// the next redraw.
func (s *Service) SetTimestep(v float64) {
	s.cfg.Timestep = v
	s.publishChange()
}

// SetHeader replaces the header text verbatim
func (s *Service) SetHeader(text string) {
	s.cfg.Header = text
	s.publishChange()
}

// SetUnit changes the time unit the label is expressed in
func (s *Service) SetUnit(u model.TimeUnit) {
	if !u.IsValid() {
		s.log.Warn().Str("unit", u.String()).Msg("overlay: ignoring unknown time unit")
		return
	}
	s.cfg.Unit = u
	s.publishChange()
}

func (s *Service) publishChange() {
	s.changes.publish()
}

// Redraw runs one full redraw cycle: refetch viewport metrics, derive render
// state, clear previously emitted primitives, and emit the new ones unless
// the state is unrenderable. A no-op while disabled.
func (s *Service) Redraw() {
	if s.drawable == nil {
		return
	}

	metrics := s.host.ActiveViewport()
	st := deriveState(s.host.CurrentFrame(), s.host.TotalFrames(), s.cfg)
	st.Foreground = s.state.Foreground
	s.state = st

	s.drawable.Clear()
	if !st.Renderable() {
		s.log.Debug().Str("reason", st.ErrorMessage).Msg("overlay: redraw suppressed")
		return
	}

	paint(s.drawable, Compute(metrics, st.Percentage), st, s.cfg.Header)
}
