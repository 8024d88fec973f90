package img2ascii

import "context"

// Session binds one image to a Renderer and a Resolution. It is the state
// an interactive front end drives between commands.
type Session struct {
	image      Image
	renderer   *Renderer
	resolution *Resolution
}

// NewSession starts a session on img at initialCharsPerRow, clamped into
// the bounds the image allows.
func NewSession(img Image, renderer *Renderer, initialCharsPerRow int) (*Session, error) {
	res, err := NewResolution(img.Width(), img.Height(), initialCharsPerRow)
	if err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Session{image: img, renderer: renderer, resolution: res}, nil
}

// Image returns the session's image.
func (s *Session) Image() Image { return s.image }

// Renderer returns the session's renderer.
func (s *Session) Renderer() *Renderer { return s.renderer }

// Resolution returns the session's resolution state.
func (s *Session) Resolution() *Resolution { return s.resolution }

// CharacterSet returns the renderer's active character set.
func (s *Session) CharacterSet() *CharacterSet { return s.renderer.CharacterSet() }

// Render converts the image at the current resolution.
func (s *Session) Render(ctx context.Context) (*RenderResult, error) {
	return s.renderer.Render(ctx, s.image, s.resolution.Current())
}

// RenderAt converts the image at charsPerRow, which must lie within the
// resolution bounds. The current resolution is left untouched.
func (s *Session) RenderAt(ctx context.Context, charsPerRow int) (*RenderResult, error) {
	if err := s.resolution.Check(charsPerRow); err != nil {
		return nil, err
	}
	return s.renderer.Render(ctx, s.image, charsPerRow)
}

// IncreaseResolution doubles the characters per row if allowed. It returns
// the resulting value and false when already at the maximum.
func (s *Session) IncreaseResolution() (int, bool) {
	return s.resolution.Increase()
}

// DecreaseResolution halves the characters per row if allowed. It returns
// the resulting value and false when already at the minimum.
func (s *Session) DecreaseResolution() (int, bool) {
	return s.resolution.Decrease()
}
