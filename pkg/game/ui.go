package game

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMissingSurface is returned when a session is created without a render surface.
	ErrMissingSurface = errors.New("render surface is required")

	// ErrMissingSink is returned when a session is created with an incomplete UI.
	ErrMissingSink = errors.New("ui sink is required")
)

// ValueSink displays a single integer value (score, coin count).
type ValueSink interface {
	SetValue(v int)
}

// Panel is an overlay that can be shown or hidden.
type Panel interface {
	SetVisible(visible bool)
}

// UI groups the display sinks a session publishes to.
//
// Score and Coins are refreshed after every render. FinalScore and FinalCoins
// are written once when the game ends.
type UI struct {
	Score      ValueSink
	Coins      ValueSink
	FinalScore ValueSink
	FinalCoins ValueSink

	GameOverPanel Panel
	StartPanel    Panel
}

// Validate reports the first missing sink.
func (u UI) Validate() error {
	sinks := []struct {
		name string
		ok   bool
	}{
		{"score", !isNil(u.Score)},
		{"coins", !isNil(u.Coins)},
		{"final score", !isNil(u.FinalScore)},
		{"final coins", !isNil(u.FinalCoins)},
		{"game over panel", !isNil(u.GameOverPanel)},
		{"start panel", !isNil(u.StartPanel)},
	}
	for _, s := range sinks {
		if !s.ok {
			return fmt.Errorf("%w: %s", ErrMissingSink, s.name)
		}
	}
	return nil
}

// isNil reports whether v is nil, including a typed nil pointer stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
