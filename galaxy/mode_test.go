package galaxy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/vmath"
)

type fakeAudio struct {
	activations int
	triggers    int
	err         error
}

func (a *fakeAudio) Activate() error {
	a.activations++
	return a.err
}

func (a *fakeAudio) Trigger() { a.triggers++ }

// newTestWorld builds a small deterministic world with a hand-placed starfield
func newTestWorld(t *testing.T, audio Audio, stars ...vmath.Vec2) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Noise = constNoise(0.5)
	cfg.Audio = audio
	cfg.Logger = zaptest.NewLogger(t)
	cfg.GalaxyStars = 20
	cfg.StarfieldStars = 0
	w := New(cfg)

	for _, p := range stars {
		w.Stars = append(w.Stars, &Star{Pos: p, Size: 2, Color: starWhite, Trail: NewTrail(4)})
	}
	return w
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "supernova", ModeSupernova.String())
	assert.Equal(t, "zoom", ModeZoom.String())
	assert.Equal(t, "move", ModeMoveGalaxy.String())
	assert.Equal(t, "unknown", Mode(99).String())
}

func TestSetModeIsExclusive(t *testing.T) {
	w := newTestWorld(t, nil)
	assert.Equal(t, ModeNone, w.Mode())

	for _, m := range []Mode{ModeSupernova, ModeZoom, ModeMoveGalaxy, ModeSupernova} {
		w.SetMode(m)
		assert.Equal(t, m, w.Mode())
	}
}

func TestPressSupernovaConsumesStar(t *testing.T) {
	audio := &fakeAudio{}
	w := newTestWorld(t, audio, vmath.V2(100, 100), vmath.V2(300, 300))
	w.SetMode(ModeSupernova)

	w.Press(106, 100)

	require.Len(t, w.Stars, 1)
	assert.Equal(t, vmath.V2(300, 300), w.Stars[0].Pos)
	require.Len(t, w.Supernovas, 1)
	assert.Equal(t, vmath.V2(100, 100), w.Supernovas[0].Pos)
	assert.Equal(t, 0.0, w.Supernovas[0].Age)
	assert.Equal(t, 1, audio.activations)
	assert.Equal(t, 1, audio.triggers)
}

func TestPressOutsideHitRadiusMisses(t *testing.T) {
	w := newTestWorld(t, nil, vmath.V2(100, 100))
	w.SetMode(ModeSupernova)

	w.Press(100+constants.StarHitRadius+0.5, 100)
	assert.Len(t, w.Stars, 1)
	assert.Empty(t, w.Supernovas)
}

func TestPressHitsNewestStarFirst(t *testing.T) {
	w := newTestWorld(t, nil, vmath.V2(100, 100), vmath.V2(104, 100))
	w.SetMode(ModeSupernova)

	w.Press(102, 100)
	require.Len(t, w.Stars, 1)
	assert.Equal(t, vmath.V2(100, 100), w.Stars[0].Pos)
	assert.Equal(t, vmath.V2(104, 100), w.Supernovas[0].Pos)
}

func TestAudioActivatesOnce(t *testing.T) {
	audio := &fakeAudio{err: errors.New("no device")}
	w := newTestWorld(t, audio, vmath.V2(100, 100), vmath.V2(200, 200), vmath.V2(300, 300))
	w.SetMode(ModeSupernova)

	w.Press(100, 100)
	w.Press(200, 200)
	w.Press(300, 300)

	assert.Equal(t, 1, audio.activations)
	assert.Equal(t, 3, audio.triggers)
	assert.Len(t, w.Supernovas, 3)
	assert.Empty(t, w.Stars)
}

func TestPressZoomThenClear(t *testing.T) {
	w := newTestWorld(t, nil, vmath.V2(200, 150))
	w.SetMode(ModeZoom)

	w.Press(201, 151)
	require.NotNil(t, w.ZoomTarget())
	assert.Same(t, w.Stars[0], w.ZoomTarget())
	assert.Len(t, w.Stars, 1, "zoom does not consume the star")

	// The clearing press must not also act in the new mode
	w.SetMode(ModeSupernova)
	w.Press(200, 150)
	assert.Nil(t, w.ZoomTarget())
	assert.Len(t, w.Stars, 1)
	assert.Empty(t, w.Supernovas)
}

func TestPressWhileZoomedIgnoresMove(t *testing.T) {
	w := newTestWorld(t, nil, vmath.V2(200, 150))
	w.SetMode(ModeZoom)
	w.Press(200, 150)
	require.NotNil(t, w.ZoomTarget())

	w.SetMode(ModeMoveGalaxy)
	target := w.Galaxy.Target
	w.Press(10, 10)
	assert.Nil(t, w.ZoomTarget())
	assert.Equal(t, target, w.Galaxy.Target)
}

func TestPressMoveGalaxySetsTarget(t *testing.T) {
	w := newTestWorld(t, nil, vmath.V2(700, 500))
	w.SetMode(ModeMoveGalaxy)

	w.Press(100, 120)
	assert.Equal(t, vmath.V2(100, 120), w.Galaxy.Target)

	// A press on a star in move mode does nothing
	w.Press(700, 500)
	assert.Equal(t, vmath.V2(100, 120), w.Galaxy.Target)
	assert.Len(t, w.Stars, 1)
}

func TestPressWithoutModeDoesNothing(t *testing.T) {
	w := newTestWorld(t, nil, vmath.V2(100, 100))
	target := w.Galaxy.Target

	w.Press(100, 100)
	w.Press(500, 500)
	assert.Len(t, w.Stars, 1)
	assert.Nil(t, w.ZoomTarget())
	assert.Empty(t, w.Supernovas)
	assert.Equal(t, target, w.Galaxy.Target)
}

func TestGalaxyConvergesOnPressedPoint(t *testing.T) {
	w := newTestWorld(t, nil)
	w.SetMode(ModeMoveGalaxy)
	p := vmath.V2(100, 100)
	w.Press(p.X, p.Y)

	for i := 0; i < 1000 && vmath.V2Dist(w.Galaxy.Center, p) > constants.GalaxyDriftThreshold; i++ {
		w.Step(constants.FrameUpdateInterval)
	}
	require.LessOrEqual(t, vmath.V2Dist(w.Galaxy.Center, p), 1.0)

	settled := w.Galaxy.Center
	for i := 0; i < 10; i++ {
		w.Step(constants.FrameUpdateInterval)
	}
	assert.Equal(t, settled, w.Galaxy.Center)
}
