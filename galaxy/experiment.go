package galaxy

import (
	"fmt"
	"time"

	"github.com/lixenwraith/galaxy-gallery/constants"
	"github.com/lixenwraith/galaxy-gallery/experiment"
)

// Script is the manifest path the galaxy experiment registers under
const Script = "experiments/galaxy"

// modeButtons pairs control labels with the mode they select, in display order
var modeButtons = []struct {
	label string
	mode  Mode
}{
	{constants.LabelSupernova, ModeSupernova},
	{constants.LabelZoom, ModeZoom},
	{constants.LabelMove, ModeMoveGalaxy},
}

// Experiment hosts a World on a stage
type Experiment struct {
	world *World
}

// NewExperiment is the registry factory
func NewExperiment() experiment.Experiment {
	return &Experiment{}
}

// World exposes the simulation, nil before Setup
func (e *Experiment) World() *World { return e.world }

func (e *Experiment) Setup(st *experiment.Stage) error {
	cv, err := st.CreateCanvas(constants.CanvasWidth, constants.CanvasHeight)
	if err != nil {
		return fmt.Errorf("galaxy setup: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = cv.Width(), cv.Height()
	cfg.Seed = st.Env.Seed
	cfg.Noise = st.Noise()
	cfg.Audio = st.Audio()
	cfg.Logger = st.Logger
	e.world = New(cfg)

	labels := make([]string, len(modeButtons))
	for i, b := range modeButtons {
		labels[i] = b.label
	}
	st.Controls.AddGroup(labels, func(i int) {
		e.world.SetMode(modeButtons[i].mode)
	})
	return nil
}

func (e *Experiment) Draw(st *experiment.Stage, dt time.Duration) {
	e.world.Step(dt)
	e.world.Draw(st.Canvas(), dt)
}

func (e *Experiment) MousePressed(_ *experiment.Stage, x, y float64) {
	e.world.Press(x, y)
}
