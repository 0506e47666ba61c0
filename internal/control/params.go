package control

import (
	"strconv"
	"strings"

	"life-canvas/internal/core"
)

// RateKey is the parameter key for the step rate.
const RateKey = "rate"

// Parameters implements the HUD's snapshot provider.
func (c *Controller) Parameters() core.ParameterSnapshot {
	st := c.Status()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("generation", "Generation", st.Generation, "Number of steps since the last edit"),
				intParam("population", "Population", st.Population, "Live cells on the board"),
				{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(st.Running)},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				intParam(RateKey, "Step rate", st.Rate, "Step duration: "+stepDuration(st.Rate)+" seconds"),
			},
		},
	}}
}

// ParameterControls exposes the step rate as coarse and fine +/- controls.
func (c *Controller) ParameterControls() []core.ParameterControl {
	base := core.ParameterControl{
		Key:    RateKey,
		Type:   core.ParamTypeInt,
		Min:    core.MinRate,
		Max:    core.MaxRate,
		HasMin: true,
		HasMax: true,
	}
	fine, coarse := base, base
	fine.Label, fine.Step = "Rate", 1
	coarse.Label, coarse.Step = "Rate x10", 10
	return []core.ParameterControl{fine, coarse}
}

// SetIntParameter updates an integer parameter by key.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != RateKey {
		return false
	}
	c.SetRate(value)
	return true
}

func intParam(key, label string, value int, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value), Description: desc}
}

// stepDuration formats 1/rate with at most three decimals and no trailing
// zeros.
func stepDuration(rate int) string {
	if rate <= 0 {
		return "0"
	}
	s := strconv.FormatFloat(1/float64(rate), 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
