package control

// Command enumerates the discrete controls a frontend can trigger.
type Command int

const (
	CmdToggleRun Command = iota
	CmdStep
	CmdClear
	CmdRandomize
	CmdRateDownFast
	CmdRateDown
	CmdRateUp
	CmdRateUpFast
)

// Commands lists every command in display order.
var Commands = []Command{
	CmdToggleRun, CmdStep, CmdClear, CmdRandomize,
	CmdRateDownFast, CmdRateDown, CmdRateUp, CmdRateUpFast,
}

var commandNames = map[Command]string{
	CmdToggleRun:    "toggle",
	CmdStep:         "step",
	CmdClear:        "clear",
	CmdRandomize:    "fill",
	CmdRateDownFast: "rate-10",
	CmdRateDown:     "rate-1",
	CmdRateUp:       "rate+1",
	CmdRateUpFast:   "rate+10",
}

func (cmd Command) String() string {
	if name, ok := commandNames[cmd]; ok {
		return name
	}
	return "unknown"
}

var dispatch = map[Command]func(*Controller){
	CmdToggleRun:    (*Controller).ToggleRun,
	CmdStep:         func(c *Controller) { c.SingleStep() },
	CmdClear:        (*Controller).Clear,
	CmdRandomize:    (*Controller).Randomize,
	CmdRateDownFast: func(c *Controller) { c.DecreaseRate(10) },
	CmdRateDown:     func(c *Controller) { c.DecreaseRate(1) },
	CmdRateUp:       func(c *Controller) { c.IncreaseRate(1) },
	CmdRateUpFast:   func(c *Controller) { c.IncreaseRate(10) },
}

// Dispatch runs cmd and reports whether it was recognised.
func (c *Controller) Dispatch(cmd Command) bool {
	fn, ok := dispatch[cmd]
	if !ok {
		c.log.WithField("command", int(cmd)).Warn("unknown command")
		return false
	}
	fn(c)
	return true
}
