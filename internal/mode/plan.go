package mode

// WaitPolicy selects how the external application process is awaited.
type WaitPolicy int

const (
	// WaitForExit keeps the launcher alive until the application terminates.
	WaitForExit WaitPolicy = iota
	// FireAndForget detaches the application so the launcher returns immediately.
	FireAndForget
)

// Plan is the action of a resolved mode: the arguments the external
// application is started with, the wait policy, the banner printed before the
// launch and whether the launcher waits for a key-press before exiting.
// Parsing a token and acting on it are kept apart so both stay testable.
type Plan struct {
	Arguments  []string
	Wait       WaitPolicy
	Banner     string
	PauseAfter bool
}

// Spawns reports whether the plan starts the external application. The help
// and invalid modes only print text.
func (plan Plan) Spawns() bool {
	return len(plan.Arguments) > 0
}

// Plan returns the launch plan of the selected mode.
func (selection Selection) Plan() Plan {
	switch selection.Mode {
	case Editor:
		return Plan{
			Arguments: []string{"editor"},
			Wait:      WaitForExit,
			Banner:    "Starting Todo Editor...",
		}
	case Silent:
		return Plan{
			Arguments: []string{"editor", "--minimized"},
			Wait:      FireAndForget,
		}
	case Wallpaper:
		return Plan{
			Arguments: []string{"wallpaper"},
			Wait:      WaitForExit,
			Banner:    "Starting Wallpaper Generator...",
		}
	case Setup:
		return Plan{
			Arguments: []string{"setup"},
			Wait:      WaitForExit,
			Banner:    "Running Complete Setup...",
		}
	case Config:
		return Plan{
			Arguments:  []string{"config"},
			Wait:       WaitForExit,
			Banner:     "Showing Configuration...",
			PauseAfter: true,
		}
	case Uninstall:
		return Plan{
			Arguments:  []string{"uninstall"},
			Wait:       WaitForExit,
			Banner:     "Uninstalling Todo Editor...",
			PauseAfter: true,
		}
	}
	return Plan{PauseAfter: true}
}
