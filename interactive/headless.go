package interactive

import (
	"github.com/joshyorko/sortbot/common"
	"github.com/joshyorko/sortbot/gridcore"
)

// Script is a recorded operator session: the keys pressed and how many
// frames ran afterwards, on a screen of Width x Height.
type Script struct {
	Keys   []gridcore.Key
	Frames int
	Width  int
	Height int
}

// Replay runs a script through the same model the dashboard uses, without
// a terminal. Keys after a quit are not applied; no frames run after a quit.
func Replay(opts Options, script Script) Result {
	opts.Messages = messagesFor(opts)
	common.SetLogInterceptor(captureInto(opts.Messages))
	defer common.ClearLogInterceptor()

	app := NewApp(opts)
	if script.Width > 0 && script.Height > 0 {
		app.resize(script.Width, script.Height)
	}
	for _, key := range script.Keys {
		app.Apply(key)
		if app.quitting {
			return app.Result()
		}
	}
	for i := 0; i < script.Frames; i++ {
		app.Advance()
	}
	return app.Result()
}
