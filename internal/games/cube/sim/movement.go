package sim

import "github.com/vovakirdan/tui-cube/internal/core"

// Input is the raw directional input sampled for one tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Direction resolves the input to a vector with each axis in {-1, 0, 1}.
// Opposing inputs on the same axis cancel to 0.
func (in Input) Direction() core.Vec2 {
	var d core.Vec2
	if in.Up {
		d.Y++
	}
	if in.Down {
		d.Y--
	}
	if in.Right {
		d.X++
	}
	if in.Left {
		d.X--
	}
	return d
}

// Move advances the player by one tick of input. Diagonal movement is not
// normalized, matching the per-axis speed of the original controls.
func Move(st *RoundState, in Input, p Params) {
	step := p.StepLength()
	st.Player.Pos = st.Player.Pos.Add(in.Direction().Scale(step))

	if p.Clamp {
		hx := p.Field.X/2 - st.Player.Half.X
		hy := p.Field.Y/2 - st.Player.Half.Y
		st.Player.Pos.X = core.ClampF(st.Player.Pos.X, -hx, hx)
		st.Player.Pos.Y = core.ClampF(st.Player.Pos.Y, -hy, hy)
	}
}
