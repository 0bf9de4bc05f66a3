package game

import "github.com/Faultbox/yarpgp/internal/game/entity"

// FootstepSound is the sound name the footstep WAV is loaded under.
const FootstepSound = "step"

// Footsteps detects the moment an entity's walk cycle lands on a step frame.
type Footsteps struct {
	clip   string
	frame  int
	stride bool
}

// Landed reports whether e entered a step frame since the previous call.
// A step held across several calls is reported once.
func (f *Footsteps) Landed(e *entity.Entity) bool {
	if e == nil || e.Anim == nil {
		f.stride = false
		return false
	}

	clip, frame := e.Anim.ClipName(), e.Anim.Frame()
	changed := clip != f.clip || frame != f.frame
	f.clip, f.frame = clip, frame

	stride := e.Striding()
	landed := stride && (changed || !f.stride)
	f.stride = stride
	return landed
}
