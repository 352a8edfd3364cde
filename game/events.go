package game

import "strings"

// Events is the set of things that happened during one frame
type Events uint8

const (
	EventSpawn     Events = 1 << iota // an enemy entered
	EventBounce                       // the player bounced on the ground
	EventScore                        // the score counter advanced
	EventCollision                    // the player touched an enemy
	EventFellOff                      // the player left the platform
	EventStopped                      // the player fell past the kill plane
)

// Has reports whether every bit of e is set
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

var eventNames = []struct {
	e    Events
	name string
}{
	{EventSpawn, "spawn"},
	{EventBounce, "bounce"},
	{EventScore, "score"},
	{EventCollision, "collision"},
	{EventFellOff, "fell_off"},
	{EventStopped, "stopped"},
}

func (ev Events) String() string {
	if ev == 0 {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if ev.Has(n.e) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Controls is the steering input sampled for one frame
type Controls struct {
	Left, Right   bool // a, d
	Forward, Back bool // w, s
}
