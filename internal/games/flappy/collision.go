package flappy

// Collides reports whether the actor has hit the floor or a pipe.
// A pipe is hit when it overlaps the actor horizontally and the actor is not
// entirely inside its gap.
func Collides(actor Actor, obstacles []Obstacle, floorY float64) bool {
	box := actor.Bounds()
	if box.Bottom() > floorY {
		return true
	}

	for _, o := range obstacles {
		if box.Intersects(o.TopPipe()) || box.Intersects(o.BottomPipe(floorY)) {
			return true
		}
	}
	return false
}
