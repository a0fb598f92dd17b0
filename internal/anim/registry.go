package anim

// Animatable is anything that advances its own state once per frame tick.
// Elapsed time is injected by the frame driver so entities never read a
// hidden clock.
type Animatable interface {
	Advance(dt float64)
}

// Registry is an ordered, append-only collection of animatables. It owns
// no simulation state itself; Tick is pure dispatch.
type Registry struct {
	entities []Animatable
}

// Register appends an entity. Registration order is tick order, stable for
// the life of the registry. There is no removal path.
func (r *Registry) Register(a Animatable) {
	r.entities = append(r.entities, a)
}

// Tick advances every registered entity once, in registration order.
func (r *Registry) Tick(dt float64) {
	for _, a := range r.entities {
		a.Advance(dt)
	}
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	return len(r.entities)
}
