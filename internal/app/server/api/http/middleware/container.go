package middleware

import "github.com/danielgtaylor/huma/v2"

// Container accumulates per-route middleware chains while handlers are being
// wired up.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

// GetAllAndClear returns the accumulated chain and resets the container for
// the next handler.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.middlewares
	c.middlewares = nil
	return mws
}
