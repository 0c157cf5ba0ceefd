package http

import "github.com/labstack/echo/v4"

// Handler defines HTTP route registration interface.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(e *echo.Echo)

func (f HandlerFunc) RegisterRoutes(e *echo.Echo) { f(e) }

// Compose joins several handlers into one registration unit.
func Compose(hs ...Handler) Handler {
	return HandlerFunc(func(e *echo.Echo) {
		for _, h := range hs {
			if h != nil {
				h.RegisterRoutes(e)
			}
		}
	})
}
