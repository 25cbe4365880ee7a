package health

import (
	"github.com/dmitrymomot/greeter/core/handler"
	"github.com/dmitrymomot/greeter/core/response"
)

// Liveness answers 200 "ALIVE" as long as the process can serve requests.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
