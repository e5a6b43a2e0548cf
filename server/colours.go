package server

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

var methodColors = map[string]*color.Color{
	"GET":    color.New(color.FgGreen),
	"POST":   color.New(color.FgBlue),
	"PUT":    color.New(color.FgCyan),
	"DELETE": color.New(color.FgYellow),
	"PATCH":  color.New(color.FgMagenta),
}

var defaultMethodColor = color.New(color.FgHiBlack)

func logRoute(method, path string) {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	c, ok := methodColors[method]
	if !ok {
		c = defaultMethodColor
	}
	log.Info().Msgf("[%s] %s", c.Sprint(paddedMethod), path)
}
