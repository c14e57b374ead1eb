package main

import (
	"sort"

	"github.com/gogpu/sunburst"
)

// runner is a built sketch of any state type.
type runner interface {
	Run() error
}

type demo struct {
	title string
	build func(seed uint64, opts []sunburst.Option) (runner, error)
}

var demos = map[string]demo{
	"lorenz":    {title: "Lorenz Attractor", build: newLorenz},
	"lissajous": {title: "Lissajous", build: newLissajous},
	"rects":     {title: "Rects", build: newRects},
	"text":      {title: "Text", build: newTextDemo},
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
