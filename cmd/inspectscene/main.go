package main

import (
	"fmt"
	"os"

	"github.com/danidoni/raytracer/internal/scene"
)

func main() {
	var s *scene.Scene
	if len(os.Args) > 1 {
		var err error
		s, err = scene.LoadFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scene: %s\n", os.Args[1])
	} else {
		s = scene.Default()
		fmt.Println("Scene: built-in default")
	}

	fmt.Printf("Spheres: %d, Lights: %d\n", len(s.Spheres), len(s.Lights))
	fmt.Printf("Background: #%02x%02x%02x\n", s.Background.R, s.Background.G, s.Background.B)

	for i, sp := range s.Spheres {
		fmt.Printf("  Sphere[%d]: radius=%g center=(%g, %g, %g) color=#%02x%02x%02x\n",
			i, sp.Radius, sp.Center[0], sp.Center[1], sp.Center[2],
			sp.Color.R, sp.Color.G, sp.Color.B)
	}

	for i, l := range s.Lights {
		switch l := l.(type) {
		case scene.Ambient:
			fmt.Printf("  Light[%d]: ambient intensity=%g\n", i, l.Intensity)
		case scene.Point:
			fmt.Printf("  Light[%d]: point intensity=%g position=(%g, %g, %g)\n",
				i, l.Intensity, l.Position[0], l.Position[1], l.Position[2])
		case scene.Directional:
			fmt.Printf("  Light[%d]: directional intensity=%g direction=(%g, %g, %g)\n",
				i, l.Intensity, l.Direction[0], l.Direction[1], l.Direction[2])
		}
	}
}
