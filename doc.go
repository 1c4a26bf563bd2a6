// Package ggbench is an interactive throughput benchmark for the gg 2D
// graphics library.
//
// # Overview
//
// A benchmark run animates a fountain of pseudo-random shapes and grows
// the number of shapes drawn per frame until the renderer can no longer
// hold the target frame rate. The point where growth stops is the
// renderer's throughput ceiling for that shape kind.
//
// # Quick Start
//
//	params := ggbench.DefaultParams()
//	host := ggbench.NewHost(1280, 720, 1.0, ggbench.WithParams(params))
//	_ = ggbench.RegisterResources(host, "", "")
//
//	view, err := ggbench.NewView(host, ggbench.DefaultRegistry(),
//	    ggbench.WithReporter(func(p ggbench.PerfData) {
//	        fmt.Printf("%.1f fps, %d shapes\n", p.FPS, p.DrawCount)
//	    }))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	surface := ggbench.NewContextSurface(gg.NewContext(1280, 720), nil)
//	for {
//	    view.Draw(surface) // once per display refresh
//	}
//
// # Architecture
//
// The package is organized into:
//   - Measurement: StatsWindow (rolling FPS and draw time), Clock
//   - State: Host (screen, pointer, resources, statistics), Params
//   - Load generation: ShapePool (deterministic shapes), Controller
//     (growth, animation and saturation)
//   - Drawing: Renderer (shape dispatch, spawn marker, status overlay)
//   - Benches: ParticleBench, SolidRectBench, Registry, View
//
// # Threading
//
// Everything is single-threaded: one goroutine calls View.Draw per frame
// and applies input and configuration changes between frames.
package ggbench
