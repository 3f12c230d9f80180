package main

import (
	"shader-background/internal/debug"
	"shader-background/internal/engineconfig"
	"shader-background/internal/gpu"
	"shader-background/internal/gpu/glctx"
	"shader-background/internal/graphics"
	"shader-background/internal/logger"
	"shader-background/internal/renderer"
)

// scene releases the GL context wrapper after the renderer's own objects.
type scene struct {
	*renderer.Renderer
	gl *glctx.Context
}

func (s scene) Close() {
	s.Renderer.Close()
	if s.gl != nil {
		s.gl.Close()
	}
}

func main() {
	log := logger.New()

	prefs, err := engineconfig.Load(engineconfig.ConfigPath)
	if err != nil {
		log.Infof("config: %v (using defaults)", err)
	}

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc
	dbg.ShowUniforms = prefs.ShowUniforms

	open := func(w graphics.Window) graphics.Scene {
		var ctx gpu.Context
		gl, err := glctx.New()
		if err != nil {
			log.Infof("opengl: %v", err)
		} else {
			ctx = gl
			log.Infof("opengl %s", gl.Version())
		}
		r := renderer.New(ctx, w, log)
		dbg.Uniforms = r.Uniforms
		return scene{Renderer: r, gl: gl}
	}

	err = graphics.Run(graphics.Options{
		Title:      prefs.Title,
		Fullscreen: prefs.Fullscreen,
		Width:      prefs.Width,
		Height:     prefs.Height,
		VSync:      prefs.VSync,
	}, open, dbg.Draw)
	if err != nil {
		log.Errorf("background disabled: %v", err)
	}
}
