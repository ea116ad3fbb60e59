// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command overlaydemo drives an overlay session against the simulated
// runtime: it creates an overlay, streams a few generated frames through
// the GPU texture path, reads controller state and casts a controller ray
// at the overlay.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	fcolor "github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/gogpu/vroverlay"
	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/vr"
	"github.com/gogpu/vroverlay/vrsim"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file")
		output     = flag.String("output", "", "write the last submitted frame as PNG")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		vroverlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg, *output); err != nil {
		fcolor.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, output string) error {
	green := fcolor.New(fcolor.FgGreen)
	cyan := fcolor.New(fcolor.FgCyan)
	yellow := fcolor.New(fcolor.FgYellow)

	rt := newRuntime(cfg.Runtime.Controllers)
	opts := []vroverlay.Option{
		vroverlay.WithRuntime(rt),
		vroverlay.WithDevice(rt.Device()),
		vroverlay.WithInterfaceVersions(cfg.versions()),
	}
	if a := cfg.actions(); a != nil {
		opts = append(opts, vroverlay.WithActions(*a))
	}

	s, err := vroverlay.New(opts...)
	if err != nil {
		return fmt.Errorf("opening session: %w", err)
	}
	defer s.Close()
	green.Println("session open")

	key := cfg.Overlay.Key
	if key == "" {
		key = "vroverlay.demo." + uuid.NewString()
	}
	h, err := s.CreateOverlay(key, cfg.Overlay.Name)
	if err != nil {
		return fmt.Errorf("creating overlay: %w", err)
	}
	cyan.Printf("overlay %d: %s\n", h, key)

	if err := s.SetWidth(h, cfg.Overlay.Meters); err != nil {
		return err
	}
	if err := s.SetTransformRelativeToHMD(h, cfg.Overlay.Distance); err != nil {
		return err
	}

	w, ht := cfg.Overlay.Width, cfg.Overlay.Height
	for frame := range cfg.Overlay.Frames {
		pixels := texture.FromImage(pattern(frame), w, ht)
		if err := s.SetTextureFromGPU(h, pixels, w, ht); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
	}
	if err := s.Show(h); err != nil {
		return err
	}
	tw, th := s.TextureDims()
	green.Printf("submitted %d frames, texture %dx%d, %d allocation(s)\n",
		cfg.Overlay.Frames, tw, th, rt.Device().Created())

	if err := reportControllers(s, h, cyan, yellow); err != nil {
		return err
	}

	if output != "" {
		if err := writeFrame(rt, h, output); err != nil {
			return err
		}
		green.Printf("wrote %s\n", output)
	}
	return nil
}

// newRuntime builds a simulated runtime with up to two controllers held in
// front of the headset, pointing forward.
func newRuntime(controllers int) *vrsim.Runtime {
	rt := vrsim.New()
	roles := []vr.ControllerRole{vr.ControllerRoleLeftHand, vr.ControllerRoleRightHand}
	for i := range controllers {
		m := vr.Identity34()
		m[0][3] = float32(i)*0.2 - 0.1
		m[2][3] = -0.3
		index := uint32(i + 1)
		rt.System().AddController(index, roles[i], m)

		state := vr.ControllerState{ButtonPressed: vr.ButtonTrigger}
		state.Axis[vr.AxisTrigger] = vr.ControllerAxis{X: 1}
		rt.System().SetControllerState(index, state)
	}
	return rt
}

func reportControllers(s *vroverlay.Session, h vroverlay.Handle, cyan, yellow *fcolor.Color) error {
	ids, err := s.ControllerIDs()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		yellow.Println("no controllers")
		return nil
	}
	for _, id := range ids {
		state, err := s.ControllerState(id)
		if err != nil {
			return err
		}
		cyan.Printf("controller %d: trigger=%v (%.2f) grip=%v\n",
			id, state.TriggerPressed, state.TriggerValue, state.GripPressed)

		pose, ok, err := s.ControllerPose(id)
		if err != nil {
			return err
		}
		if !ok {
			yellow.Printf("controller %d: not tracked\n", id)
			continue
		}
		origin, dir := vroverlay.RayFromPose(pose)
		hit, ok, err := s.ComputeRayIntersection(h, origin, dir)
		switch {
		case err != nil:
			return err
		case ok:
			cyan.Printf("controller %d: hit at uv=(%.2f, %.2f), %.2f m\n", id, hit.U, hit.V, hit.Distance)
		default:
			yellow.Printf("controller %d: ray misses overlay\n", id)
		}
	}
	return nil
}

// pattern returns a small checkerboard whose colors shift with frame.
func pattern(frame int) image.Image {
	const cells, size = 8, 16
	img := image.NewRGBA(image.Rect(0, 0, cells*size, cells*size))
	a := color.RGBA{R: uint8(40 * frame), G: 120, B: 220, A: 255}
	b := color.RGBA{R: 240, G: uint8(60 * frame), B: 40, A: 255}
	for y := range cells * size {
		for x := range cells * size {
			c := a
			if (x/size+y/size)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// writeFrame saves the overlay content the compositor last received.
func writeFrame(rt *vrsim.Runtime, h vroverlay.Handle, path string) error {
	st, ok := rt.Overlay().State(vr.OverlayHandle(h))
	if !ok || st.BytesPerPixel != 4 {
		return fmt.Errorf("overlay %d has no pixel content", h)
	}
	img := &image.RGBA{
		Pix:    st.Pixels,
		Stride: int(st.Width) * 4,
		Rect:   image.Rect(0, 0, int(st.Width), int(st.Height)),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
