// Voxgarden — a small grass-topped voxel island, carved and re-filled with
// spherical CSG templates, orbited by a tweened camera and rendered with a
// software raycast preview while its dirty node ranges are mirrored into a
// paged GPU-shaped texture.
//
// Demonstrates: Generate, Union/Difference, DynamicOctree segment tracking,
// gpu.PageMirror/EbitenPageWriter, and Octree.Raycast.
package main

import (
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"github.com/ashgrove/voxant"
	"github.com/ashgrove/voxant/generate"
	"github.com/ashgrove/voxant/gpu"
)

// ---- configuration ---------------------------------------------------------

const (
	screenW = 960
	screenH = 540

	orbitPeriod = 6.0 // seconds per full revolution once idle
	carveRadius = 4
	carveDepth  = 6
)

func main() {
	voxant.Debug = os.Getenv("VOXGARDEN_DEBUG") != ""

	island := voxant.Generate(generate.Block{})
	carveIsland(island)

	tree := voxant.NewDynamicOctree(*island)

	mirror := gpu.NewPageMirror(gpu.NewEbitenPageWriter())
	if err := mirror.Sync(tree); err != nil {
		log.Fatal(err)
	}

	cam := newCamera(voxant.Vec3{}, 3.5)
	if err := dumpPreview(tree, cam, "startup"); err != nil {
		log.Printf("voxgarden: preview dump: %v", err)
	}

	g := &game{
		tree:   tree,
		mirror: mirror,
		cam:    cam,
	}
	g.cam.OrbitTo(2*math.Pi, 0.5, 2.0, ease.OutCubic)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Voxgarden")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// carveIsland punches a spherical cavity into the island's shaded side and
// fills a second sphere on the opposite corner, exercising both CSG
// operators against the generated tree.
func carveIsland(o *voxant.Octree) {
	hole := voxant.Generate(generate.NewSphere(carveRadius, carveDepth))
	fill := voxant.Generate(generate.NewSphere(carveRadius/2, carveDepth))

	o.Difference(voxant.Branch{Path: voxant.IVec3{X: 6, Y: 2, Z: -6}, Depth: carveDepth}, 0, hole)
	o.Union(voxant.Branch{Path: voxant.IVec3{X: -8, Y: 6, Z: 8}, Depth: carveDepth}, 0, fill)
}

// game implements ebiten.Game, driving the orbit camera, the GPU mirror
// sync, and the software raycast preview.
type game struct {
	tree   *voxant.DynamicOctree
	mirror *gpu.PageMirror
	cam    *camera

	frame *ebiten.Image
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.cam.Update(dt)

	if err := g.mirror.Sync(g.tree); err != nil {
		return err
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil || g.frame.Bounds().Dx() != screenW || g.frame.Bounds().Dy() != screenH {
		g.frame = ebiten.NewImage(screenW, screenH)
	}

	g.renderPreview(g.frame)
	screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// renderPreview casts one ray per pixel against the tree and paints the hit
// color (or a dark sky color on a miss) into dst.
func (g *game) renderPreview(dst *ebiten.Image) {
	pixels := castScene(g.tree, g.cam, screenW, screenH)
	dst.WritePixels(pixels)
}

// castScene casts one ray per pixel of a w x h frame from cam against tree,
// returning straight-alpha RGBA8 pixels. Shared by the live preview and
// dumpPreview's one-shot PNG capture.
func castScene(tree *voxant.DynamicOctree, cam *camera, w, h int) []byte {
	forward, right, up := cam.Basis()
	eye := cam.Eye()

	const fovScale = 0.9
	aspect := float64(w) / float64(h)

	transform := voxant.Identity()
	pixels := make([]byte, w*h*4)

	for y := 0; y < h; y++ {
		v := (1 - 2*(float64(y)+0.5)/float64(h)) * fovScale
		for x := 0; x < w; x++ {
			u := (2*(float64(x)+0.5)/float64(w) - 1) * fovScale * aspect

			dir := forward.Add(right.Scale(u)).Add(up.Scale(v)).Normalize()
			ray := voxant.Ray{Origin: eye, Direction: dir}

			i := (y*w + x) * 4
			hit, ok := tree.Raycast(transform, ray)
			if !ok {
				pixels[i+0], pixels[i+1], pixels[i+2], pixels[i+3] = 16, 20, 28, 255
				continue
			}

			node := tree.Get(hit.Index)
			shade := shadeFactor(hit.Normal)
			pixels[i+0] = shadeChannel(node.R(), shade)
			pixels[i+1] = shadeChannel(node.G(), shade)
			pixels[i+2] = shadeChannel(node.B(), shade)
			pixels[i+3] = 255
		}
	}

	return pixels
}

// shadeFactor darkens faces away from a fixed key light, using the hit
// normal as a cheap flat-shading term.
func shadeFactor(n voxant.IVec3) float64 {
	light := voxant.Vec3{X: 0.4, Y: 0.8, Z: 0.4}.Normalize()
	facing := n.AsVec3().Normalize()
	d := facing.X*light.X + facing.Y*light.Y + facing.Z*light.Z
	if d < 0 {
		d = 0
	}
	return 0.35 + 0.65*d
}

func shadeChannel(c uint8, shade float64) byte {
	v := float64(c) * shade
	if v > 255 {
		v = 255
	}
	return byte(v)
}
