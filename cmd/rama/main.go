package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/gdamore/tcell/v2"

	"github.com/TianyiShi2001/dihedral"
	"github.com/TianyiShi2001/dihedral/pdb"
	"github.com/TianyiShi2001/dihedral/torsion"
)

// point is one residue's (phi, psi) pair in degrees.
type point struct {
	phi, psi float64
}

// Cells get denser glyphs as more residues land on them.
var densityChars = []rune{'·', '●', '◉', '█'}

func main() {
	if flag.NArg() != 2 {
		usage()
	}

	pdbf, chainId := flag.Arg(0), flag.Arg(1)

	entry, err := pdb.New(pdbf)
	if err != nil {
		fmt.Println(err)
		return
	}
	chain, ok := entry.Chains[chainId[0]]
	if !ok {
		fmt.Printf("The chain '%s' could not be found in '%s'.\n",
			chainId, pdbf)
		os.Exit(1)
	}

	angles, err := torsion.Chain(chain)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Only residues with both phi and psi can be placed on the plot.
	points := make([]point, 0, len(angles))
	for _, ra := range angles {
		if !ra.HasPhi || !ra.HasPsi {
			continue
		}
		points = append(points, point{
			phi: dihedral.Degrees(ra.Phi),
			psi: dihedral.Degrees(ra.Psi),
		})
	}
	if len(points) == 0 {
		fmt.Printf("The chain '%s' in '%s' has no residues with both phi "+
			"and psi angles.\n", chainId, pdbf)
		os.Exit(1)
	}

	if err := plot(entry.Name(), chainId[0], points); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func plot(name string, chainId byte, points []point) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()

	for {
		s.Clear()
		w, h := s.Size()
		if w > 20 && h > 10 {
			render(s, w, h, name, chainId, points)
		}
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return nil
				}
			}
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

// render draws the full plot: a frame spanning phi and psi from -180 to
// 180 degrees, zero axes, and one glyph per occupied cell whose weight
// grows with the number of residues that map to it.
func render(s tcell.Screen, w, h int, name string, chainId byte,
	points []point) {

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

	title := fmt.Sprintf("%s chain %c | %d residues | Q:quit",
		name, chainId, len(points))
	drawText(s, 1, 0, white, title)

	// The plot area, inside a one cell margin for labels.
	x0, y0 := 6, 2
	x1, y1 := w-2, h-3
	pw, ph := x1-x0, y1-y0
	if pw < 2 || ph < 2 {
		return
	}

	// Frame and zero axes.
	for x := x0; x <= x1; x++ {
		s.SetContent(x, y0, '─', nil, gray)
		s.SetContent(x, y1, '─', nil, gray)
		s.SetContent(x, y0+ph/2, '┄', nil, gray)
	}
	for y := y0; y <= y1; y++ {
		s.SetContent(x0, y, '│', nil, gray)
		s.SetContent(x1, y, '│', nil, gray)
		s.SetContent(x0+pw/2, y, '┆', nil, gray)
	}
	drawText(s, 1, y0, gray, " 180")
	drawText(s, 1, y1, gray, "-180")
	drawText(s, 1, y0+ph/2, gray, "   0")
	drawText(s, x0-2, h-2, gray, "-180")
	drawText(s, x0+pw/2-1, h-2, gray, "0")
	drawText(s, x1-2, h-2, gray, "180")
	drawText(s, 1, 1, gray, "psi")
	drawText(s, x1-2, h-1, gray, "phi")

	// Bin the residues into cells.
	counts := make(map[[2]int]int, len(points))
	for _, p := range points {
		// phi grows to the right, psi grows upward.
		cx := x0 + int((p.phi+180)/360*float64(pw))
		cy := y1 - int((p.psi+180)/360*float64(ph))
		if cx <= x0 {
			cx = x0 + 1
		} else if cx >= x1 {
			cx = x1 - 1
		}
		if cy <= y0 {
			cy = y0 + 1
		} else if cy >= y1 {
			cy = y1 - 1
		}
		counts[[2]int{cx, cy}]++
	}
	for cell, count := range counts {
		char := densityChars[len(densityChars)-1]
		if count <= len(densityChars) {
			char = densityChars[count-1]
		}
		style := tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(80, 200, 255))
		s.SetContent(cell[0], cell[1], char, nil, style)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func init() {
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s pdb-file chain-id\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nex. './%s 1ctf.pdb A'\n",
		path.Base(os.Args[0]))
	os.Exit(1)
}
