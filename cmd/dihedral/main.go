package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/TianyiShi2001/dihedral"
)

var (
	flagUnsigned = false
	flagDegrees  = false
)

func main() {
	if flag.NArg() != 12 {
		usage()
	}

	var points [4]dihedral.Point3
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			points[i][j] = parseFloat(flag.Arg(i*3 + j))
		}
	}

	var angle float64
	if flagUnsigned {
		angle = dihedral.DihedralUnsigned(
			points[0], points[1], points[2], points[3])
	} else {
		angle = dihedral.Dihedral(points[0], points[1], points[2], points[3])
	}
	if flagDegrees {
		angle = dihedral.Degrees(angle)
	}
	fmt.Println(angle)
}

func parseFloat(numStr string) float64 {
	num, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		fmt.Printf("Could not parse '%s' as a number.\n", numStr)
		os.Exit(1)
	}
	return num
}

func init() {
	flag.BoolVar(&flagUnsigned, "unsigned", flagUnsigned,
		"When set, the direction of rotation is discarded and the "+
			"angle is reported in the range [0, pi].")
	flag.BoolVar(&flagDegrees, "degrees", flagDegrees,
		"When set, the angle is reported in degrees instead of radians.")
	flag.Usage = usage
	flag.Parse()
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [flags] x0 y0 z0 x1 y1 z1 x2 y2 z2 x3 y3 z3\n",
		path.Base(os.Args[0]))
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr,
		"\nex. './%s -degrees 1 0 0 0 0 0 0 1 0 0 1 1'\n",
		path.Base(os.Args[0]))
	os.Exit(1)
}
