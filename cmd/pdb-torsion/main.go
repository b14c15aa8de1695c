package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/TianyiShi2001/dihedral"
	"github.com/TianyiShi2001/dihedral/pdb"
	"github.com/TianyiShi2001/dihedral/torsion"
)

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

	fmt.Printf("%5s %4s %9s %9s %9s\n", "res", "", "phi", "psi", "omega")
	for _, ra := range angles {
		fmt.Printf("%5d %4s %9s %9s %9s\n",
			ra.ResidueInd, ra.Residue,
			angleStr(ra.Phi, ra.HasPhi),
			angleStr(ra.Psi, ra.HasPsi),
			angleStr(ra.Omega, ra.HasOmega))
	}
}

// angleStr formats an angle in degrees, or a placeholder when the residue
// does not have the angle.
func angleStr(angle float64, ok bool) string {
	if !ok {
		return "--"
	}
	return fmt.Sprintf("%9.3f", dihedral.Degrees(angle))
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
