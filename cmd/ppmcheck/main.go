package main

import (
	"flag"
	"fmt"
	"os"

	"softraster/internal/canvas"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ppmcheck <image.ppm> [expected.ppm]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	got, err := canvas.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %dx%d, %d bytes of pixel data\n", flag.Arg(0), got.Width(), got.Height(), len(got.Bytes()))

	if flag.NArg() == 1 {
		return
	}

	want, err := canvas.LoadFile(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if got.Width() != want.Width() || got.Height() != want.Height() {
		fmt.Printf("DIFFER: size %dx%d vs %dx%d\n", got.Width(), got.Height(), want.Width(), want.Height())
		os.Exit(1)
	}

	diff := 0
	first := -1
	gp, wp := got.Pixels(), want.Pixels()
	for i := range gp {
		if gp[i] != wp[i] {
			if first < 0 {
				first = i
			}
			diff++
		}
	}
	if diff == 0 {
		fmt.Println("MATCH")
		return
	}
	x, y := first%got.Width(), first/got.Width()
	fmt.Printf("DIFFER: %d of %d pixels, first at (%d,%d): %v vs %v\n", diff, len(gp), x, y, gp[first], wp[first])
	os.Exit(1)
}
