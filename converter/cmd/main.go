package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Lesaloon/MR-Label-Converter/converter"
	"github.com/Lesaloon/MR-Label-Converter/types"
)

func main() {
	leftRatio := flag.Float64("left-ratio", 0, "fixed fraction of the width to keep on the left (0-1]; 0 means auto-detect")
	autoLeftMin := flag.Float64("auto-left-min", 0.45, "minimum keep ratio when the width is auto-detected")
	autoLeftMargin := flag.Float64("auto-left-margin", 8.0, "extra margin (analysis pixels) added right of the detected blank start")
	autoLeftGap := flag.Float64("auto-left-gap", 25.0, "minimum blank run (analysis pixels) identifying the separation")
	rotate := flag.Int("rotate", 90, "rotation applied to each label (0/90/180/270)")
	page := flag.String("page", "a4", "a4, letter, or WIDTHxHEIGHT in points (e.g. 595x842)")
	margin := flag.Float64("margin", 12.0, "outer margin (pt) on the destination page")
	fit := flag.String("fit", "contain", `resize policy: "contain" keeps the whole label, "cover" fills the target`)
	scale := flag.Float64("scale", 2.0, "extra global zoom")
	fillWidth := flag.Bool("fill-width", true, "use the full available width when possible")
	noFillWidth := flag.Bool("no-fill-width", false, "disable the full-width preference (wins over -fill-width)")
	halign := flag.String("halign", "auto", "horizontal alignment: auto, left, center, right")
	halignOffset := flag.Float64("halign-offset", -6.0, "extra horizontal shift in points after alignment (negative = left)")
	halignBleed := flag.Float64("halign-bleed", 30.0, "allowed horizontal overflow past the margin (pt)")
	valign := flag.String("valign", "top", "vertical alignment: top, bottom, center")
	debugBoxes := flag.Bool("debug-boxes", false, "draw target and destination frames")
	combined := flag.Bool("combined", false, "impose all inputs two labels per page into one output")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.pdf [more inputs with -combined] output.pdf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	if !*combined && len(args) != 2 {
		log.Fatal("exactly one input and one output expected; use -combined for multiple inputs")
	}

	cfg := types.DefaultConversionConfig()
	if *leftRatio != 0 {
		cfg.LeftRatio = leftRatio
	}
	cfg.AutoLeftMin = *autoLeftMin
	cfg.AutoLeftMargin = *autoLeftMargin
	cfg.AutoLeftGap = *autoLeftGap
	cfg.Rotate = *rotate
	cfg.Page = *page
	cfg.Margin = *margin
	cfg.Fit = *fit
	cfg.Scale = *scale
	cfg.FillWidth = resolveFillWidth(*fillWidth, *noFillWidth)
	cfg.HAlign = *halign
	cfg.HAlignOffset = *halignOffset
	cfg.HAlignBleed = *halignBleed
	cfg.VAlign = *valign
	cfg.DebugBoxes = *debugBoxes

	conv := converter.New()
	inputs := args[:len(args)-1]
	output := args[len(args)-1]

	var err error
	if *combined {
		err = conv.ConvertCombined(inputs, output, cfg)
	} else {
		err = conv.ConvertFile(inputs[0], output, cfg)
	}
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}

	fmt.Printf("Wrote %s\n", output)
}

// resolveFillWidth merges the -fill-width/-no-fill-width pair; the
// explicit negative flag wins.
func resolveFillWidth(fill, noFill bool) bool {
	return fill && !noFill
}
