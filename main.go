package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"seehuhn.de/go/pdf"

	"github.com/soocke/labelcrop/app"
	"github.com/soocke/labelcrop/config"
	"github.com/soocke/labelcrop/debug"
	"github.com/soocke/labelcrop/domain/pdfops"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s [flags] input.pdf                       select the crop box interactively\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s [flags] input.pdf output.pdf            crop using the saved crop box\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s [flags] input.pdf output.pdf angle      crop and rotate by angle degrees\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "crop data file")
	debugMode := flag.Bool("debug", false, "enable verbose runtime logging")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *debugMode {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if *debugMode {
		debug.StartMemLogger(0, logger)
		debug.StartGoroutineLogger(0, logger)
	}

	args := flag.Args()
	switch len(args) {
	case 1:
		if err := app.Run(args[0], *cfgPath, logger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case 2, 3:
		data, err := config.Load(*cfgPath)
		if err != nil {
			logger.Debug("crop data load failed", "path", *cfgPath, "error", err)
			fmt.Fprintln(os.Stderr, "Crop data not found. Run the tool with only the input PDF to define the crop box.")
			os.Exit(1)
		}
		box := pdf.Rectangle{
			LLx: data.BottomLeft.X,
			LLy: data.BottomLeft.Y,
			URx: data.TopRight.X,
			URy: data.TopRight.Y,
		}
		if len(args) == 3 {
			angle, err := strconv.Atoi(args[2])
			if err != nil {
				fmt.Fprintln(os.Stderr, "Rotation angle must be an integer (e.g., 90).")
				os.Exit(1)
			}
			if err := pdfops.CropRotate(args[0], args[1], box, angle); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("Cropped and rotated PDF saved to %s\n", args[1])
		} else {
			if err := pdfops.Crop(args[0], args[1], box); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("Cropped PDF saved to %s\n", args[1])
		}
	default:
		usage()
		os.Exit(1)
	}
}
