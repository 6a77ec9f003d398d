package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/menta2k/pixeldims"
	"github.com/menta2k/pixeldims/internal/config"
	"github.com/menta2k/pixeldims/internal/log"
	"github.com/menta2k/pixeldims/internal/utils"
	"github.com/menta2k/pixeldims/pkg/analyzer"
	"github.com/menta2k/pixeldims/pkg/clipboard"
	"github.com/menta2k/pixeldims/pkg/fonts"
	"github.com/menta2k/pixeldims/pkg/overlay"
	"github.com/menta2k/pixeldims/pkg/processing"
)

func main() {
	var in, out, ext, cfgPath string
	var quality int
	var lossless, toClipboard, dryRun bool

	flag.StringVar(&in, "in", "", "input image path (jpg/png/gif/bmp/tiff/webp)")
	flag.StringVar(&out, "out", "", "output file (default: <input>_dims.<ext> next to the input)")
	flag.StringVar(&ext, "ext", "", "output format: png|jpg|webp (default from config)")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP quality (1-100, default from config)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless mode")
	flag.BoolVar(&toClipboard, "clipboard", false, "copy the PNG to the clipboard instead of writing a file")
	flag.BoolVar(&dryRun, "dry-run", false, "print the badge geometry as JSON and exit")
	flag.StringVar(&cfgPath, "config", config.GetConfigPath(), "JSON config file, skipped when the default is absent")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in image.png [-out file] [-ext png|jpg|webp] [-clipboard] [-dry-run] [-config file]", filepath.Base(os.Args[0]))
	}
	if flag.NArg() > 0 {
		log.Fatalf("exactly one input image is supported, got extra arguments: %v", flag.Args())
	}

	cfg := config.Default()
	if cfgPath == config.GetConfigPath() && !utils.FileExists(cfgPath) {
		cfgPath = ""
	}
	if cfgPath != "" {
		var err error
		if cfg, err = config.LoadFromFile(cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if ext != "" {
		cfg.Output.DefaultFormat = ext
	}
	if quality != 0 {
		cfg.Output.Quality = quality
	}
	if lossless {
		cfg.Output.Lossless = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	bg, border, text, err := cfg.Colors()
	if err != nil {
		log.Fatal(err)
	}
	renderer := overlay.NewWithConfig(overlay.Config{Background: bg, Border: border, Text: text})
	renderer.SetFonts(fonts.NewResolver(cfg.Overlay.FontCandidates...))

	imgAnalyzer := analyzer.NewWithConfig(analyzer.Config{SupportedFormats: cfg.Analyzer.SupportedFormats})

	var sink clipboard.Sink
	if toClipboard {
		sink = clipboard.NewSystem()
	}
	annotator := pixeldims.New(sink, pixeldims.WithAnalyzer(imgAnalyzer), pixeldims.WithRenderer(renderer))

	if !utils.IsImageFile(in) {
		log.Printf("warning: %s does not have an image extension, trying anyway", in)
	}

	switch {
	case dryRun:
		img, err := imgAnalyzer.LoadImage(in)
		if err != nil {
			log.Fatal(err)
		}
		info := imgAnalyzer.GetImageInfo(img)
		badge, err := renderer.Plan(img, info.OverlayText())
		if err != nil {
			log.Fatal(err)
		}
		js, err := json.MarshalIndent(badge, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(js))
		if !badge.InsideImage(info.Width, info.Height) {
			log.Printf("badge extends past the image edges")
		}

	case toClipboard:
		result, err := annotator.Annotate(context.Background(), in)
		if err != nil {
			log.Fatalf("%s error: %v", pixeldims.KindOf(err), err)
		}
		fmt.Printf("%s pixels\n", result.Dimensions)

	default:
		format := strings.ToLower(cfg.Output.DefaultFormat)
		if out == "" {
			out = utils.GenerateOutputFilename(in, cfg.Output.OutputDir, cfg.Output.Prefix, cfg.Output.Suffix, format)
		} else if e := utils.GetFileExtension(out); e != "" && ext == "" {
			format = e
		}
		if filepath.Clean(out) == filepath.Clean(in) {
			log.Fatalf("refusing to overwrite the input image %s", in)
		}
		if utils.FileExists(out) {
			log.Printf("overwriting %s", out)
		}
		if err := utils.EnsureDir(filepath.Dir(out)); err != nil {
			log.Fatal(err)
		}

		img, err := imgAnalyzer.LoadImage(in)
		if err != nil {
			log.Fatal(err)
		}
		info := imgAnalyzer.GetImageInfo(img)
		canvas, _, err := renderer.Compose(img, info.OverlayText())
		if err != nil {
			log.Fatal(err)
		}

		processor := processing.NewProcessor()
		if err := processor.SaveImage(canvas, out, format, cfg.Output.Quality, cfg.Output.Lossless); err != nil {
			log.Fatalf("save %s failed: %v", out, err)
		}

		size := int64(0)
		if st, err := os.Stat(out); err == nil {
			size = st.Size()
		}
		log.Printf("wrote %s (%s pixels, %s)", out, info.DimensionsText(), utils.FormatFileSize(size))
	}
}
