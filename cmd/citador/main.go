// Command citador renders a quote image to a JPEG file.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"

	"github.com/citador/citador"
	"github.com/citador/citador/atlas"
	"github.com/citador/citador/text"
)

func main() {
	var (
		quote     = flag.String("text", "", "quoted sentence")
		author    = flag.String("author", "", `author name, "First Last"`)
		context   = flag.String("context", "", "optional context line")
		photo     = flag.String("photo", "", "optional photo (PNG or JPEG)")
		fake      = flag.Bool("fake", false, "stamp the fake-quote notice")
		plain     = flag.Bool("paragraph", false, "render -text as a plain paragraph")
		atlasPath = flag.String("atlas", "emoji.atlas", "emoji atlas container")
		regular   = flag.String("regular", "fonts/Roboto-Regular.ttf", "regular font")
		italic    = flag.String("italic", "fonts/Roboto-Italic.ttf", "italic font")
		emojiFont = flag.String("emoji", "fonts/NotoColorEmoji.ttf", "colour emoji font")
		size      = flag.Float64("size", citador.DefaultFontSize, "font size in pixels")
		wrap      = flag.Int("wrap", citador.DefaultWrapWidth, "line length in characters")
		fg        = flag.String("fg", "#fff", "text colour")
		bg        = flag.String("bg", "#000", "background colour")
		output    = flag.String("out", "quote.jpg", "output file")
		debug     = flag.Bool("debug", false, "log debug output to stderr")
	)
	flag.Parse()

	if *debug {
		citador.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fgColor, err := citador.ParseHex(*fg)
	if err != nil {
		log.Fatal(err)
	}
	bgColor, err := citador.ParseHex(*bg)
	if err != nil {
		log.Fatal(err)
	}

	store, err := atlas.Load(*atlasPath)
	if err != nil {
		log.Fatalf("Failed to load atlas: %v", err)
	}
	reg := mustFont(*regular)
	ita := mustFont(*italic)
	noto, err := text.NewColorSourceFromFile(*emojiFont)
	if err != nil {
		log.Fatalf("Failed to load emoji font: %v", err)
	}

	r, err := citador.New(
		citador.WithAtlas(store),
		citador.WithFonts(reg, ita, noto),
		citador.WithFontSize(*size),
		citador.WithWrapWidth(*wrap),
		citador.WithColors(fgColor, bgColor),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	var img image.Image
	if *plain {
		img, err = r.RenderParagraph(*quote)
	} else {
		q := citador.Quote{
			Text:    *quote,
			Author:  citador.FormatAuthor(*author),
			Context: *context,
			Fake:    *fake,
		}
		if *photo != "" {
			if q.Photo, err = imaging.Open(*photo); err != nil {
				log.Fatalf("Failed to open photo: %v", err)
			}
		}
		img, err = r.RenderQuote(q)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	if err := r.EncodeJPEG(f, img); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := img.Bounds()
	log.Printf("Quote saved to %s (%dx%d)\n", *output, b.Dx(), b.Dy())
}

func mustFont(path string) *text.FontSource {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	return src
}
