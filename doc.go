// Package citador renders quote images: a caption in italics, the author's
// name, an optional context line and an optional profile photo, laid out on
// a solid background.
//
// # Quick Start
//
//	store, err := atlas.Load("emoji.atlas")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	regular, _ := text.NewFontSourceFromFile("fonts/Roboto-Regular.ttf")
//	italic, _ := text.NewFontSourceFromFile("fonts/Roboto-Italic.ttf")
//	noto, _ := text.NewColorSourceFromFile("fonts/NotoColorEmoji.ttf")
//
//	r, err := citador.New(
//	    citador.WithAtlas(store),
//	    citador.WithFonts(regular, italic, noto),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img, err := r.RenderQuote(citador.Quote{
//	    Text:   "Não sei, só sei que foi assim 🤷",
//	    Author: citador.FormatAuthor("Chicó Silva"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = r.EncodeJPEG(os.Stdout, img)
//
// # Packages
//
// The work is split across:
//   - atlas: the emoji bitmap container and its in-memory store
//   - text: fonts, glyph drawing and word wrap
//   - text/emoji: emoji sequence parsing and matching
//   - paragraph: the text and emoji layout engine
//   - frame: side-by-side and stacked image composition
//
// Renderer ties them together with the layout constants of the quote bot
// this package grew out of.
package citador
