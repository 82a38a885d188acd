// Package atlas stores precomputed emoji bitmaps keyed by code-point key.
//
// An atlas file is a zlib-compressed sequence of records:
//
//	[1 byte name length][name (UTF-8)][10 byte big-endian payload size][payload]
//
// Names are lowercase, hyphen-joined hexadecimal code points such as
// "1f468-200d-1f469-200d-1f467"; payloads are small PNG (or WebP) images.
//
// A Store is decoded once at startup and is read-only afterwards, so it can be
// shared by concurrent render calls without locking:
//
//	store, err := atlas.Load("emoji.dat")
//	if err != nil {
//	    log.Fatal(err) // a FormatError is never recoverable
//	}
//	if bm, ok := store.Lookup("1f600"); ok {
//	    fmt.Println(bm.Width(), bm.Height())
//	}
package atlas
