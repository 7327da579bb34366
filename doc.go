// Package slicemaster extracts sprite regions from raster images and edits
// pixels in place.
//
// # Overview
//
// slicemaster is a pure Go engine for slicing sprite sheets: it infers the
// background of an image, segments the foreground into connected islands,
// and reports tight bounding rectangles in reading order. Around that core
// it provides the interactive editing operations a sprite workflow needs:
// magic-wand background removal, brush erase and restore, and alpha edge
// feathering.
//
// # Quick Start
//
//	import "github.com/kanniganfan/SliceMaster"
//
//	pm, err := slicemaster.LoadPixmap("sheet.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rects := slicemaster.DetectIslands(pm, slicemaster.DefaultDetectOptions())
//	for i, r := range rects {
//	    sprite, err := pm.Crop(r)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    sprite.SavePNG(fmt.Sprintf("sprite_%03d.png", i))
//	}
//
// # Data Model
//
// All operations work on a [Pixmap]: a row-major, straight-alpha RGBA byte
// buffer. Decoded images of any format are normalized into one (see
// [Decode], [FromImage]); [Pixmap.ToImage] and [EncodePNG] convert back.
// Pixels with alpha below 50 are treated as background throughout.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Rectangles
// are {X, Y, Width, Height} with exclusive right/bottom edges.
//
// # Concurrency
//
// Every operation is synchronous and single-threaded. Distinct Pixmaps may
// be processed concurrently; calls touching the same Pixmap must be
// serialized by the caller.
package slicemaster

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
