// Package text provides font loading, measurement, and glyph rendering
// for the box compositing engine.
//
// Fonts are loaded through a process-wide registry ([Load]) that resolves
// names against a configurable font directory with .ttf/.otf fallback and
// caches parsed fonts by path. A [Source] produces [Face] values at
// specific sizes; faces measure text through a pluggable [Shaper] and
// rasterize glyphs with golang.org/x/image/font/opentype.
//
// Strings containing symbolic (emoji-class) code points are split into
// runs so a fallback face can render them; see [SplitRuns] and
// [SetEmojiFont].
package text
