// Package box is a retained-mode widget layout and image compositing
// engine. A widget tree (containers: [Frame], [HSplit], [VSplit], [Grid];
// leaves: [TextBox], [ImageBox], [Spacer]) is built up, attached to a
// [Canvas], and rendered in two phases: a bottom-up measurement pass
// computes every widget's size, then a top-down draw pass composites the
// tree into a single RGBA [Pixmap] through a [Painter] with a scoped
// region stack.
//
// Measurement freezes a widget: once its size has been computed, layout
// attributes can no longer change. Build the whole tree first, then
// render.
//
// All drawing is CPU raster; the package never touches a GPU.
package box
