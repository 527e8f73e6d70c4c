// Package imaging connects decoded images to the picross pipeline.
//
// It loads and caches images from disk, flattens them into the RGBA buffers
// the picross package consumes, crops images to their opaque content, and
// renders boards back into PNG or WebP previews. All pixel coordinates are
// 0-based with (0,0) at the top-left corner of the image, whatever the
// image's bounds origin.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other function is
// stateless and may be called concurrently.
//
// # Color Representation
//
// Board cells carry colours as "#RRGGBB" hex strings or "rgb(r, g, b)"
// strings. ParseCellColor accepts both. Palette entries report colours as
// hex, 8-bit RGB and whole-number HSL.
//
// # Performance Considerations
//
// For repeated operations on the same image, use ImageCache to avoid redundant
// disk reads. Large images may consume significant memory when cached.
// Consider using Evict() or Clear() to manage memory for long-running processes.
package imaging
