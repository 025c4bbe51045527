// Package pixel provides the in-memory representation of an image: a Color made of three normalised
// channel intensities and a Buffer holding a dense row-major grid of them.
//
// Arithmetic on Color values is free to leave the [0, 1] range. Values are clamped when they are written
// into a Buffer, so a Buffer never holds an out-of-range channel.
//
// Buffer accessors are forgiving: reads outside the grid return black and writes outside the grid are
// ignored. Filters that need neighbour values use AtClamped, which maps out-of-range coordinates to the
// nearest edge pixel.
package pixel
