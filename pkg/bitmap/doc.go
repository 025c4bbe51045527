// Package bitmap reads and writes 24-bit uncompressed Windows bitmaps.
//
// A file is a 14 byte file header, a 40 byte info header and rows of B, G, R byte triples stored
// bottom-up, each row padded with zero bytes to a multiple of 4. Channels are converted to and from the
// normalised range of pixel.Color by dividing or multiplying by 255.
//
// Only the 24 bits per pixel, BI_RGB variant is supported. Decode rejects any other bit depth or
// compression with a *FormatError. The codec is also registered with the image package as "bmp24".
package bitmap
