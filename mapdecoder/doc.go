/*

Package mapdecoder implements the low-level decoding pipeline shared by
every segment of a Settlers-4-style map file: a keystream cipher used to
decrypt segment headers, a bit-oriented reader over the compressed
segment bodies, an adaptive Huffman+LZ77 decompressor, and the segment
framer that ties the three together.

The package deals only in bytes; it knows nothing about what a segment's
decompressed body means. See package mapfile for the domain decoders
that sit on top of it.

Information sources:

Original (Rust) decoder this format was ported from:

https://github.com/Skarmux/S4Reader

*/
package mapdecoder
