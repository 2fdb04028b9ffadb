// Package strongid is a codec for a hierarchical alphanumeric identifier
// scheme. An identifier names an entity at one of four nested levels —
// top, team, stronghold, researcher — where the top level is an alphabetic
// codename and each deeper level appends a fixed-width decimal segment.
//
//	Representations
//
// Every identifier has three interchangeable representations, and the
// codec converts losslessly between them:
//
//   - Canonical text, e.g. "LFN2018-00121376": the codename, the team
//     segment, a "-" separator, the stronghold segment and the researcher
//     segment, with segments present down to the identifier's level.
//
//   - A canonical integer: a single non-negative arbitrary-precision
//     integer packing all components via mixed-radix composition. The
//     codename occupies the most significant position; each segment
//     contributes exactly 10^width values, so segment ranges never overlap.
//
//   - Big-endian bytes: the canonical integer, either at its minimum byte
//     length or zero-left-padded to a caller-chosen length.
//
//	Codename enumeration
//
// Codenames are alphabetic strings of length two or more, numbered
// bijectively: all length-2 codenames first in lexicographic order
// ("AA"=0 ... "ZZ"=675), then length-3 ("AAA"=676), and so on with no gaps
// and no collisions. Unlike a naive fixed-width base-26 reading, a leading
// "A" is significant: "AAB" and "AB" are distinct identifiers.
//
//	Configuration
//
// Segment widths are configurable per call through Config and become part
// of the identifier's equality. Widths may be large enough that canonical
// integers span hundreds of decimal digits; all arithmetic is done on
// math/big values.
//
// The codec is pure and stateless: there is no registry, no allocation of
// new identifiers, no persistence, and every function is safe to call
// concurrently.
package strongid
