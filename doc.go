// Package typeenc parses and re-encodes the compact textual encoding the
// Objective-C runtime uses to describe C/C++/Objective-C types, method
// signatures, and property attribute lists.
//
// The defining contract is byte-exact round-trip: for every string the
// parser accepts, Encode on the parsed value reproduces the input exactly.
// That includes degenerate strings real producers are known to emit, such
// as stray digits before the first type code of a method signature,
// name-only struct forward declarations, and multi-kilobyte C++ template
// instantiations whose names contain literal commas.
//
// Three entry points cover the three string shapes the runtime hands out:
//
//	ParseType        one type encoding, e.g. "^{_NSZone=}"
//	ParseMethodTypes a method's concatenated types with stack offsets,
//	                 e.g. "v24@0:8@16"
//	ParseAttributes  a property attribute list, e.g. "T@\"NSString\",C,V_name"
//
// All values are immutable after construction and all operations are pure,
// so concurrent use on independent inputs needs no synchronization.
package typeenc
