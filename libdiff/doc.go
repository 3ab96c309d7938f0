// Package libdiff computes differences between TON trees and between
// texts.
//
// [Diff] walks two trees and returns an ordered list of [Change] values.
// Objects are matched by key and arrays are aligned on a summary of their
// elements, so an element inserted at the front of an array shows up as
// one insertion rather than as a change to every element. Changes apply
// in order: the index in a change is the one in effect after the changes
// before it. [JSONPatch] renders a list as an RFC 6902 document over the
// JSON projection and [Reverse] inverts it.
//
// [Lines] produces a line diff of two texts, as used by ton fmt -d.
package libdiff
