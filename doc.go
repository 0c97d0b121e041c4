// Package inventory models a small, local-first stock inventory: a handful of
// item categories held in a single container that persists itself to a
// human-readable JSON file after every change.
//
// The core pieces are:
//   - Items: Electronic, Food and Apparel records sharing an id, a name, a
//     price and a quantity, each able to describe itself on a single line.
//   - Inventory: the container keyed by item id, mediating every mutation and
//     rewriting its backing file after each one.
//   - Records: the flat JSON form of an item, tagged with a "type" field, used
//     by EncodeItem, DecodeItem and the whole-file encoders.
//
// This package is the foundation of the `inv` command-line tool.
package inventory
