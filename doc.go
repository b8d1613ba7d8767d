// Package marina provides the types and functions to manage the boats kept
// at a marina and what their owners owe.
//
// The core functionalities include:
//   - Inventory Management: an ordered collection of boats, sorted by name
//     ignoring case, bounded by the marina capacity.
//   - Locations: every boat is kept in a wet slip, an on-land bay, on a
//     trailer or in the storage yard, each with its own identifier.
//   - Billing: a monthly fee proportional to the boat length at a rate per
//     kind of location, and payments against the balance.
//   - Data Persistence: a plain text file, one boat per line
//     (name,length,kind,location,owed), compatible with files written by
//     older versions of the tool.
//
// This package serves as the foundational logic for the `mcs` command-line
// tool.
package marina
