// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas with flag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first NewArgs()
// with the array of arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// The important difference between the standard flag package and this
// package is the ability to handle "modes". A mode is a special command line
// argument that, when specified, puts the program into a different mode of
// operation, with its own set of flags and expected arguments - in the
// manner of the go command's build, test, doc, etc. modes.
//
// Modes are declared with the AddSubModes() function before the call to
// Parse(). The first sub-mode in the list is the default, selected when the
// user names no mode. Sub-mode comparisons are case insensitive. Once a mode
// has been identified, NewMode() prepares the Modes value for the parsing of
// that mode's own flags:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "performance", "version")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 10.0, "window scale")
//		_, _ = md.Parse()
//		...
//	}
//
// Help messages are written to the Output field. The Modes value keeps track
// of the mode path (eg. "RUN/PERFORMANCE") for the benefit of those
// messages.
package modalflag
