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

// Package gui defines the operations and events common to every visual
// user interface of the emulator. The only implementation at the moment is
// the SDL window in the sdlplay package but the playmode package only ever
// talks through the types defined here.
package gui

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinel error returned if the GUI does not support a requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
